package student

import (
	"fmt"
)

const (
	// idPrefix is prepended to every minted student ID.
	idPrefix = "100000"

	// DefaultPageSize is the page size used when none is provided.
	DefaultPageSize = 10
	// MaxPageSize is the largest page size accepted from API clients.
	MaxPageSize = 100

	// PassingGrade is the display-only passing grade. It is not the pass/fail
	// threshold used for student summaries.
	PassingGrade = 60
	// ExcellentGrade is the display-only excellent grade.
	ExcellentGrade = 90
)

// Student is one exam result for one student. ID is not unique across records,
// a student has one record per exam.
type Student struct {
	ID         string  `json:"id" bson:"id"`
	Name       string  `json:"name" bson:"name"`
	Date       string  `json:"date" bson:"date"` // DD/MM/YYYY
	Grade      float64 `json:"grade" bson:"grade"`
	Subject    string  `json:"subject" bson:"subject"`
	Email      string  `json:"email,omitempty" bson:"email,omitempty"`
	DateJoined string  `json:"dateJoined,omitempty" bson:"dateJoined,omitempty"` // DD/MM/YYYY
	Address    string  `json:"address,omitempty" bson:"address,omitempty"`
	City       string  `json:"city,omitempty" bson:"city,omitempty"`
	Country    string  `json:"country,omitempty" bson:"country,omitempty"`
	Zip        string  `json:"zip,omitempty" bson:"zip,omitempty"`
}

// Clone returns a copy of s.
func (s *Student) Clone() *Student {
	c := *s
	return &c
}

// NewStudent contains the information needed to add a student record. The ID
// is minted by the roster.
type NewStudent struct {
	Name       string  `json:"name" validate:"required"`
	Date       string  `json:"date" validate:"required,ddmmyyyy"`
	Grade      float64 `json:"grade" validate:"gte=0,lte=100"`
	Subject    string  `json:"subject" validate:"required,subject"`
	Email      string  `json:"email" validate:"omitempty,email"`
	DateJoined string  `json:"dateJoined" validate:"omitempty,ddmmyyyy"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Zip        string  `json:"zip"`
}

// Student builds the record for ns with the provided id.
func (ns *NewStudent) Student(id string) *Student {
	return &Student{
		ID:         id,
		Name:       ns.Name,
		Date:       ns.Date,
		Grade:      ns.Grade,
		Subject:    ns.Subject,
		Email:      ns.Email,
		DateJoined: ns.DateJoined,
		Address:    ns.Address,
		City:       ns.City,
		Country:    ns.Country,
		Zip:        ns.Zip,
	}
}

// UpdateStudent holds the fields to overwrite on an existing record. Nil
// fields are left untouched.
type UpdateStudent struct {
	Name       *string  `json:"name" validate:"omitnil,min=1"`
	Date       *string  `json:"date" validate:"omitnil,ddmmyyyy"`
	Grade      *float64 `json:"grade" validate:"omitnil,gte=0,lte=100"`
	Subject    *string  `json:"subject" validate:"omitnil,subject"`
	Email      *string  `json:"email" validate:"omitempty,email"`
	DateJoined *string  `json:"dateJoined" validate:"omitempty,ddmmyyyy"`
	Address    *string  `json:"address"`
	City       *string  `json:"city"`
	Country    *string  `json:"country"`
	Zip        *string  `json:"zip"`
}

// Apply shallow merges us onto s.
func (us *UpdateStudent) Apply(s *Student) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&s.Name, us.Name)
	set(&s.Date, us.Date)
	set(&s.Subject, us.Subject)
	set(&s.Email, us.Email)
	set(&s.DateJoined, us.DateJoined)
	set(&s.Address, us.Address)
	set(&s.City, us.City)
	set(&s.Country, us.Country)
	set(&s.Zip, us.Zip)
	if us.Grade != nil {
		s.Grade = *us.Grade
	}
}

// MintID returns the ID for a record added to a roster that currently holds
// count records. IDs minted this way collide with existing ones once records
// have been removed.
func MintID(count int) string {
	return fmt.Sprintf("%s%03d", idPrefix, count+1)
}
