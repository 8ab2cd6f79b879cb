package report

import (
	"math"

	"github.com/ukane-philemon/gradeboard/internal/student"
)

// PassThreshold is the lowest average a student needs to pass. It is not
// student.PassingGrade, which is only used for display.
const PassThreshold = 65

// Status is the pass/fail outcome of a student's average.
type Status string

const (
	StatusPassed Status = "Passed"
	StatusFailed Status = "Failed"
)

// StatusFor returns the status for average.
func StatusFor(average float64) Status {
	if average >= PassThreshold {
		return StatusPassed
	}
	return StatusFailed
}

// StudentSummary is the roll-up of every record sharing a student ID.
type StudentSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Average float64 `json:"average"`
	Exams   int     `json:"exams"`
	Status  Status  `json:"status"`
}

// ByStudent groups records by student ID, in the order IDs are first seen.
// The name of a summary is taken from the first record with that ID and the
// status is decided on the unrounded mean. Average is rounded to one decimal
// place.
func ByStudent(records []*student.Student) []*StudentSummary {
	var summaries []*StudentSummary
	totals := make(map[string]float64)
	index := make(map[string]*StudentSummary)

	for _, s := range records {
		summary, found := index[s.ID]
		if !found {
			summary = &StudentSummary{ID: s.ID, Name: s.Name}
			index[s.ID] = summary
			summaries = append(summaries, summary)
		}
		summary.Exams++
		totals[s.ID] += s.Grade
	}

	for _, summary := range summaries {
		mean := totals[summary.ID] / float64(summary.Exams)
		summary.Status = StatusFor(mean)
		summary.Average = Round1(mean)
	}

	return summaries
}

// AverageBySubject returns the mean grade of the records for subject. Subject
// names are matched exactly. It returns 0 if no record matches.
func AverageBySubject(records []*student.Student, subject string) float64 {
	return average(records, func(s *student.Student) bool { return s.Subject == subject })
}

// AverageByStudentID returns the mean grade of the records with id. It returns
// 0 if no record matches.
func AverageByStudentID(records []*student.Student, id string) float64 {
	return average(records, func(s *student.Student) bool { return s.ID == id })
}

func average(records []*student.Student, include func(s *student.Student) bool) float64 {
	var sum float64
	var n int
	for _, s := range records {
		if include(s) {
			sum += s.Grade
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Round1 rounds f to one decimal place, halves away from zero.
func Round1(f float64) float64 {
	return math.Round(f*10) / 10
}
