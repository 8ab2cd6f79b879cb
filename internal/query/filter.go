package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukane-philemon/gradeboard/internal/student"
)

const (
	idClausePrefix = "id:"

	fieldGrade = "grade"
	fieldDate  = "date"
)

// leadingFloat matches the number at the start of a comparison value, so
// "90abc" compares against 90.
var leadingFloat = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// Predicate reports whether a record matches a filter.
type Predicate func(s *student.Student) bool

func matchAll(*student.Student) bool  { return true }
func matchNone(*student.Student) bool { return false }

// Parse compiles a filter expression. Clause kinds are tried in order and the
// first one that applies decides:
//
//	id:<substring>      case-insensitive substring of the ID
//	grade>N, date>D     strict greater than (D is DD/MM/YYYY)
//	grade<N, date<D     strict less than
//	a, b, c             name contains any of the tokens
//	text                id, name, subject, email, city or country contains text
//
// An empty or blank filter matches every record. A comparison whose value
// cannot be parsed matches nothing.
func Parse(filter string) Predicate {
	f := strings.ToLower(strings.TrimSpace(filter))
	if f == "" {
		return matchAll
	}

	if strings.HasPrefix(f, idClausePrefix) {
		sub := strings.TrimSpace(strings.TrimPrefix(f, idClausePrefix))
		return func(s *student.Student) bool {
			return strings.Contains(strings.ToLower(s.ID), sub)
		}
	}

	if p, ok := comparison(f, ">"); ok {
		return p
	}
	if p, ok := comparison(f, "<"); ok {
		return p
	}

	if strings.Contains(f, ",") {
		names := Tokens(f)
		return func(s *student.Student) bool {
			return ContainsAny(strings.ToLower(s.Name), names)
		}
	}

	return func(s *student.Student) bool {
		for _, field := range []string{s.ID, s.Name, s.Subject, s.Email, s.City, s.Country} {
			if strings.Contains(strings.ToLower(field), f) {
				return true
			}
		}
		return false
	}
}

// comparison builds the predicate for a "<field><op><value>" clause. The
// second return value is false if f is not a comparison on a known field.
func comparison(f, op string) (Predicate, bool) {
	parts := strings.Split(f, op)
	if len(parts) != 2 {
		return nil, false
	}
	field, value := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])

	switch field {
	case fieldGrade:
		num, ok := parseLeadingFloat(value)
		if !ok {
			return matchNone, true
		}
		if op == ">" {
			return func(s *student.Student) bool { return s.Grade > num }, true
		}
		return func(s *student.Student) bool { return s.Grade < num }, true

	case fieldDate:
		want, ok := student.ParseDate(value)
		if !ok {
			return matchNone, true
		}
		return func(s *student.Student) bool {
			got, ok := student.ParseDate(s.Date)
			if !ok {
				return false
			}
			if op == ">" {
				return got.After(want)
			}
			return got.Before(want)
		}, true
	}

	return nil, false
}

func parseLeadingFloat(s string) (float64, bool) {
	num := leadingFloat.FindString(s)
	if num == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Tokens splits a comma separated list, trimming and lowercasing each token
// and dropping empty ones.
func Tokens(list string) []string {
	var tokens []string
	for _, t := range strings.Split(list, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// ContainsAny reports whether s contains any of subs.
func ContainsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
