package report

import (
	"github.com/ukane-philemon/gradeboard/internal/student"
)

// Point is one bar of an analysis chart.
type Point struct {
	Label   string  `json:"label"`
	Average float64 `json:"average"`
}

// Analysis holds the series behind the analysis charts.
type Analysis struct {
	// StudentAverages is the average grade of each selected student.
	StudentAverages []Point `json:"studentAverages"`
	// SubjectAverages is the average grade of each selected subject.
	SubjectAverages []Point `json:"subjectAverages"`
	// IDs and Subjects list every distinct value, for the selectors.
	IDs      []string `json:"availableIds"`
	Subjects []string `json:"availableSubjects"`
}

// BuildAnalysis computes the chart series for the selected students and
// subjects. An empty selection means all of them.
func BuildAnalysis(records []*student.Student, ids, subjects []string) *Analysis {
	a := &Analysis{
		StudentAverages: []Point{},
		SubjectAverages: []Point{},
		IDs:             DistinctIDs(records),
		Subjects:        DistinctSubjects(records),
	}

	for _, id := range DistinctIDs(WithIDs(records, ids)) {
		a.StudentAverages = append(a.StudentAverages, Point{Label: id, Average: AverageByStudentID(records, id)})
	}
	for _, subject := range DistinctSubjects(WithSubjects(records, subjects)) {
		a.SubjectAverages = append(a.SubjectAverages, Point{Label: subject, Average: AverageBySubject(records, subject)})
	}

	return a
}

// WithIDs returns the records whose ID is in ids, or every record if ids is
// empty.
func WithIDs(records []*student.Student, ids []string) []*student.Student {
	return keep(records, ids, func(s *student.Student) string { return s.ID })
}

// WithSubjects returns the records whose subject is in subjects, or every
// record if subjects is empty.
func WithSubjects(records []*student.Student, subjects []string) []*student.Student {
	return keep(records, subjects, func(s *student.Student) string { return s.Subject })
}

func keep(records []*student.Student, values []string, key func(s *student.Student) string) []*student.Student {
	if len(values) == 0 {
		return records
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}

	kept := make([]*student.Student, 0, len(records))
	for _, s := range records {
		if set[key(s)] {
			kept = append(kept, s)
		}
	}
	return kept
}

// DistinctIDs returns each student ID once, in first-seen order.
func DistinctIDs(records []*student.Student) []string {
	return distinct(records, func(s *student.Student) string { return s.ID })
}

// DistinctSubjects returns each subject once, in first-seen order.
func DistinctSubjects(records []*student.Student) []string {
	return distinct(records, func(s *student.Student) string { return s.Subject })
}

func distinct(records []*student.Student, key func(s *student.Student) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0, len(records))
	for _, s := range records {
		k := key(s)
		if !seen[k] {
			seen[k] = true
			values = append(values, k)
		}
	}
	return values
}
