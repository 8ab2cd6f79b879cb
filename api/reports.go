package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi"

	"github.com/ukane-philemon/gradeboard/internal/pagestate"
	"github.com/ukane-philemon/gradeboard/internal/report"
	"github.com/ukane-philemon/gradeboard/internal/student"
)

// monitor returns one page of the pass/fail roll-up. Missing query
// parameters fall back to the saved monitor page state.
func (s *Server) monitor(res http.ResponseWriter, req *http.Request) {
	saved := s.state.MonitorPage()
	f := &report.MonitorFilter{
		IDs:        saved.SelectedIDs,
		Name:       saved.NameFilter,
		ShowPassed: saved.ShowPassed,
		ShowFailed: saved.ShowFailed,
	}

	if ids, found := listParam(req, "ids"); found {
		f.IDs = ids
	}
	if values, found := req.URL.Query()["name"]; found && len(values) > 0 {
		f.Name = values[0]
	}

	if err := overrideBool(req, "passed", &f.ShowPassed); err != nil {
		s.handleError(res, req, err)
		return
	}
	if err := overrideBool(req, "failed", &f.ShowFailed); err != nil {
		s.handleError(res, req, err)
		return
	}

	page, pageSize, err := pagination(req, saved.CurrentPage, saved.PageSize)
	if err != nil {
		s.handleError(res, req, err)
		return
	}

	records, err := s.db.Students()
	if err != nil {
		s.handleError(res, req, err)
		return
	}

	s.writeJSON(res, http.StatusOK, report.BuildMonitor(report.ByStudent(records), f, page, pageSize))
}

type analysisResponse struct {
	*report.Analysis
	ChartPositions pagestate.ChartPositions `json:"chartPositions"`
	// VisibleCharts lists the shown charts in layout order.
	VisibleCharts []string `json:"visibleCharts"`
}

// analysis returns the chart series for the selected students and subjects.
// Missing query parameters fall back to the saved analysis page state.
func (s *Server) analysis(res http.ResponseWriter, req *http.Request) {
	saved := s.state.AnalysisPage()

	ids := saved.SelectedStudentIDs
	if values, found := listParam(req, "ids"); found {
		ids = values
	}

	subjects := saved.SelectedSubjects
	if values, found := listParam(req, "subjects"); found {
		subjects = values
	}

	records, err := s.db.Students()
	if err != nil {
		s.handleError(res, req, err)
		return
	}

	visible := make([]string, 0, len(pagestate.Charts))
	for _, chart := range pagestate.Charts {
		if saved.ChartPositions.Visible(chart) {
			visible = append(visible, chart)
		}
	}

	s.writeJSON(res, http.StatusOK, &analysisResponse{
		Analysis:       report.BuildAnalysis(records, ids, subjects),
		ChartPositions: saved.ChartPositions,
		VisibleCharts:  visible,
	})
}

type averageResponse struct {
	Label   string  `json:"label"`
	Average float64 `json:"average"`
}

// studentAverage returns the mean grade of a student. It is 0 for unknown
// students.
func (s *Server) studentAverage(res http.ResponseWriter, req *http.Request) {
	records, err := s.db.Students()
	if err != nil {
		s.handleError(res, req, err)
		return
	}

	id := chi.URLParam(req, "id")
	s.writeJSON(res, http.StatusOK, &averageResponse{Label: id, Average: report.AverageByStudentID(records, id)})
}

func (s *Server) subjectAverage(res http.ResponseWriter, req *http.Request) {
	records, err := s.db.Students()
	if err != nil {
		s.handleError(res, req, err)
		return
	}

	subject := chi.URLParam(req, "subject")
	if unescaped, err := url.PathUnescape(subject); err == nil {
		subject = unescaped
	}
	s.writeJSON(res, http.StatusOK, &averageResponse{Label: subject, Average: report.AverageBySubject(records, subject)})
}

type constantsResponse struct {
	DefaultPageSize int      `json:"defaultPageSize"`
	MaxPageSize     int      `json:"maxPageSize"`
	PassThreshold   float64  `json:"passThreshold"`
	PassingGrade    float64  `json:"passingGrade"`
	ExcellentGrade  float64  `json:"excellentGrade"`
	DateLayout      string   `json:"dateFormat"`
	InputDateLayout string   `json:"inputDateFormat"`
	Today           string   `json:"today"`
	Subjects        []string `json:"subjects"`
}

// constants returns the reference values used by the dashboard pages. Today
// is the current date in the record date format, the default for new
// records.
func (s *Server) constants(res http.ResponseWriter, _ *http.Request) {
	s.writeJSON(res, http.StatusOK, &constantsResponse{
		DefaultPageSize: student.DefaultPageSize,
		MaxPageSize:     student.MaxPageSize,
		PassThreshold:   report.PassThreshold,
		PassingGrade:    student.PassingGrade,
		ExcellentGrade:  student.ExcellentGrade,
		DateLayout:      student.DateLayout,
		InputDateLayout: student.InputDateLayout,
		Today:           student.FormatDate(time.Now()),
		Subjects:        student.Subjects,
	})
}
