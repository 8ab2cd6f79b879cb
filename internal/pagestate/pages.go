package pagestate

import (
	"github.com/ukane-philemon/gradeboard/internal/student"
)

// Known page names.
const (
	PageData     = "data"
	PageAnalysis = "analysis"
	PageMonitor  = "monitor"
)

// DataPage is the state of the roster table.
type DataPage struct {
	CurrentPage       int    `json:"currentPage"`
	FilterText        string `json:"filterText"`
	SelectedStudentID string `json:"selectedStudentId,omitempty"`
	PageSize          int    `json:"pageSize"`
}

// DefaultDataPage returns the state of a fresh roster table.
func DefaultDataPage() DataPage {
	return DataPage{CurrentPage: 1, PageSize: student.DefaultPageSize}
}

// AnalysisPage is the state of the analysis charts.
type AnalysisPage struct {
	SelectedStudentIDs []string       `json:"selectedStudentIds"`
	SelectedSubjects   []string       `json:"selectedSubjects"`
	ChartPositions     ChartPositions `json:"chartPositions"`
}

// DefaultAnalysisPage returns the state of a fresh analysis page.
func DefaultAnalysisPage() AnalysisPage {
	return AnalysisPage{
		SelectedStudentIDs: []string{},
		SelectedSubjects:   []string{},
		ChartPositions:     DefaultChartPositions(),
	}
}

// MonitorPage is the state of the pass/fail monitor.
type MonitorPage struct {
	SelectedIDs []string `json:"selectedIds"`
	NameFilter  string   `json:"nameFilter"`
	ShowPassed  bool     `json:"showPassed"`
	ShowFailed  bool     `json:"showFailed"`
	CurrentPage int      `json:"currentPage"`
	PageSize    int      `json:"pageSize"`
}

// DefaultMonitorPage returns the state of a fresh monitor.
func DefaultMonitorPage() MonitorPage {
	return MonitorPage{
		SelectedIDs: []string{},
		ShowPassed:  true,
		ShowFailed:  true,
		CurrentPage: 1,
		PageSize:    student.DefaultPageSize,
	}
}

// DataPage returns the saved roster table state or its default.
func (s *Store) DataPage() DataPage {
	return Get(s, PageData, DefaultDataPage())
}

// SetDataPage saves the roster table state.
func (s *Store) SetDataPage(p DataPage) error {
	return s.Set(PageData, p)
}

// AnalysisPage returns the saved analysis state or its default. The chart
// layout is always normalized.
func (s *Store) AnalysisPage() AnalysisPage {
	p := Get(s, PageAnalysis, DefaultAnalysisPage())
	p.ChartPositions = RestoreChartPositions(p.ChartPositions)
	return p
}

// SetAnalysisPage saves the analysis state.
func (s *Store) SetAnalysisPage(p AnalysisPage) error {
	p.ChartPositions = RestoreChartPositions(p.ChartPositions)
	return s.Set(PageAnalysis, p)
}

// MoveChart moves chart to pos on the analysis page and saves the new layout.
func (s *Store) MoveChart(chart string, pos Position) (AnalysisPage, error) {
	p := s.AnalysisPage()
	layout, err := p.ChartPositions.Move(chart, pos)
	if err != nil {
		return AnalysisPage{}, err
	}

	p.ChartPositions = layout
	if err = s.SetAnalysisPage(p); err != nil {
		return AnalysisPage{}, err
	}
	return p, nil
}

// MonitorPage returns the saved monitor state or its default.
func (s *Store) MonitorPage() MonitorPage {
	return Get(s, PageMonitor, DefaultMonitorPage())
}

// SetMonitorPage saves the monitor state.
func (s *Store) SetMonitorPage(p MonitorPage) error {
	return s.Set(PageMonitor, p)
}

// UpdatePage merges partial onto the state of page. The merged state of a
// known page must decode as that page's state.
func (s *Store) UpdatePage(page string, partial any) error {
	switch page {
	case PageData:
		return UpdateAs[DataPage](s, page, partial)
	case PageAnalysis:
		return UpdateAs[AnalysisPage](s, page, partial)
	case PageMonitor:
		return UpdateAs[MonitorPage](s, page, partial)
	}
	return s.Update(page, partial)
}
