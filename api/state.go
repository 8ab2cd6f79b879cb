package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/ukane-philemon/gradeboard/internal/db"
	"github.com/ukane-philemon/gradeboard/internal/pagestate"
)

// pageState returns the state of a page. Known pages fall back to their
// defaults; other pages without state are not found.
func (s *Server) pageState(res http.ResponseWriter, req *http.Request) {
	v, err := s.currentPageState(chi.URLParam(req, "page"))
	if err != nil {
		s.handleError(res, req, err)
		return
	}
	s.writeJSON(res, http.StatusOK, v)
}

func (s *Server) currentPageState(page string) (any, error) {
	switch page {
	case pagestate.PageData:
		return s.state.DataPage(), nil
	case pagestate.PageAnalysis:
		return s.state.AnalysisPage(), nil
	case pagestate.PageMonitor:
		return s.state.MonitorPage(), nil
	}

	raw, found := s.state.Raw(page)
	if !found {
		return nil, fmt.Errorf("%w: no state for page %s", db.ErrorNotFound, page)
	}
	return raw, nil
}

func (s *Server) allState(res http.ResponseWriter, _ *http.Request) {
	s.writeJSON(res, http.StatusOK, s.state.Snapshot())
}

// setPageState replaces the state of a page. The state of a known page must
// decode as that page's state.
func (s *Server) setPageState(res http.ResponseWriter, req *http.Request) {
	page := chi.URLParam(req, "page")
	body, err := readBody(res, req)
	if err != nil {
		s.handleError(res, req, err)
		return
	}

	switch page {
	case pagestate.PageData:
		var p pagestate.DataPage
		if err = decodeState(body, &p); err == nil {
			err = s.state.SetDataPage(p)
		}
	case pagestate.PageAnalysis:
		var p pagestate.AnalysisPage
		if err = decodeState(body, &p); err == nil {
			err = s.state.SetAnalysisPage(p)
		}
	case pagestate.PageMonitor:
		var p pagestate.MonitorPage
		if err = decodeState(body, &p); err == nil {
			err = s.state.SetMonitorPage(p)
		}
	default:
		err = s.state.Set(page, body)
	}
	if err != nil {
		s.handleError(res, req, err)
		return
	}

	s.writePageState(res, req, page)
}

// updatePageState merges the top level fields of the body onto the state of
// a page. The merged state of a known page must decode as that page's state.
func (s *Server) updatePageState(res http.ResponseWriter, req *http.Request) {
	page := chi.URLParam(req, "page")
	body, err := readBody(res, req)
	if err != nil {
		s.handleError(res, req, err)
		return
	}

	if err = s.state.UpdatePage(page, body); err != nil {
		s.handleError(res, req, err)
		return
	}

	s.writePageState(res, req, page)
}

func (s *Server) writePageState(res http.ResponseWriter, req *http.Request, page string) {
	v, err := s.currentPageState(page)
	if err != nil {
		s.handleError(res, req, err)
		return
	}
	s.writeJSON(res, http.StatusOK, v)
}

func (s *Server) clearPageState(res http.ResponseWriter, req *http.Request) {
	s.state.Clear(chi.URLParam(req, "page"))
	res.WriteHeader(http.StatusNoContent)
}

// clearAllState removes the state of every page.
func (s *Server) clearAllState(res http.ResponseWriter, _ *http.Request) {
	s.state.ClearAll()
	res.WriteHeader(http.StatusNoContent)
}

type moveChartRequest struct {
	Chart    string             `json:"chart"`
	Position pagestate.Position `json:"position"`
}

// moveChart moves an analysis chart and returns the saved analysis state.
func (s *Server) moveChart(res http.ResponseWriter, req *http.Request) {
	var mc moveChartRequest
	if err := decodeBody(res, req, &mc); err != nil {
		s.handleError(res, req, err)
		return
	}

	p, err := s.state.MoveChart(mc.Chart, mc.Position)
	if err != nil {
		s.handleError(res, req, err)
		return
	}
	s.writeJSON(res, http.StatusOK, p)
}

func decodeState(body json.RawMessage, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: invalid page state: %v", db.ErrorInvalidRequest, err)
	}
	return nil
}
