package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi"

	"github.com/ukane-philemon/gradeboard/internal/query"
	"github.com/ukane-philemon/gradeboard/internal/student"
)

// listStudents returns one page of the filtered and sorted roster. Missing
// query parameters fall back to the saved data page state.
func (s *Server) listStudents(res http.ResponseWriter, req *http.Request) {
	saved := s.state.DataPage()

	filter := saved.FilterText
	if values, found := req.URL.Query()["filter"]; found {
		filter = strings.Join(values, ",")
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

	order := query.ParseSortOrder(req.URL.Query().Get("sort"))
	s.writeJSON(res, http.StatusOK, query.Run(records, filter, order, page, pageSize))
}

// allStudents returns every record in roster order.
func (s *Server) allStudents(res http.ResponseWriter, req *http.Request) {
	records, err := s.db.Students()
	if err != nil {
		s.handleError(res, req, err)
		return
	}
	s.writeJSON(res, http.StatusOK, records)
}

// getStudent returns the first record with the requested ID.
func (s *Server) getStudent(res http.ResponseWriter, req *http.Request) {
	st, err := s.db.Student(chi.URLParam(req, "id"))
	if err != nil {
		s.handleError(res, req, err)
		return
	}
	s.writeJSON(res, http.StatusOK, st)
}

// addStudent validates and adds a record. The ID is minted by the database.
func (s *Server) addStudent(res http.ResponseWriter, req *http.Request) {
	var ns student.NewStudent
	if err := decodeBody(res, req, &ns); err != nil {
		s.handleError(res, req, err)
		return
	}

	if err := ns.Validate(); err != nil {
		s.handleError(res, req, err)
		return
	}

	st, err := s.db.AddStudent(&ns)
	if err != nil {
		s.handleError(res, req, err)
		return
	}
	s.writeJSON(res, http.StatusCreated, st)
}

// updateStudent merges the request body onto the first record with the
// requested ID.
func (s *Server) updateStudent(res http.ResponseWriter, req *http.Request) {
	var us student.UpdateStudent
	if err := decodeBody(res, req, &us); err != nil {
		s.handleError(res, req, err)
		return
	}

	if err := us.Validate(); err != nil {
		s.handleError(res, req, err)
		return
	}

	st, err := s.db.UpdateStudent(chi.URLParam(req, "id"), &us)
	if err != nil {
		s.handleError(res, req, err)
		return
	}
	s.writeJSON(res, http.StatusOK, st)
}

// removeStudent removes the first record with the requested ID.
func (s *Server) removeStudent(res http.ResponseWriter, req *http.Request) {
	if err := s.db.RemoveStudent(chi.URLParam(req, "id")); err != nil {
		s.handleError(res, req, err)
		return
	}
	res.WriteHeader(http.StatusNoContent)
}

// clearStudents removes every record.
func (s *Server) clearStudents(res http.ResponseWriter, req *http.Request) {
	if err := s.db.ClearStudents(); err != nil {
		s.handleError(res, req, err)
		return
	}
	res.WriteHeader(http.StatusNoContent)
}

// subjects returns the reference list offered by entry forms.
func (s *Server) subjects(res http.ResponseWriter, _ *http.Request) {
	s.writeJSON(res, http.StatusOK, student.Subjects)
}
