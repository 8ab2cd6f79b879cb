package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-kit/log/level"

	"github.com/ukane-philemon/gradeboard/internal/db"
	customerror "github.com/ukane-philemon/gradeboard/internal/errors"
	"github.com/ukane-philemon/gradeboard/internal/student"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []student.FieldError `json:"fields,omitempty"`
}

// handleError writes err to the client. Invalid requests and missing records
// are returned as they are; any other error is logged and replaced by a
// generic server error.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *student.ValidationError
	switch {
	case errors.As(err, &ve):
		s.writeJSON(w, http.StatusBadRequest, &errorResponse{Error: err.Error(), Fields: ve.Fields})
	case errors.Is(err, db.ErrorInvalidRequest):
		s.writeJSON(w, http.StatusBadRequest, &errorResponse{Error: err.Error()})
	case errors.Is(err, db.ErrorNotFound):
		s.writeJSON(w, http.StatusNotFound, &errorResponse{Error: err.Error()})
	default:
		level.Error(s.logger).Log("msg", "server error", "method", r.Method, "path", r.URL.Path, "err", err)
		s.writeJSON(w, http.StatusInternalServerError, &errorResponse{Error: (&customerror.ErrorUnknown{}).Error()})
	}
}

// writeJSON writes v as the JSON response body. Encoding errors are logged;
// the status has already been sent by then.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		level.Debug(s.logger).Log("msg", "failed to write response", "status", status, "err", err)
	}
}

// readBody returns the request body, which must be valid JSON.
func readBody(w http.ResponseWriter, r *http.Request) (json.RawMessage, error) {
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable request body: %v", db.ErrorInvalidRequest, err)
	}

	if !json.Valid(b) {
		return nil, fmt.Errorf("%w: request body is not valid JSON", db.ErrorInvalidRequest)
	}

	return b, nil
}

// decodeBody decodes the JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	b, err := readBody(w, r)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", db.ErrorInvalidRequest, err)
	}

	return nil
}

// intParam returns the query parameter key as an int. found is false if the
// parameter is missing or blank.
func intParam(r *http.Request, key string) (n int, found bool, err error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return 0, false, nil
	}

	n, err = strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s must be a whole number", db.ErrorInvalidRequest, key)
	}

	return n, true, nil
}

// boolParam returns the query parameter key as a bool. found is false if the
// parameter is missing or blank.
func boolParam(r *http.Request, key string) (b bool, found bool, err error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return false, false, nil
	}

	b, err = strconv.ParseBool(v)
	if err != nil {
		return false, false, fmt.Errorf("%w: %s must be true or false", db.ErrorInvalidRequest, key)
	}

	return b, true, nil
}

// overrideBool sets dst to the query parameter key if it is present.
func overrideBool(r *http.Request, key string, dst *bool) error {
	b, found, err := boolParam(r, key)
	if err != nil {
		return err
	}
	if found {
		*dst = b
	}
	return nil
}

// listParam returns the values of the query parameter key. Values may be
// repeated or comma separated; blank values are dropped. found is false if
// the parameter is missing.
func listParam(r *http.Request, key string) (values []string, found bool) {
	raw, found := r.URL.Query()[key]
	if !found {
		return nil, false
	}

	values = []string{}
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
	}

	return values, true
}

// pagination reads the page and pageSize query parameters over the provided
// defaults. The page size is capped at student.MaxPageSize.
func pagination(r *http.Request, page, pageSize int) (int, int, error) {
	n, found, err := intParam(r, "page")
	if err != nil {
		return 0, 0, err
	}
	if found {
		page = n
	}

	n, found, err = intParam(r, "pageSize")
	if err != nil {
		return 0, 0, err
	}
	if found {
		pageSize = n
	}

	if pageSize > student.MaxPageSize {
		pageSize = student.MaxPageSize
	}

	return page, pageSize, nil
}
