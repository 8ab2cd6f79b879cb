package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukane-philemon/gradeboard/internal/logger"
)

func TestWriteJSONLogsEncodeErrors(t *testing.T) {
	var buf bytes.Buffer
	lg, err := logger.New(&buf, "debug")
	require.NoError(t, err)
	s := &Server{logger: lg}

	rec := httptest.NewRecorder()
	s.writeJSON(rec, http.StatusOK, map[string]any{"ch": make(chan int)})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "failed to write response")

	buf.Reset()
	rec = httptest.NewRecorder()
	s.writeJSON(rec, http.StatusOK, map[string]string{"status": "ok"})
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Empty(t, buf.String())
}
