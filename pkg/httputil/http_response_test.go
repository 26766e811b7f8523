package httputil

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorResponse(rec, http.StatusServiceUnavailable, "github unavailable", errors.New("timeout"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var resp ErrorResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrorResponse{Code: 503, Message: "github unavailable", Details: "timeout"}, resp)
}

func TestWriteAttachment(t *testing.T) {
	rec := httptest.NewRecorder()
	body := bytes.NewBufferString("Date,Platform\n")
	err := WriteAttachment(rec, "text/csv; charset=utf-8", "progress_2024-03-10.csv", body.Len(), body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename=progress_2024-03-10.csv`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "14", rec.Header().Get("Content-Length"))
	assert.Equal(t, "Date,Platform\n", rec.Body.String())
}
