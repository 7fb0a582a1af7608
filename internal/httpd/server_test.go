package httpd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sheetbridge/sheetbridge/internal/syncer"
)

type stub struct {
	result syncer.Result
	panics bool
}

func (s *stub) Synchronize(ctx context.Context) syncer.Result {
	if s.panics {
		panic("unexpected internal fault")
	}

	return s.result
}

func TestIndex(t *testing.T) {
	server := NewServer(&stub{}, ":0", true, true)

	w := httptest.NewRecorder()
	server.router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
	require.Contains(t, w.Body.String(), "Sync now")
}

func TestHealth(t *testing.T) {
	server := NewServer(&stub{}, ":0", false, false)

	w := httptest.NewRecorder()
	server.router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestStatus(t *testing.T) {
	server := NewServer(&stub{}, ":0", true, false)

	w := httptest.NewRecorder()
	server.router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var status StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	require.Equal(t, "OK", status.SourceA)
	require.Equal(t, "Not configured", status.SourceB)
	require.NotEmpty(t, status.Timestamp)
}

func TestSync(t *testing.T) {
	server := NewServer(&stub{
		result: syncer.Result{Outcome: syncer.Applied, Direction: syncer.DirectionAToB},
	}, ":0", true, true)

	w := httptest.NewRecorder()
	server.router().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sync", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var response SyncResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.True(t, response.Success)
	require.Contains(t, response.Message, "sync completed")
	require.NotEmpty(t, response.Timestamp)
}

func TestSyncWithExpectedFailure(t *testing.T) {
	server := NewServer(&stub{
		result: syncer.Result{Outcome: syncer.Failed, Stage: syncer.StageSourceARead, Reason: "authentication failed"},
	}, ":0", true, true)

	w := httptest.NewRecorder()
	server.router().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sync", nil))

	// ... expected failures are 200 with success:false
	require.Equal(t, http.StatusOK, w.Code)

	var response SyncResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.False(t, response.Success)
	require.Contains(t, response.Message, "source_a_read")
}

func TestSyncWithInternalFault(t *testing.T) {
	server := NewServer(&stub{panics: true}, ":0", true, true)

	w := httptest.NewRecorder()
	server.router().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sync", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var response SyncResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.False(t, response.Success)

	// ... internal details are withheld from the response
	require.False(t, strings.Contains(response.Message, "unexpected internal fault"))
}

func TestSyncRejectsGet(t *testing.T) {
	server := NewServer(&stub{}, ":0", true, true)

	w := httptest.NewRecorder()
	server.router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sync", nil))

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
