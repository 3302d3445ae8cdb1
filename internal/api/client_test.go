package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL+"/api/v1", 2*time.Second)
	require.NoError(t, err)
	return c
}

func TestCreateSession(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/sessions", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Empty(t, body)
		_ = json.NewEncoder(w).Encode(SessionInfo{SessionID: "abc-123", CreatedAt: "2026-08-01T12:00:00"})
	}))

	info, err := c.CreateSession(context.Background())
	require.NoError(t, err)
	require.Equal(t, "abc-123", info.SessionID)
}

func TestCreateSessionMalformedPayload(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"created_at": "2026-08-01T12:00:00"})
	}))

	_, err := c.CreateSession(context.Background())
	var sce *SessionCreationError
	require.ErrorAs(t, err, &sce)
}

func TestCreateSessionServerError(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "context service unavailable"})
	}))

	_, err := c.CreateSession(context.Background())
	var sce *SessionCreationError
	require.ErrorAs(t, err, &sce)
	require.Contains(t, sce.Error(), "context service unavailable")
}

func TestGenerateCode(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/code/generate", r.URL.Path)
		require.Equal(t, "sess-9", r.URL.Query().Get("session_id"))

		var req GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "add two numbers", req.Description)
		require.Equal(t, "python", req.Language)
		require.Nil(t, req.Framework)

		_ = json.NewEncoder(w).Encode(GenerateResponse{
			Success:       true,
			Code:          "def add(a, b):\n    return a + b\n",
			Description:   "Adds two numbers.",
			Filename:      "python_app_20260801_120000.py",
			Dependencies:  []string{},
			ExecutionTime: 2.5,
		})
	}))

	resp, err := c.GenerateCode(context.Background(), "sess-9", GenerateRequest{
		Description: "add two numbers",
		Language:    "python",
	})
	require.NoError(t, err)
	require.Equal(t, "python_app_20260801_120000.py", resp.Filename)
	require.Equal(t, 2.5, resp.ExecutionTime)
}

func TestGenerateCodeFrameworkNullWhenAbsent(t *testing.T) {
	t.Parallel()
	payload, err := json.Marshal(GenerateRequest{Description: "x", Language: "go"})
	require.NoError(t, err)
	require.Contains(t, string(payload), `"framework":null`)

	fw := "gin"
	payload, err = json.Marshal(GenerateRequest{Description: "x", Language: "go", Framework: &fw})
	require.NoError(t, err)
	require.Contains(t, string(payload), `"framework":"gin"`)
}

func TestGenerateCodeSurfacesBackendDetail(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "session not found"})
	}))

	_, err := c.GenerateCode(context.Background(), "gone", GenerateRequest{Description: "x", Language: "go"})
	var gre *GenerationRequestError
	require.ErrorAs(t, err, &gre)
	require.Equal(t, http.StatusNotFound, gre.StatusCode)
	require.Equal(t, "session not found", gre.Error())
}

func TestGenerateCodeGenericMessageWithoutDetail(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.GenerateCode(context.Background(), "s", GenerateRequest{Description: "x", Language: "go"})
	var gre *GenerationRequestError
	require.ErrorAs(t, err, &gre)
	require.Contains(t, gre.Error(), "502")
}

func TestGenerateCodeTransportFailure(t *testing.T) {
	t.Parallel()
	c, err := New("http://127.0.0.1:1/api/v1", 200*time.Millisecond)
	require.NoError(t, err)

	_, err = c.GenerateCode(context.Background(), "s", GenerateRequest{Description: "x", Language: "go"})
	var gre *GenerationRequestError
	require.ErrorAs(t, err, &gre)
	require.Zero(t, gre.StatusCode)
}

func TestHealthHitsServerRoot(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(HealthInfo{Status: "healthy", OllamaStatus: "connected"})
	}))

	info, err := c.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "healthy", info.Status)
}

func TestListAndDownloadFiles(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/code/files":
			_ = json.NewEncoder(w).Encode(FileList{
				Files:      []FileInfo{{Filename: "python_app.py", Size: 120, Extension: ".py"}},
				TotalCount: 1,
			})
		case "/api/v1/code/download/python_app.py":
			_, _ = w.Write([]byte("print('hi')\n"))
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "not found"})
		}
	}))

	list, err := c.ListFiles(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, list.TotalCount)
	require.Equal(t, "python_app.py", list.Files[0].Filename)

	content, err := c.DownloadFile(context.Background(), "python_app.py")
	require.NoError(t, err)
	require.Equal(t, "print('hi')\n", content)

	_, err = c.DownloadFile(context.Background(), "missing.py")
	require.EqualError(t, err, "not found")
}

func TestSessionMaintenanceEndpoints(t *testing.T) {
	t.Parallel()
	var gotClear, gotDelete bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/sessions/s1/clear":
			gotClear = true
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "cleared"})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/sessions/s1":
			gotDelete = true
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	require.NoError(t, c.ClearSession(context.Background(), "s1"))
	require.NoError(t, c.DeleteSession(context.Background(), "s1"))
	require.True(t, gotClear)
	require.True(t, gotDelete)
}

func TestNewRejectsBadURL(t *testing.T) {
	t.Parallel()
	_, err := New("ftp://example.com", time.Second)
	require.Error(t, err)
	_, err = New("http://localhost:8000/api/v1", time.Second)
	require.NoError(t, err)
}

func TestErrorsUnwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")
	require.ErrorIs(t, &SessionCreationError{Err: cause}, cause)
	require.ErrorIs(t, &GenerationRequestError{Err: cause}, cause)
}
