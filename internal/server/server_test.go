package server

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lokeshsukhwal/Dasher/internal/report"
)

func newTestServer() *Server {
	return New(":0", report.DefaultOptions(), zap.NewNop())
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

type resultView struct {
	Results []struct {
		Day string `json:"day"`
	} `json:"results"`
	Summary struct {
		HasReduction bool `json:"hasReduction"`
		NoChangeDays int  `json:"noChangeDays"`
	} `json:"summary"`
	QuickRemark string `json:"quickRemark"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestRoutes(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
	}{
		{"ping", http.MethodGet, "/ping", http.StatusOK},
		{"compare wrong method", http.MethodGet, "/v1/compare", http.StatusMethodNotAllowed},
		{"invalid route", http.MethodGet, "/invalid", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, s, tt.method, tt.path, "")
			assert.Equal(t, tt.statusCode, rr.Code)
		})
	}
}

func TestCompareSuccess(t *testing.T) {
	s := newTestServer()
	body := `{"oldHours":"Monday: 9 AM - 5 PM\nSaturday: 10 AM - 4 PM","newHours":"Monday\n10 AM - 5 PM\nSaturday\nClosed"}`

	rr := do(t, s, http.MethodPost, "/v1/compare", body)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	env := decode(t, rr)
	assert.True(t, env.Success)

	var res resultView
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Len(t, res.Results, 7)
	assert.True(t, res.Summary.HasReduction)
	assert.Contains(t, res.QuickRemark, "Sat is now Closed (was 10:00 AM - 4:00 PM)")
}

func TestCompareOverrides(t *testing.T) {
	s := newTestServer()
	body := `{"oldHours":"Monday: 9 AM - 5 PM","newHours":"Monday: 9:10 AM - 5 PM","toleranceMinutes":15,"newFormat":"compact","weekStart":"sun"}`

	rr := do(t, s, http.MethodPost, "/v1/compare", body)

	require.Equal(t, http.StatusOK, rr.Code)
	var res resultView
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &res))
	require.Len(t, res.Results, 7)
	assert.Equal(t, "Sunday", res.Results[0].Day)
	assert.False(t, res.Summary.HasReduction)
	assert.Equal(t, 7, res.Summary.NoChangeDays)
}

func TestCompareBadRequest(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"not json", `nope`, "request body must be a JSON object"},
		{"missing old", `{"newHours":"Monday Closed"}`, "oldHours is required"},
		{"blank new", `{"oldHours":"Monday: Closed","newHours":"   "}`, report.ErrMissingInput.Error()},
		{"tolerance too high", `{"oldHours":"a","newHours":"b","toleranceMinutes":61}`, "toleranceMinutes must be between 0 and 60"},
		{"negative tolerance", `{"oldHours":"a","newHours":"b","toleranceMinutes":-1}`, "toleranceMinutes must be between 0 and 60"},
		{"bad format", `{"oldHours":"a","newHours":"b","oldFormat":"yaml"}`, "oldFormat must be one of"},
		{"bad week start", `{"oldHours":"a","newHours":"b","weekStart":"someday"}`, `weekStart: unknown day "someday"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, s, http.MethodPost, "/v1/compare", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			env := decode(t, rr)
			assert.False(t, env.Success)
			assert.Contains(t, env.Error, tt.wantErr)
		})
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s := newTestServer()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus"} {
		logger, err := NewLogger(level)
		require.NoError(t, err, level)
		assert.NotNil(t, logger)
	}
}
