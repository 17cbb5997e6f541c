package local

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"zumogate/internal/auth"
	"zumogate/internal/authz"
	"zumogate/internal/contextutil"
	"zumogate/internal/observability/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logging.Logger {
	return &logging.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// recordingHandler keeps log records so tests can inspect their attributes.
type recordingHandler struct {
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func TestAuthorize(t *testing.T) {
	a := New(testLogger())

	tests := []struct {
		name       string
		identity   *auth.Identity
		want       authz.Decision
		wantReason string
	}{
		{name: "nil identity", identity: nil, want: authz.Unauthorized, wantReason: "No authenticated identity"},
		{name: "anonymous identity", identity: auth.NewAnonymousIdentity(), want: authz.Unauthorized, wantReason: "No authenticated identity"},
		{
			name:       "authenticated identity",
			identity:   &auth.Identity{Scheme: "zumo", Claims: []auth.Claim{{Type: "sub", Value: "u"}}},
			want:       authz.Allow,
			wantReason: "Identity authenticated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := a.Authorize(&authz.Request{
				Identity:   tt.identity,
				Permission: "access",
				Context:    context.Background(),
			})
			assert.Equal(t, tt.want, resp.Decision)
			assert.Equal(t, tt.wantReason, resp.Reason)
		})
	}
}

func TestMiddleware(t *testing.T) {
	a := New(testLogger())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := a.Middleware("access")(next)

	t.Run("anonymous request is refused", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("authenticated request passes", func(t *testing.T) {
		identity := &auth.Identity{Scheme: "zumo", Claims: []auth.Claim{{Type: "sub", Value: "u"}}}
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r = r.WithContext(contextutil.WithIdentity(r.Context(), identity))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMiddlewareLogsRefusalReason(t *testing.T) {
	h := &recordingHandler{}
	a := New(&logging.Logger{Logger: slog.New(h)})

	handler := a.Middleware("access")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var reasons []string
	for _, rec := range h.records {
		rec.Attrs(func(attr slog.Attr) bool {
			if attr.Key == "reason" {
				reasons = append(reasons, attr.Value.String())
			}
			return true
		})
	}
	assert.Contains(t, reasons, "No authenticated identity")
}
