package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer secret")
	h.Set("Content-Type", "application/json")
	h.Add("Accept", "text/html")
	h.Add("Accept", "application/json")

	got := formatHeaders(h)
	assert.Equal(t, "[SENSITIVE]", got["Authorization"])
	assert.Equal(t, "application/json", got["Content-Type"])
	assert.Equal(t, "text/html, application/json", got["Accept"])
}

func TestFormatBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{"empty", "application/json", "", ""},
		{"password masked", "application/json", `{"email":"a@b.c","password":"hunter22"}`, `{"email":"a@b.c","password":"[MASKED]"}`},
		{"token masked", "application/json; charset=utf-8", `{"access_token":"abc","token_type":"Bearer"}`, `{"access_token":"[MASKED]","token_type":"Bearer"}`},
		{"json array", "application/json", `[1,2]`, "[Unparseable JSON body: 5 bytes]"},
		{"not json", "text/plain", "hello", "[Non-JSON body: 5 bytes]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := formatBody(tc.contentType, []byte(tc.body))
			if strings.HasPrefix(tc.want, "{") {
				assert.JSONEq(t, tc.want, got)
			} else {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seen *slog.Logger
	var seenBody string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetLogger(r.Context())
		b, _ := io.ReadAll(r.Body)
		seenBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"code":"DUPLICATE_EMAIL"}}`))
	})
	handler := chimiddleware.RequestID(LoggingMiddleware(logger)(inner))

	body := `{"email":"a@b.c","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.NotNil(t, seen)
	assert.NotSame(t, slog.Default(), seen)
	// ボディは読み戻せる
	assert.Equal(t, body, seenBody)
	assert.Equal(t, http.StatusConflict, rr.Code)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Request completed"`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"status":409`)
	assert.Contains(t, out, `"req_id"`)
	assert.Contains(t, out, "[MASKED]")
	assert.NotContains(t, out, "hunter22")
}

func TestGetLogger_Default(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, slog.Default(), GetLogger(req.Context()))
}
