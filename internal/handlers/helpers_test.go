package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vokabelbuch/internal/handlers"
	"vokabelbuch/internal/middleware"
	"vokabelbuch/internal/model"
	"vokabelbuch/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testEnv はモックサービスを差し込んだルーター
type testEnv struct {
	router      *chi.Mux
	authService *mocks.AuthService
	wordService *mocks.WordService
	quizService *mocks.QuizService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		router:      chi.NewRouter(),
		authService: mocks.NewAuthService(t),
		wordService: mocks.NewWordService(t),
		quizService: mocks.NewQuizService(t),
	}
	h := &handlers.Handlers{
		Auth: handlers.NewAuthHandler(env.authService),
		Word: handlers.NewWordHandler(env.wordService),
		Quiz: handlers.NewQuizHandler(env.quizService),
	}
	// テストでは X-User-ID ヘッダーで認証する
	h.Mount(env.router, middleware.DevUserContextMiddleware)
	return env
}

// executeRequest はテスト用のHTTPリクエストを実行し、レスポンスレコーダーを返します。
func (e *testEnv) executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// createRequest はテスト用のHTTPリクエストを作成します。
// userID が指定されていれば X-User-ID ヘッダーを追加します。
func createRequest(t *testing.T, method, url string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()
	var reqBodyBytes []byte
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBodyBytes = []byte(b)
		case []byte:
			reqBodyBytes = b
		default:
			var err error
			reqBodyBytes, err = json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBodyBytes))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

// decodeError はエラーレスポンスのボディを取り出します。
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp), "body: %s", rr.Body.String())
	return errResp.Error
}

func strPtr(s string) *string { return &s }
