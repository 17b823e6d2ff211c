package handlers

import (
	"log/slog"
	"net/http"

	"vokabelbuch/internal/middleware"
	"vokabelbuch/internal/model"
	"vokabelbuch/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// currentUserID は認証ミドルウェアがセットしたユーザーIDを取り出します。
// 取得できない場合はエラーレスポンスを書き込み false を返します。
func currentUserID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Error("User ID missing from context", "error", err)
		webutil.HandleError(w, logger, err)
		return uuid.Nil, false
	}
	return userID, true
}

func parseWordID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	wordIDStr := chi.URLParam(r, "word_id")
	wordID, err := uuid.Parse(wordIDStr)
	if err != nil {
		logger.Warn("Invalid word ID format in URL", slog.String("word_id_str", wordIDStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "word_id must be a valid UUID.", "word_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return wordID, true
}
