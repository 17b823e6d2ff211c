package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"vokabelbuch/internal/middleware"
	"vokabelbuch/internal/model"
	"vokabelbuch/internal/service"
	"vokabelbuch/internal/webutil"
)

type WordHandler struct {
	service service.WordService
}

func NewWordHandler(s service.WordService) *WordHandler {
	return &WordHandler{service: s}
}

// GetWords はログインユーザーの単語一覧を新しい順に返します
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetWords"))

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	words, err := h.service.ListWords(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if words == nil {
		words = []*model.Word{}
	}

	logger.Debug("Words listed", slog.Int("count", len(words)))
	webutil.RespondWithJSON(w, http.StatusOK, words)
}

// PostWord は新しい単語を作成します
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PostWord"))

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.PostWordRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid word request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.service.CreateWord(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, word)
}

// GetWord は単語を1件返します
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetWord"))

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	word, err := h.service.GetWord(r.Context(), userID, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Word not found", slog.String("word_id", wordID.String()))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, word)
}

// PatchWord は指定されたフィールドのみ更新します。空のボディは変更なし
func (h *WordHandler) PatchWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PatchWord"))

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	var req model.PatchWordRequest
	if err := webutil.DecodeOptionalJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		logger.Warn("Invalid word patch", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.service.UpdateWord(r.Context(), userID, wordID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, word)
}

// DeleteWord は単語を削除します
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeleteWord"))

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := parseWordID(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.DeleteWord(r.Context(), userID, wordID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word deleted", slog.String("word_id", wordID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Word deleted successfully"})
}
