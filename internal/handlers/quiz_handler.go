package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"vokabelbuch/internal/middleware"
	"vokabelbuch/internal/model"
	"vokabelbuch/internal/service"
	"vokabelbuch/internal/webutil"
)

type QuizHandler struct {
	service service.QuizService
}

func NewQuizHandler(s service.QuizService) *QuizHandler {
	return &QuizHandler{service: s}
}

// decodeStart は省略可能な {count} を読み取ります
func decodeStart(w http.ResponseWriter, r *http.Request) (int, error) {
	var req model.StartQuizRequest
	if err := webutil.DecodeOptionalJSONBody(w, r, &req); err != nil {
		return 0, err
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		return 0, err
	}
	return req.Count, nil
}

// Start は新しいクイズを開始します。進行中のセッションは置き換えられます
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "StartQuiz"))

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}
	count, err := decodeStart(w, r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Start(r.Context(), userID, count)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// Session は現在のセッションを返します
func (h *QuizHandler) Session(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "QuizSession"))

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.Current(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "AnswerQuiz"))

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.AnswerQuizRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Answer(r.Context(), userID, req.Answer)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// Next は次の問題へ進みます。最後の問題なら結果が保存され summary が返ります
func (h *QuizHandler) Next(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "NextQuestion"))

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.Next(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *QuizHandler) Restart(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "RestartQuiz"))

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}
	count, err := decodeStart(w, r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Restart(r.Context(), userID, count)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// Submit はセッション外で1問分の結果を記録します
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "SubmitQuizResult"))

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	var req model.SubmitQuizResultRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid quiz result", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.Submit(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, result)
}

// History は完了したクイズを新しい順に返します。?limit=N
func (h *QuizHandler) History(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "QuizHistory"))

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "limit must be a positive integer.", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		limit = n
	}

	attempts, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if attempts == nil {
		attempts = []*model.QuizAttempt{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, attempts)
}

func (h *QuizHandler) Stats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "QuizStats"))

	userID, ok := currentUserID(w, r, logger)
	if !ok {
		return
	}

	stats, err := h.service.Stats(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats)
}
