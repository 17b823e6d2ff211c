package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"vokabelbuch/internal/model"
	"vokabelbuch/internal/quiz"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func inProgress() *model.QuizSessionResponse {
	id := uuid.New()
	started := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	return &model.QuizSessionResponse{
		SessionID: &id,
		Status:    quiz.StatusInProgress,
		Total:     1,
		StartedAt: &started,
		Questions: []model.QuizQuestionView{{Index: 0, WordID: uuid.New(), Prompt: "dog", Direction: quiz.EnglishToGerman}},
	}
}

func TestQuizHandler_Start(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(env *testEnv)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Empty body uses the default count",
			setupMock: func(env *testEnv) {
				env.quizService.On("Start", mock.Anything, userID, 0).Return(inProgress(), nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Explicit count",
			body: map[string]int{"count": 5},
			setupMock: func(env *testEnv) {
				env.quizService.On("Start", mock.Anything, userID, 5).Return(inProgress(), nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Negative count",
			body:           map[string]int{"count": -1},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "No words",
			setupMock: func(env *testEnv) {
				env.quizService.On("Start", mock.Anything, userID, 0).
					Return(nil, model.NewAppError("NO_WORDS", "no words available", "", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "NO_WORDS",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tc.setupMock != nil {
				tc.setupMock(env)
			}

			rr := env.executeRequest(createRequest(t, http.MethodPost, "/api/v1/quiz/start", tc.body, &userID))
			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, decodeError(t, rr).Code)
			}
		})
	}
}

func TestQuizHandler_Session(t *testing.T) {
	userID := uuid.New()

	t.Run("Not started", func(t *testing.T) {
		env := newTestEnv(t)
		env.quizService.On("Current", mock.Anything, userID).Return(model.NotStartedQuizResponse(), nil).Once()

		rr := env.executeRequest(createRequest(t, http.MethodGet, "/api/v1/quiz/session", nil, &userID))
		require.Equal(t, http.StatusOK, rr.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "not_started", body["status"])
		assert.Equal(t, []interface{}{}, body["questions"])
	})

	t.Run("Unanswered questions hide the answer", func(t *testing.T) {
		env := newTestEnv(t)
		env.quizService.On("Current", mock.Anything, userID).Return(inProgress(), nil).Once()

		rr := env.executeRequest(createRequest(t, http.MethodGet, "/api/v1/quiz/session", nil, &userID))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "Hund")
	})
}

func TestQuizHandler_Answer(t *testing.T) {
	userID := uuid.New()

	t.Run("Blank answer", func(t *testing.T) {
		env := newTestEnv(t)
		rr := env.executeRequest(createRequest(t, http.MethodPost, "/api/v1/quiz/answer", map[string]string{"answer": "  "}, &userID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "answer", decodeError(t, rr).Field)
	})

	t.Run("Answered", func(t *testing.T) {
		env := newTestEnv(t)
		env.quizService.On("Answer", mock.Anything, userID, " hund ").
			Return(&model.AnswerQuizResponse{Correct: true, CorrectAnswer: "Hund", Session: inProgress()}, nil).Once()

		rr := env.executeRequest(createRequest(t, http.MethodPost, "/api/v1/quiz/answer", map[string]string{"answer": " hund "}, &userID))
		require.Equal(t, http.StatusOK, rr.Code)

		var resp model.AnswerQuizResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Correct)
		assert.Equal(t, "Hund", resp.CorrectAnswer)
	})

	t.Run("Already answered", func(t *testing.T) {
		env := newTestEnv(t)
		env.quizService.On("Answer", mock.Anything, userID, "Hund").
			Return(nil, model.NewAppError("ALREADY_ANSWERED", "question already answered", "", model.ErrConflict)).Once()

		rr := env.executeRequest(createRequest(t, http.MethodPost, "/api/v1/quiz/answer", map[string]string{"answer": "Hund"}, &userID))
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestQuizHandler_NextAndRestart(t *testing.T) {
	userID := uuid.New()

	t.Run("Next without a session", func(t *testing.T) {
		env := newTestEnv(t)
		env.quizService.On("Next", mock.Anything, userID).
			Return(nil, model.NewAppError("QUIZ_NOT_STARTED", "No quiz in progress.", "", model.ErrNotFound)).Once()

		rr := env.executeRequest(createRequest(t, http.MethodPost, "/api/v1/quiz/next", nil, &userID))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Next completes with a summary", func(t *testing.T) {
		env := newTestEnv(t)
		session := inProgress()
		session.Status = quiz.StatusCompleted
		env.quizService.On("Next", mock.Anything, userID).
			Return(&model.NextQuizResponse{Session: session, Summary: &quiz.Summary{Score: 1, Total: 1, Percentage: 100}}, nil).Once()

		rr := env.executeRequest(createRequest(t, http.MethodPost, "/api/v1/quiz/next", nil, &userID))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"percentage":100`)
	})

	t.Run("Restart", func(t *testing.T) {
		env := newTestEnv(t)
		env.quizService.On("Restart", mock.Anything, userID, 3).Return(inProgress(), nil).Once()

		rr := env.executeRequest(createRequest(t, http.MethodPost, "/api/v1/quiz/restart", map[string]int{"count": 3}, &userID))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestQuizHandler_Submit(t *testing.T) {
	userID := uuid.New()
	wordID := uuid.New()

	t.Run("Created", func(t *testing.T) {
		env := newTestEnv(t)
		correct := true
		env.quizService.On("Submit", mock.Anything, userID, &model.SubmitQuizResultRequest{WordID: wordID, Correct: &correct}).
			Return(&model.QuizResult{ResultID: uuid.New(), UserID: userID, WordID: wordID, Correct: true}, nil).Once()

		body := map[string]interface{}{"wordId": wordID, "correct": true}
		rr := env.executeRequest(createRequest(t, http.MethodPost, "/api/v1/quiz/submit", body, &userID))
		assert.Equal(t, http.StatusCreated, rr.Code)

		var res map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
		assert.Equal(t, userID.String(), res["user_id"])
		assert.Equal(t, true, res["correct"])
	})

	t.Run("Snake case word_id accepted", func(t *testing.T) {
		env := newTestEnv(t)
		correct := false
		env.quizService.On("Submit", mock.Anything, userID, &model.SubmitQuizResultRequest{WordID: wordID, Correct: &correct}).
			Return(&model.QuizResult{ResultID: uuid.New(), UserID: userID, WordID: wordID}, nil).Once()

		body := map[string]interface{}{"word_id": wordID, "correct": false}
		rr := env.executeRequest(createRequest(t, http.MethodPost, "/api/v1/quiz/submit", body, &userID))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Missing word id", func(t *testing.T) {
		env := newTestEnv(t)
		body := map[string]interface{}{"correct": true}
		rr := env.executeRequest(createRequest(t, http.MethodPost, "/api/v1/quiz/submit", body, &userID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "wordId", decodeError(t, rr).Field)
	})

	t.Run("Unknown field rejected", func(t *testing.T) {
		env := newTestEnv(t)
		body := map[string]interface{}{"wordId": wordID, "correct": true, "score": 1}
		rr := env.executeRequest(createRequest(t, http.MethodPost, "/api/v1/quiz/submit", body, &userID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "INVALID_JSON", decodeError(t, rr).Code)
	})

	t.Run("Missing correct flag", func(t *testing.T) {
		env := newTestEnv(t)
		body := map[string]interface{}{"wordId": wordID}
		rr := env.executeRequest(createRequest(t, http.MethodPost, "/api/v1/quiz/submit", body, &userID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "correct", decodeError(t, rr).Field)
	})

	t.Run("Word not owned", func(t *testing.T) {
		env := newTestEnv(t)
		env.quizService.On("Submit", mock.Anything, userID, mock.Anything).Return(nil, errWordNotFound()).Once()

		body := map[string]interface{}{"wordId": wordID, "correct": true}
		rr := env.executeRequest(createRequest(t, http.MethodPost, "/api/v1/quiz/submit", body, &userID))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestQuizHandler_HistoryAndStats(t *testing.T) {
	userID := uuid.New()

	t.Run("Default limit", func(t *testing.T) {
		env := newTestEnv(t)
		env.quizService.On("History", mock.Anything, userID, 0).Return(nil, nil).Once()

		rr := env.executeRequest(createRequest(t, http.MethodGet, "/api/v1/quiz/history", nil, &userID))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Explicit limit", func(t *testing.T) {
		env := newTestEnv(t)
		env.quizService.On("History", mock.Anything, userID, 3).Return([]*model.QuizAttempt{{AttemptID: uuid.New(), Score: 2, Total: 3}}, nil).Once()

		rr := env.executeRequest(createRequest(t, http.MethodGet, "/api/v1/quiz/history?limit=3", nil, &userID))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		env := newTestEnv(t)
		rr := env.executeRequest(createRequest(t, http.MethodGet, "/api/v1/quiz/history?limit=abc", nil, &userID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "limit", decodeError(t, rr).Field)
	})

	t.Run("Stats", func(t *testing.T) {
		env := newTestEnv(t)
		env.quizService.On("Stats", mock.Anything, userID).Return(&model.QuizStats{Total: 4, Correct: 3, Incorrect: 1, Accuracy: 75}, nil).Once()

		rr := env.executeRequest(createRequest(t, http.MethodGet, "/api/v1/quiz/stats", nil, &userID))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"total":4,"correct":3,"incorrect":1,"accuracy":75}`, rr.Body.String())
	})
}
