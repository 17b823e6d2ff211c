package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"vokabelbuch/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func errWordNotFound() error {
	return model.NewAppError("WORD_NOT_FOUND", "Word not found.", "", model.ErrNotFound)
}

func TestWordHandler_PostWord(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func(env *testEnv)
		expectedStatus int
		expectedCode   string
		expectedField  string
	}{
		{
			name:   "Success",
			userID: &userID,
			body:   map[string]string{"german": "Hund", "english": "dog", "article": "DER"},
			setupMock: func(env *testEnv) {
				req := &model.PostWordRequest{German: "Hund", English: "dog", Article: strPtr(model.ArticleDer)}
				env.wordService.On("CreateWord", mock.Anything, userID, req).
					Return(&model.Word{WordID: uuid.New(), UserID: userID, German: "Hund", English: "dog", Article: strPtr("DER"), CreatedAt: time.Now()}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - Missing X-User-ID",
			body:           map[string]string{"german": "Hund", "english": "dog"},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "Fail - Blank german",
			userID:         &userID,
			body:           map[string]string{"german": "   ", "english": "dog"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
			expectedField:  "german",
		},
		{
			name:           "Fail - First failing field is reported",
			userID:         &userID,
			body:           map[string]string{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
			expectedField:  "german",
		},
		{
			name:           "Fail - Unknown article",
			userID:         &userID,
			body:           map[string]string{"german": "Hund", "english": "dog", "article": "DEN"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
			expectedField:  "article",
		},
		{
			name:           "Fail - Broken JSON",
			userID:         &userID,
			body:           `{"german": "Hund"`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_JSON",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tc.setupMock != nil {
				tc.setupMock(env)
			}

			rr := env.executeRequest(createRequest(t, http.MethodPost, "/api/v1/words", tc.body, tc.userID))
			assert.Equal(t, tc.expectedStatus, rr.Code, rr.Body.String())

			if tc.expectedCode != "" {
				detail := decodeError(t, rr)
				assert.Equal(t, tc.expectedCode, detail.Code)
				assert.Equal(t, tc.expectedField, detail.Field)
				assert.NotEmpty(t, detail.Message)
				return
			}

			var word model.Word
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &word))
			assert.Equal(t, "Hund", word.German)
			assert.Equal(t, 0, word.ReviewCount)
		})
	}
}

func TestWordHandler_GetWords(t *testing.T) {
	userID := uuid.New()

	t.Run("Empty list is an empty JSON array", func(t *testing.T) {
		env := newTestEnv(t)
		env.wordService.On("ListWords", mock.Anything, userID).Return(nil, nil).Once()

		rr := env.executeRequest(createRequest(t, http.MethodGet, "/api/v1/words", nil, &userID))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Words are returned in service order", func(t *testing.T) {
		env := newTestEnv(t)
		words := []*model.Word{
			{WordID: uuid.New(), German: "Katze", English: "cat"},
			{WordID: uuid.New(), German: "Hund", English: "dog"},
		}
		env.wordService.On("ListWords", mock.Anything, userID).Return(words, nil).Once()

		rr := env.executeRequest(createRequest(t, http.MethodGet, "/api/v1/words", nil, &userID))
		require.Equal(t, http.StatusOK, rr.Code)

		var got []model.Word
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Katze", got[0].German)
		assert.Equal(t, "Hund", got[1].German)
	})
}

func TestWordHandler_GetWord(t *testing.T) {
	userID := uuid.New()
	wordID := uuid.New()

	t.Run("Invalid ID", func(t *testing.T) {
		env := newTestEnv(t)
		rr := env.executeRequest(createRequest(t, http.MethodGet, "/api/v1/words/not-a-uuid", nil, &userID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "word_id", decodeError(t, rr).Field)
	})

	t.Run("Not found", func(t *testing.T) {
		env := newTestEnv(t)
		env.wordService.On("GetWord", mock.Anything, userID, wordID).Return(nil, errWordNotFound()).Once()

		rr := env.executeRequest(createRequest(t, http.MethodGet, "/api/v1/words/"+wordID.String(), nil, &userID))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "WORD_NOT_FOUND", decodeError(t, rr).Code)
	})

	t.Run("Found", func(t *testing.T) {
		env := newTestEnv(t)
		env.wordService.On("GetWord", mock.Anything, userID, wordID).
			Return(&model.Word{WordID: wordID, UserID: userID, German: "Hund", English: "dog"}, nil).Once()

		rr := env.executeRequest(createRequest(t, http.MethodGet, "/api/v1/words/"+wordID.String(), nil, &userID))
		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, wordID.String(), body["word_id"])
	})
}

func TestWordHandler_PatchWord(t *testing.T) {
	userID := uuid.New()
	wordID := uuid.New()
	path := "/api/v1/words/" + wordID.String()
	current := &model.Word{WordID: wordID, German: "Hund", English: "dog"}

	t.Run("Empty body returns the unchanged word", func(t *testing.T) {
		env := newTestEnv(t)
		env.wordService.On("UpdateWord", mock.Anything, userID, wordID, &model.PatchWordRequest{}).Return(current, nil).Once()

		rr := env.executeRequest(createRequest(t, http.MethodPatch, path, nil, &userID))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Only supplied fields are passed", func(t *testing.T) {
		env := newTestEnv(t)
		env.wordService.On("UpdateWord", mock.Anything, userID, wordID, &model.PatchWordRequest{English: strPtr("hound")}).
			Return(&model.Word{WordID: wordID, German: "Hund", English: "hound"}, nil).Once()

		rr := env.executeRequest(createRequest(t, http.MethodPatch, path, map[string]string{"english": "hound"}, &userID))
		require.Equal(t, http.StatusOK, rr.Code)

		var word model.Word
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &word))
		assert.Equal(t, "Hund", word.German)
		assert.Equal(t, "hound", word.English)
	})

	t.Run("Supplied blank german is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		rr := env.executeRequest(createRequest(t, http.MethodPatch, path, map[string]string{"german": ""}, &userID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "german", decodeError(t, rr).Field)
	})

	t.Run("Invalid difficulty is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		rr := env.executeRequest(createRequest(t, http.MethodPatch, path, map[string]string{"difficulty": "EXTREME"}, &userID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "difficulty", decodeError(t, rr).Field)
	})

	t.Run("Another user's word is not found", func(t *testing.T) {
		env := newTestEnv(t)
		env.wordService.On("UpdateWord", mock.Anything, userID, wordID, mock.Anything).Return(nil, errWordNotFound()).Once()

		rr := env.executeRequest(createRequest(t, http.MethodPatch, path, map[string]string{"english": "hound"}, &userID))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestWordHandler_DeleteWord(t *testing.T) {
	userID := uuid.New()
	wordID := uuid.New()
	path := "/api/v1/words/" + wordID.String()

	t.Run("Deleted", func(t *testing.T) {
		env := newTestEnv(t)
		env.wordService.On("DeleteWord", mock.Anything, userID, wordID).Return(nil).Once()

		rr := env.executeRequest(createRequest(t, http.MethodDelete, path, nil, &userID))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Word deleted successfully"}`, rr.Body.String())
	})

	t.Run("Missing", func(t *testing.T) {
		env := newTestEnv(t)
		env.wordService.On("DeleteWord", mock.Anything, userID, wordID).Return(errWordNotFound()).Once()

		rr := env.executeRequest(createRequest(t, http.MethodDelete, path, nil, &userID))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Invalid X-User-ID", func(t *testing.T) {
		env := newTestEnv(t)
		req := createRequest(t, http.MethodDelete, path, nil, nil)
		req.Header.Set("X-User-ID", "nobody")

		rr := env.executeRequest(req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
