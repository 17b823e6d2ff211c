package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers はルーティング対象のハンドラ一式
type Handlers struct {
	Auth *AuthHandler
	Word *WordHandler
	Quiz *QuizHandler
}

// Mount は /api/v1 配下のルートを登録します。auth は保護ルートに適用されます。
func (h *Handlers) Mount(r chi.Router, auth func(http.Handler) http.Handler) {
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/words", func(r chi.Router) {
				r.Get("/", h.Word.GetWords)
				r.Post("/", h.Word.PostWord)
				r.Get("/{word_id}", h.Word.GetWord)
				r.Patch("/{word_id}", h.Word.PatchWord)
				r.Delete("/{word_id}", h.Word.DeleteWord)
			})

			r.Route("/quiz", func(r chi.Router) {
				r.Post("/start", h.Quiz.Start)
				r.Get("/session", h.Quiz.Session)
				r.Post("/answer", h.Quiz.Answer)
				r.Post("/next", h.Quiz.Next)
				r.Post("/restart", h.Quiz.Restart)
				r.Post("/submit", h.Quiz.Submit)
				r.Get("/history", h.Quiz.History)
				r.Get("/stats", h.Quiz.Stats)
			})
		})
	})
}
