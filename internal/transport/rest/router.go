package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Cards     *CardHandler
	Review    *ReviewHandler
	Stats     *StatsHandler
	WordLists *WordListHandler
	Sessions  *SessionHandler
	Schedule  *ScheduleHandler
	Import    *ImportHandler
}

// NewRouter mounts all REST routes on a ServeMux. Middleware (auth,
// logging, CORS) wraps the returned handler in the app layer.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/v1/auth/me", h.Auth.Me)

	mux.HandleFunc("POST /api/v1/cards", h.Cards.Create)
	mux.HandleFunc("GET /api/v1/cards", h.Cards.List)
	mux.HandleFunc("GET /api/v1/cards/{id}", h.Cards.Get)
	mux.HandleFunc("PATCH /api/v1/cards/{id}", h.Cards.Update)
	mux.HandleFunc("DELETE /api/v1/cards/{id}", h.Cards.Delete)
	mux.HandleFunc("POST /api/v1/cards/{id}/review", h.Review.Review)
	mux.HandleFunc("POST /api/v1/cards/{id}/progress", h.Review.Progress)

	mux.HandleFunc("GET /api/v1/review/today", h.Review.Today)
	mux.HandleFunc("GET /api/v1/review/upcoming", h.Review.Upcoming)
	mux.HandleFunc("GET /api/v1/review/history", h.Stats.History)
	mux.HandleFunc("POST /api/v1/review/cards", h.Review.AddToReview)

	mux.HandleFunc("GET /api/v1/stats", h.Stats.Stats)

	mux.HandleFunc("POST /api/v1/lists", h.WordLists.Create)
	mux.HandleFunc("GET /api/v1/lists", h.WordLists.List)
	mux.HandleFunc("GET /api/v1/lists/{id}", h.WordLists.Get)
	mux.HandleFunc("PATCH /api/v1/lists/{id}", h.WordLists.Update)
	mux.HandleFunc("DELETE /api/v1/lists/{id}", h.WordLists.Delete)

	mux.HandleFunc("POST /api/v1/sessions/review", h.Sessions.StartReview)
	mux.HandleFunc("GET /api/v1/sessions/review/{id}", h.Sessions.GetReview)
	mux.HandleFunc("POST /api/v1/sessions/review/{id}/finish", h.Sessions.FinishReview)
	mux.HandleFunc("POST /api/v1/sessions/test", h.Sessions.StartTest)
	mux.HandleFunc("GET /api/v1/sessions/test/{id}", h.Sessions.GetTest)
	mux.HandleFunc("POST /api/v1/sessions/test/{id}/results", h.Sessions.SubmitResult)
	mux.HandleFunc("POST /api/v1/sessions/test/{id}/finish", h.Sessions.FinishTest)

	mux.HandleFunc("GET /api/v1/schedule", h.Schedule.Get)
	mux.HandleFunc("PUT /api/v1/schedule", h.Schedule.Update)

	mux.HandleFunc("POST /api/v1/import", h.Import.Import)

	return mux
}
