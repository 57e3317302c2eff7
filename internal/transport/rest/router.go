package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"judgesim/internal/catalog"
	"judgesim/internal/service"
	"judgesim/internal/transport/rest/handler"
	"judgesim/internal/transport/rest/middleware"
	"judgesim/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService
	ReportService  *service.ReportService
	JudgeService   *service.JudgeService
	Bank           *catalog.Bank
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	awardHandler := handler.NewAwardHandler(c.Bank)
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	readinessHandler := handler.NewReadinessHandler()
	chatHandler := handler.NewChatHandler(c.JudgeService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.SessionService, c.JudgeService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/awards", awardHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/awards/{id}", awardHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/readiness/quiz", readinessHandler.Quiz).Methods("GET", "OPTIONS")
	v1.HandleFunc("/readiness/score", readinessHandler.Score).Methods("POST", "OPTIONS")

	// WebSocket routes (token in query param)
	v1.HandleFunc("/ws/sessions/{id}/voice", wsHandler.VoiceWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST", "OPTIONS")

	userRoutes.HandleFunc("/sessions", sessionHandler.Start).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/sessions/{id}/answers", sessionHandler.SubmitAnswer).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/sessions/{id}/draft", sessionHandler.SaveDraft).Methods("PUT", "OPTIONS")
	userRoutes.HandleFunc("/sessions/{id}/hints", sessionHandler.Hints).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/sessions/{id}/finish", sessionHandler.Finish).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/sessions/{id}/restart", sessionHandler.Restart).Methods("POST", "OPTIONS")

	userRoutes.HandleFunc("/reports", reportHandler.History).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/reports/latest", reportHandler.Latest).Methods("GET", "OPTIONS")

	userRoutes.HandleFunc("/ai/chat", chatHandler.GenerateQuestion).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
