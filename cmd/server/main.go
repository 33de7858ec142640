package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"docgate/internal/auth"
	"docgate/internal/config"
	"docgate/internal/handler"
	"docgate/internal/handler/sse"
	"docgate/internal/middleware"
	"docgate/internal/repository/memory"
	"docgate/internal/service"
	"docgate/internal/service/authz"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	// Create the token verifier: remote JWKS when configured, otherwise the
	// local HMAC key shared with the built-in issuer
	var verifier auth.TokenVerifier
	var err error
	if cfg.JWKSURL != "" {
		verifier, err = auth.NewJWKSVerifier(cfg.JWKSURL, logger)
	} else {
		verifier, err = auth.NewHMACVerifier(cfg.JWTSigningKey, cfg.JWTIssuer, logger)
	}
	if err != nil {
		log.Fatalf("Failed to create token verifier: %v", err)
	}
	defer verifier.Close()

	// Credential directory and token issuer for the login endpoint
	directory := auth.DefaultDirectory()
	if cfg.UsersFile != "" {
		directory, err = auth.LoadDirectory(cfg.UsersFile)
		if err != nil {
			log.Fatalf("Failed to load users file: %v", err)
		}
		logger.Info("credential directory loaded", "users_file", cfg.UsersFile)
	}

	issuer, err := auth.NewTokenIssuer(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token issuer: %v", err)
	}

	// Create store, authorizer and service
	store := memory.NewDocumentStore()
	authorizer := authz.NewRoleTenantAuthorizer()
	docService := service.NewDocumentService(store, authorizer, logger)

	// Create handlers
	docHandler := handler.NewDocumentHandler(docService, logger)
	authHandler := handler.NewAuthHandler(directory, issuer, logger)
	streamHandler := handler.NewStreamHandler(docService, logger, sse.DefaultConfig())

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check and login
	mux.HandleFunc("GET /health", docHandler.HealthCheck)
	mux.HandleFunc("POST /login", authHandler.Login)

	// Document routes
	mux.HandleFunc("POST /api/documents", docHandler.CreateDocument)
	mux.HandleFunc("GET /api/documents/tenant", docHandler.ListTenantDocuments) // Must come before {id} route
	mux.HandleFunc("GET /api/documents/user", docHandler.ListUserDocuments)
	mux.HandleFunc("GET /api/documents/{id}", docHandler.GetDocument)

	// Streaming routes (SSE)
	mux.HandleFunc("GET /api/stream/documents/tenant", streamHandler.StreamTenantDocuments)
	mux.HandleFunc("GET /api/stream/documents/{id}/process", streamHandler.ProcessDocument)

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	h = middleware.Auth(verifier, logger)(h)
	h = middleware.Recovery(logger)(h)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "Last-Event-ID"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled to allow long-lived SSE streams
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
