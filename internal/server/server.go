package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/alexr/huntboard/internal/audit"
	"github.com/alexr/huntboard/internal/config"
	"github.com/alexr/huntboard/internal/db"
	"github.com/alexr/huntboard/internal/server/middleware"
	"github.com/alexr/huntboard/internal/server/ratelimit"
	"github.com/alexr/huntboard/internal/types"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 30 * time.Second

// Store is the persistence surface the handlers need. *db.DB satisfies it;
// handler tests use a stub.
type Store interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
	ListSkills(ctx context.Context, userID uuid.UUID) ([]types.Skill, error)

	GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error)
	SetJobMatchScore(ctx context.Context, jobID uuid.UUID, score int) error

	ListContacts(ctx context.Context, userID uuid.UUID) ([]types.Contact, error)

	GetApplication(ctx context.Context, id uuid.UUID) (*types.Application, error)
	UpdateApplication(ctx context.Context, id uuid.UUID, record audit.Record) error
}

// Server hosts the HTTP REST API.
type Server struct {
	httpServer  *http.Server
	store       Store
	auditor     *audit.Auditor
	jwtService  *JWTService
	hasher      *config.PasswordHasher
	rateLimiter *ratelimit.Limiter
}

// New creates a server wired to the given store and auditor.
func New(cfg *config.Config, store Store, auditor *audit.Auditor) *Server {
	s := &Server{
		store:       store,
		auditor:     auditor,
		jwtService:  NewJWTService(cfg),
		hasher:      config.NewPasswordHasher(cfg),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	mux := http.NewServeMux()
	authed := middleware.Auth(s.jwtService)

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)

	mux.Handle("GET /jobs/{id}/match", authed(http.HandlerFunc(s.handleJobMatch)))
	mux.Handle("GET /contacts/rank", authed(http.HandlerFunc(s.handleRankContacts)))
	mux.Handle("PATCH /applications/{id}", authed(http.HandlerFunc(s.handleUpdateApplication)))
	mux.Handle("GET /audit/log", authed(http.HandlerFunc(s.handleAuditLog)))

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.loggingMiddleware(s.rateLimitMiddleware(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// loggingMiddleware logs request method, path and duration.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// rateLimitMiddleware rejects clients that exceed the request budget.
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, status := s.rateLimiter.Allow(clientID(r))
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", status.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", status.Remaining))
		w.Header().Set("X-RateLimit-Reset", status.Reset.UTC().Format(time.RFC3339))
		if !allowed {
			log.Printf("[rate-limit] Rate limit exceeded for %s", r.RemoteAddr)
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID identifies the caller for rate limiting, by IP address.
func clientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// jsonResponse writes a JSON response with the given status.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
