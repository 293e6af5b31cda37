// Package httpapi is the embedding collaborator spec.md describes but
// leaves out of the core: an HTTP layer that accepts a JSON body and
// invokes symspell.LookupCompound, returning the corrected phrase. The
// engine has no knowledge of this package; it only ever sees Go calls.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/lexicore/symspell/internal/audit"
	"github.com/lexicore/symspell/internal/symspell"
)

// Server is the gorilla/mux-based HTTP transport in front of a loaded
// SymSpell engine. /spellchecker/ goes through a Corrector, the
// concurrency-safe façade spec.md §5's concurrency model motivates, rather
// than calling the engine directly; /lookup calls the engine directly since
// it needs to vary verbosity and max_distance per request, which the
// façade's fixed-configuration methods don't expose.
type Server struct {
	engine          *symspell.SymSpell
	corrector       *symspell.Corrector
	maxEditDistance int
	apiKey          string
	tracker         *audit.Tracker

	router     *mux.Router
	httpServer *http.Server
}

// SetTracker attaches a correction-log tracker. When set, every successful
// /spellchecker/ call is recorded; a nil tracker (the default) disables
// logging entirely rather than failing requests.
func (s *Server) SetTracker(t *audit.Tracker) {
	s.tracker = t
}

// NewServer wires routes and middleware around an already-loaded engine.
// apiKey may be empty, in which case the Authentication middleware is a
// no-op.
func NewServer(engine *symspell.SymSpell, maxEditDistance int, ignoreNonWords bool, addr, apiKey string) *Server {
	s := &Server{
		engine:          engine,
		corrector:       symspell.NewCorrector(engine, maxEditDistance, ignoreNonWords),
		maxEditDistance: maxEditDistance,
		apiKey:          apiKey,
	}
	s.setupRoutes()
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	s.router.HandleFunc("/spellchecker/", s.handleSpellchecker).Methods(http.MethodPost)
	s.router.HandleFunc("/lookup", s.handleLookup).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)

	s.router.Use(corsMiddleware())
	s.router.Use(requestLoggingMiddleware())
	if s.apiKey != "" {
		s.router.Use(authenticationMiddleware(s.apiKey))
	}
}

// Start runs the server until SIGINT/SIGTERM, then drains in-flight
// requests for up to 30s before returning.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		fmt.Printf("symspell: listening on http://%s\n", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("symspell: server error: %v\n", err)
		}
	}()

	<-stop
	fmt.Println("symspell: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		fmt.Printf("symspell: shutdown error: %v\n", err)
	}
	fmt.Println("symspell: stopped")
	return nil
}
