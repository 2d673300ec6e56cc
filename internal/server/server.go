// Package server exposes the arithmetic engine over a small JSON API,
// mirroring the route table of the original tool: one POST endpoint per
// operation, a GET primality probe, and a static documentation page.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/modclock/modclock/internal/config"
	"github.com/modclock/modclock/pkg/pool"
)

const shutdownTimeout = 5 * time.Second

// Server ties the HTTP surface to the pure engine packages. It holds no
// request state; the only shared piece is the worker pool used for prime
// sampling.
type Server struct {
	log  zerolog.Logger
	pool *pool.Pool
	http *http.Server
}

// New builds a Server listening on the configured address. The pool may
// be nil, in which case prime searches run on the request goroutine.
func New(cfg *config.Config, log zerolog.Logger, pl *pool.Pool) *Server {
	s := &Server{
		log:  log,
		pool: pl,
	}
	s.http = &http.Server{
		Addr:              cfg.Listen,
		Handler:           s.withRequestLog(s.routes()),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/modular/operation", s.handleModularOperation)
	mux.HandleFunc("POST /api/cipher/caesar", s.handleCaesar)
	mux.HandleFunc("POST /api/cipher/vigenere", s.handleVigenere)
	mux.HandleFunc("POST /api/rsa/generate", s.handleRSAGenerate)
	mux.HandleFunc("POST /api/rsa/generate/random", s.handleRSAGenerateRandom)
	mux.HandleFunc("POST /api/rsa/encrypt", s.handleRSAEncrypt)
	mux.HandleFunc("POST /api/rsa/decrypt", s.handleRSADecrypt)
	mux.HandleFunc("POST /api/crt/solve", s.handleCRTSolve)
	mux.HandleFunc("POST /api/fermat/verify", s.handleFermatVerify)
	mux.HandleFunc("GET /api/isprime/{n}", s.handleIsPrime)
	return mux
}

// Handler returns the full middleware-wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info().Str("listen", s.http.Addr).Msg("serving")
		if err := s.http.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestLog tags every request with an id and writes one access-log
// line when it completes.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		start := time.Now()
		next.ServeHTTP(rec, r)

		s.log.Info().
			Str("request_id", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
