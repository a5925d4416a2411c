package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/seek/internal/domain"
	"github.com/aalvaropc/seek/internal/ports"
)

type Server struct {
	cfg    Config
	router chi.Router
	log    *slog.Logger
	check  ports.TargetChecker
}

func NewServer(cfg Config, check ports.TargetChecker, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultConfig().MaxBodyBytes
	}

	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		log:    log,
		check:  check,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)

	s.router.Get("/health", s.health)
	s.router.Get("/search", s.searchQuery)
	s.router.Post("/search", s.searchBody)
	s.router.Post("/check", s.checkBody)
	return s
}

// Handler exposes the router (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.log.Info("http.listen", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.log.Info("http.shutdown")
		return srv.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

// ListenAndServe binds cfg.Addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return &domain.OpError{Op: "httpapi.listen", Kind: domain.KindExecution, Err: err}
	}
	return s.Serve(ctx, ln)
}

type searchRequest struct {
	Values []int `json:"values"`
	Target *int  `json:"target"`
}

type checkRequest struct {
	Values  []int `json:"values"`
	Targets []int `json:"targets"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) searchQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	values, err := domain.ParseSequence(q.Get("values"))
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	raw := strings.TrimSpace(q.Get("target"))
	if raw == "" {
		s.fail(w, http.StatusBadRequest, errors.New("target query param required"))
		return
	}
	target, err := strconv.Atoi(raw)
	if err != nil {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("target %q is not an integer", raw))
		return
	}

	s.respondSearch(w, r, values, target)
}

func (s *Server) searchBody(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	if req.Target == nil {
		s.fail(w, http.StatusBadRequest, errors.New("target is required"))
		return
	}

	s.respondSearch(w, r, req.Values, *req.Target)
}

func (s *Server) respondSearch(w http.ResponseWriter, r *http.Request, values []int, target int) {
	results, err := s.check.Execute(r.Context(), values, []int{target})
	if err != nil {
		s.fail(w, statusFor(err), err)
		return
	}
	s.respond(w, http.StatusOK, results[0])
}

func (s *Server) checkBody(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	results, err := s.check.Execute(r.Context(), req.Values, req.Targets)
	if err != nil {
		s.fail(w, statusFor(err), err)
		return
	}
	s.respond(w, http.StatusOK, results)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("http.encode.failed", "err", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	s.respond(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case domain.IsKind(err, domain.KindInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("http.request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
