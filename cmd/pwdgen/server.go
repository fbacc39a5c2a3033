package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/chirichan/pwdgen/internal/sampler"
)

// generateRequest uses pointers so a missing field falls back to its default.
type generateRequest struct {
	Length *int  `json:"length"`
	Upper  *bool `json:"upper"`
	Lower  *bool `json:"lower"`
	Digit  *bool `json:"digit"`
	Symbol *bool `json:"symbol"`
}

type generateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

func (r generateRequest) config() sampler.GenerationConfig {
	cfg := sampler.GenerationConfig{Length: DefaultLength}
	if r.Length != nil {
		cfg.Length = *r.Length
	}
	for c, p := range map[sampler.Class]*bool{
		sampler.Uppercase: r.Upper,
		sampler.Lowercase: r.Lower,
		sampler.Digit:     r.Digit,
		sampler.Symbol:    r.Symbol,
	} {
		if p == nil || *p {
			cfg.Classes = cfg.Classes.With(c)
		}
	}
	return cfg
}

type generateHandler struct {
	sampler *sampler.Sampler
	logger  *slog.Logger
}

func (h *generateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	cfg := req.config()
	if cfg.Length > MaxLength {
		writeJSON(w, http.StatusBadRequest, errorResponse(fmt.Sprintf("length must be at most %d", MaxLength)))
		return
	}
	pwd, err := h.sampler.Generate(cfg)
	if err != nil {
		if errors.Is(err, sampler.ErrNoCharacterClassSelected) {
			writeJSON(w, http.StatusBadRequest, errorResponse(MsgNoClass))
			return
		}
		h.logger.Error("generate password", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{Password: pwd, Length: len(pwd)})
}

func newRouter(s *sampler.Sampler, logger *slog.Logger, limiter *ipRateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Method(http.MethodPost, "/api/v1/generate", &generateHandler{sampler: s, logger: logger})
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// Serve runs the HTTP endpoint until SIGINT, SIGTERM or the command context ends.
func (m *PwdGenCLI) Serve(cmd *cobra.Command, args []string) error {
	cfg := loadServeConfig(m.Logger)
	if addr, _ := cmd.Flags().GetString("addr"); cmd.Flags().Changed("addr") {
		cfg.Addr = addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := newIPRateLimiter(cfg.Rate, cfg.Burst)
	go limiter.cleanup(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(m.Sampler, m.Logger, limiter),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		m.Logger.Info("server starting", "addr", cfg.Addr, "rate", cfg.Rate, "burst", cfg.Burst)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	m.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	m.Logger.Info("server stopped")
	return nil
}
