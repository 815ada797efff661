package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"NewswireNotifier/internal/domain"
	"NewswireNotifier/internal/ports"
	"NewswireNotifier/internal/usecase"
)

const maxBulletinSize = 8 << 20

// Processor is the part of the pipeline the intake needs.
type Processor interface {
	Process(ctx context.Context, bulletin ports.Bulletin) (usecase.Report, error)
}

// Response is the JSON body returned for every bulletin.
type Response struct {
	RequestID string                      `json:"request_id"`
	Status    domain.Outcome              `json:"status"`
	Payload   *domain.NotificationPayload `json:"payload,omitempty"`
	Error     string                      `json:"error,omitempty"`
}

// Server accepts bulletins over HTTP.
type Server struct {
	processor Processor
	gatherer  prometheus.Gatherer
	logger    *slog.Logger
}

// NewServer wires the processor; a nil gatherer serves the default registry.
func NewServer(processor Processor, gatherer prometheus.Gatherer, logger *slog.Logger) *Server {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{processor: processor, gatherer: gatherer, logger: logger}
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/bulletins", s.handleBulletin).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return r
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http intake listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleBulletin(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	logger := s.logger.With("request_id", requestID)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBulletinSize))
	if err != nil {
		logger.Warn("read bulletin", "error", err)
		writeJSON(w, http.StatusRequestEntityTooLarge, Response{
			RequestID: requestID,
			Status:    domain.OutcomeInvalidDocument,
			Error:     fmt.Sprintf("read body: %v", err),
		})
		return
	}

	report, err := s.processor.Process(r.Context(), ports.Bulletin{
		Name:       requestID,
		Body:       body,
		ReceivedAt: time.Now(),
	})

	resp := Response{RequestID: requestID, Status: report.Outcome}
	if len(report.Result.Payload.Attachments) > 0 {
		resp.Payload = &report.Result.Payload
	}
	if err != nil {
		resp.Error = err.Error()
	}

	logger.Debug("bulletin handled", "outcome", report.Outcome)
	writeJSON(w, statusFor(report.Outcome), resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func statusFor(outcome domain.Outcome) int {
	switch outcome {
	case domain.OutcomeDelivered, domain.OutcomeWithheld, domain.OutcomeBelowThreshold:
		return http.StatusOK
	case domain.OutcomeDeliveryFailed:
		return http.StatusBadGateway
	default:
		return http.StatusUnprocessableEntity
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
