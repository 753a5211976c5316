package llm

import (
	"encoding/json"
	"errors"
	"net/http"

	"lesson-sage/internal/generator"
	"lesson-sage/internal/logger"

	"github.com/go-chi/chi/v5"
)

// maxPromptBytes caps the request body of POST /lessons/generate.
const maxPromptBytes = 64 << 10

// Handler is the http api layer for the generation gateway.
type Handler struct {
	service Service
	log     *logger.Logger
}

// NewHandler creates a new handler injecting the service.
func NewHandler(s Service, log *logger.Logger) *Handler {
	return &Handler{
		service: s,
		log:     log,
	}
}

// RegisterRoutes attaches the generation endpoint behind requireAuth.
func (h *Handler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.With(requireAuth).Post("/lessons/generate", h.handleGenerate)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPromptBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	answer, err := h.service.Generate(r.Context(), req.Prompt)
	if err != nil {
		h.writeGenerateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{Answer: answer})
}

// writeGenerateError renders a failure with a localized message and its machine-readable kind.
func (h *Handler) writeGenerateError(w http.ResponseWriter, r *http.Request, err error) {
	lang := r.Header.Get("Accept-Language")
	if errors.Is(err, generator.ErrEmptyPrompt) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: message(lang, kindEmptyPrompt),
			Kind:  kindEmptyPrompt,
		})
		return
	}

	resp := errorResponse{}
	status := http.StatusInternalServerError
	var failure *generator.Failure
	if errors.As(err, &failure) {
		status = statusFor(failure.Kind)
		if failure.Kind == generator.KindHTTP {
			resp.UpstreamStatus = failure.Status
		}
	}
	kind := generator.KindOf(err)
	resp.Kind = kind.String()
	resp.Error = message(lang, resp.Kind)

	h.log.Warn("generation failed",
		"backend", h.service.Backend(),
		"kind", resp.Kind,
		"upstream_status", resp.UpstreamStatus,
		"error", err,
	)
	writeJSON(w, status, resp)
}

func statusFor(kind generator.Kind) int {
	switch kind {
	case generator.KindMissingCredential:
		return http.StatusServiceUnavailable
	case generator.KindTransport:
		return http.StatusGatewayTimeout
	case generator.KindHTTP, generator.KindDecode, generator.KindEmptyResult:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON is a helper function for sending json responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for sending a standardized json error.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
