package lesson

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"lesson-sage/internal/auth"
	"lesson-sage/internal/logger"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler is the HTTP API layer for the LessonService.
type Handler struct {
	service Service
	log     *logger.Logger
}

// NewHandler creates a new Handler, injecting the service.
func NewHandler(s Service, log *logger.Logger) *Handler {
	return &Handler{
		service: s,
		log:     log,
	}
}

// RegisterRoutes attaches the lesson endpoints. All of them need a signed in user.
func (h *Handler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/lessons", h.handleCreate)
		r.Get("/lessons", h.handleList)
		r.Get("/lessons/{lessonID}", h.handleGet)
		r.Put("/lessons/{lessonID}", h.handleUpdate)
		r.Delete("/lessons/{lessonID}", h.handleDelete)
	})
}

// lessonPayload is the DTO for create and update. Date accepts RFC 3339 or YYYY-MM-DD.
type lessonPayload struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

func (p lessonPayload) input() (Input, error) {
	in := Input{Title: p.Title, Notes: p.Notes}
	date := strings.TrimSpace(p.Date)
	if date == "" {
		return in, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, date); err == nil {
			in.Date = t
			return in, nil
		}
	}
	return in, errors.New("date must be RFC 3339 or YYYY-MM-DD")
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.GetUserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	l, err := h.service.Create(r.Context(), userID, in)
	if err != nil {
		h.writeServiceError(w, err, "Could not create lesson")
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

// handleList returns the lessons, optionally filtered with ?q=.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.GetUserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	lessons, err := h.service.List(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		h.writeServiceError(w, err, "Could not fetch lessons")
		return
	}
	writeJSON(w, http.StatusOK, lessons)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	userID, lessonID, ok := ids(w, r)
	if !ok {
		return
	}

	l, err := h.service.Get(r.Context(), userID, lessonID)
	if err != nil {
		h.writeServiceError(w, err, "Could not fetch lesson")
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, lessonID, ok := ids(w, r)
	if !ok {
		return
	}
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	l, err := h.service.Update(r.Context(), userID, lessonID, in)
	if err != nil {
		h.writeServiceError(w, err, "Could not update lesson")
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, lessonID, ok := ids(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, lessonID); err != nil {
		h.writeServiceError(w, err, "Could not delete lesson")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ids pulls the caller and the {lessonID} path parameter, writing the error response itself.
func ids(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, err := auth.GetUserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return uuid.Nil, uuid.Nil, false
	}
	lessonID, err := uuid.Parse(chi.URLParam(r, "lessonID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lesson ID")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, lessonID, true
}

func decodeInput(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var payload lessonPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return Input{}, false
	}
	in, err := payload.input()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return Input{}, false
	}
	return in, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrLessonNotFound):
		writeError(w, http.StatusNotFound, "Lesson not found")
	default:
		h.log.Error(fallback, "error", err)
		writeError(w, http.StatusInternalServerError, fallback)
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
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
