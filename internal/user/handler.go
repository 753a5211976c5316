package user

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"lesson-sage/internal/auth"
	"lesson-sage/internal/logger"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TokenIssuer signs session tokens after a successful login or registration.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

// Handler is the HTTP API layer for the UserService.
type Handler struct {
	service        Service
	tokens         TokenIssuer
	log            *logger.Logger
	maxAvatarBytes int64
}

// NewHandler is the constructor for the Handler.
func NewHandler(s Service, tokens TokenIssuer, log *logger.Logger, maxAvatarBytes int64) *Handler {
	return &Handler{
		service:        s,
		tokens:         tokens,
		log:            log,
		maxAvatarBytes: maxAvatarBytes,
	}
}

// RegisterRoutes attaches all the user related endpoints to the router.
// requireAuth guards everything except registration and login.
func (h *Handler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Post("/users/register", h.handleRegister)
	r.Post("/users/login", h.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/users/profile", h.handleGetProfile)
		r.Put("/users/profile", h.handleUpdateProfile)
		r.Delete("/users/profile", h.handleDeleteAccount)
		r.Put("/users/profile/avatar", h.handleSetAvatar)
		r.Get("/users/profile/avatar", h.handleGetAvatar)
	})
}

// --- DTOs ---

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	School    string `json:"school"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	School    string `json:"school"`
	Role      string `json:"role"`
}

// sessionResponse is returned by register and login.
type sessionResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// --- Handlers ---

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	u, err := h.service.Register(r.Context(), RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		School:    req.School,
	})
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, ErrEmailTaken):
		writeError(w, http.StatusConflict, "Email already registered")
		return
	case err != nil:
		h.log.Error("register failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not register user")
		return
	}

	token, err := h.tokens.Issue(u.UserID)
	if err != nil {
		h.log.Error("issue token failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not create session")
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{Token: token, User: u})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	u, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.log.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not log in")
		return
	}

	token, err := h.tokens.Issue(u.UserID)
	if err != nil {
		h.log.Error("issue token failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not create session")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Token: token, User: u})
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.GetUserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	u, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err, "Could not retrieve profile")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.GetUserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	u, err := h.service.UpdateProfile(r.Context(), userID, ProfileInput(req))
	if err != nil {
		h.writeServiceError(w, err, "Could not update profile")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.GetUserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	if err := h.service.DeleteAccount(r.Context(), userID); err != nil {
		h.writeServiceError(w, err, "Could not delete account")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSetAvatar takes the raw image as the request body. An empty body removes the avatar.
func (h *Handler) handleSetAvatar(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.GetUserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxAvatarBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Avatar is too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Could not read avatar")
		return
	}

	if err := h.service.SetAvatar(r.Context(), userID, data); err != nil {
		h.writeServiceError(w, err, "Could not store avatar")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetAvatar(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.GetUserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	avatar, err := h.service.GetAvatar(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err, "Could not retrieve avatar")
		return
	}
	w.Header().Set("Content-Type", avatar.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(avatar.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(avatar.Data)
}

// writeServiceError maps the service sentinels to status codes.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User profile not found")
	case errors.Is(err, ErrAvatarNotFound):
		writeError(w, http.StatusNotFound, "Avatar not set")
	default:
		h.log.Error(fallback, "error", err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

// writeJSON is a helper function to send json formatted responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper function to send a standardized json error message
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
