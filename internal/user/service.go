package user

//go:generate mockgen -destination=./service_mock_test.go -package=user -source=service.go Service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lesson-sage/internal/domain" // Shared domain models

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// DefaultRole is assigned to every new account.
const DefaultRole = "teacher"

// MinPasswordLength matches the mobile app's registration form.
const MinPasswordLength = 6

// RegisterInput is what a new account is created from.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	School    string
}

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	FirstName string
	LastName  string
	School    string
	Role      string
}

// Service defines the interface for the user service's business logic.
type Service interface {
	// Register validates the input, hashes the password and stores the user.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login checks the password for the given email.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// GetProfile retrieves a user by their ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	// UpdateProfile replaces the editable fields and returns the stored user.
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (*domain.User, error)
	// SetAvatar stores an image; empty data removes the avatar.
	SetAvatar(ctx context.Context, userID uuid.UUID, data []byte) error
	// GetAvatar returns the stored image.
	GetAvatar(ctx context.Context, userID uuid.UUID) (*domain.Avatar, error)
	// DeleteAccount removes the user and their lessons.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// service is the concrete implementation of the Service interface.
type service struct {
	repo Repository
	cost int // bcrypt cost
}

// NewService is the constructor for the service injecting the repository.
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		cost: bcrypt.DefaultCost,
	}
}

// NormalizeEmail trims and lower-cases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	return email != "" && strings.Contains(email, "@") && strings.Contains(email, ".")
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Register contains the business logic for creating a new user.
func (s *service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	newUser := &domain.User{
		Email:     NormalizeEmail(in.Email),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		School:    strings.TrimSpace(in.School),
		Role:      DefaultRole, // Every account starts as a teacher.
	}

	switch {
	case newUser.FirstName == "":
		return nil, invalid("first name is required")
	case newUser.LastName == "":
		return nil, invalid("last name is required")
	case newUser.School == "":
		return nil, invalid("school is required")
	case !isValidEmail(newUser.Email):
		return nil, invalid("email is not valid")
	case len(in.Password) < MinPasswordLength:
		return nil, invalid("password must be at least %d characters", MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}
	newUser.PasswordHash = string(hash)

	if err := s.repo.CreateUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("service could not register user: %w", err)
	}
	return newUser, nil
}

// Login looks the user up by normalized email and compares the bcrypt hash.
// Unknown email and wrong password produce the same error.
func (s *service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service could not load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetProfile is a simple pass through to the repository.
func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

// UpdateProfile validates the same required fields as registration.
func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (*domain.User, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	u.FirstName = strings.TrimSpace(in.FirstName)
	u.LastName = strings.TrimSpace(in.LastName)
	u.School = strings.TrimSpace(in.School)
	if role := strings.TrimSpace(in.Role); role != "" {
		u.Role = role
	}
	if u.FirstName == "" || u.LastName == "" || u.School == "" {
		return nil, invalid("first name, last name and school are required")
	}

	if err := s.repo.UpdateProfile(ctx, u); err != nil {
		return nil, fmt.Errorf("service could not update profile: %w", err)
	}
	return u, nil
}

// SetAvatar sniffs the content type and only accepts images.
func (s *service) SetAvatar(ctx context.Context, userID uuid.UUID, data []byte) error {
	avatar := domain.Avatar{}
	if len(data) > 0 {
		ct := http.DetectContentType(data)
		if !strings.HasPrefix(ct, "image/") {
			return invalid("avatar must be an image, got %s", ct)
		}
		avatar = domain.Avatar{Data: data, ContentType: ct}
	}
	if err := s.repo.SetAvatar(ctx, userID, avatar); err != nil {
		return fmt.Errorf("service could not set avatar: %w", err)
	}
	return nil
}

func (s *service) GetAvatar(ctx context.Context, userID uuid.UUID) (*domain.Avatar, error) {
	return s.repo.GetAvatar(ctx, userID)
}

func (s *service) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("service could not delete account: %w", err)
	}
	return nil
}
