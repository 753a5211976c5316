package lesson

//go:generate mockgen -destination=./service_mock_test.go -package=lesson -source=service.go Service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lesson-sage/internal/domain" // The shared domain models

	"github.com/google/uuid"
)

// ErrInvalidInput wraps every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// Input carries the editable fields of a lesson. A zero Date means "now".
type Input struct {
	Title string
	Date  time.Time
	Notes string
}

// Service defines the business logic for a user's lesson list.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, in Input) (*domain.Lesson, error)
	List(ctx context.Context, userID uuid.UUID, query string) ([]*domain.Lesson, error)
	Get(ctx context.Context, userID, lessonID uuid.UUID) (*domain.Lesson, error)
	Update(ctx context.Context, userID, lessonID uuid.UUID, in Input) (*domain.Lesson, error)
	Delete(ctx context.Context, userID, lessonID uuid.UUID) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService is the constructor for the lesson service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, in Input) (*domain.Lesson, error) {
	l := &domain.Lesson{UserID: userID}
	if err := s.apply(l, in); err != nil {
		return nil, err
	}
	if err := s.repo.CreateLesson(ctx, l); err != nil {
		return nil, fmt.Errorf("could not save lesson: %w", err)
	}
	return l, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, query string) ([]*domain.Lesson, error) {
	lessons, err := s.repo.ListLessons(ctx, userID, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("could not list lessons: %w", err)
	}
	return lessons, nil
}

func (s *service) Get(ctx context.Context, userID, lessonID uuid.UUID) (*domain.Lesson, error) {
	return s.repo.GetLesson(ctx, userID, lessonID)
}

// Update loads the lesson first so a foreign lesson reports ErrLessonNotFound before validation.
func (s *service) Update(ctx context.Context, userID, lessonID uuid.UUID, in Input) (*domain.Lesson, error) {
	l, err := s.repo.GetLesson(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(l, in); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateLesson(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) Delete(ctx context.Context, userID, lessonID uuid.UUID) error {
	return s.repo.DeleteLesson(ctx, userID, lessonID)
}

// apply validates in and copies it onto l.
func (s *service) apply(l *domain.Lesson, in Input) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	date := in.Date
	if date.IsZero() {
		date = s.now()
	}

	l.Title = title
	l.Date = date.UTC()
	l.Notes = nil
	if notes := strings.TrimSpace(in.Notes); notes != "" {
		l.Notes = &notes
	}
	return nil
}
