package lesson

//go:generate mockgen -destination=./repository_mock_test.go -package=lesson -source=repository.go Repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"lesson-sage/internal/domain" // shared domain models

	"github.com/google/uuid"
)

// ErrLessonNotFound is returned when the lesson does not exist or belongs to another user.
var ErrLessonNotFound = errors.New("lesson not found")

// Repository defines the contract for all database operations on lessons.
// Every call is scoped to the owning user.
type Repository interface {
	// CreateLesson inserts a lesson and fills in LessonID, CreatedAt and UpdatedAt.
	CreateLesson(ctx context.Context, lesson *domain.Lesson) error
	// ListLessons returns the user's lessons, newest lesson date first.
	// A non-empty query filters by a case-insensitive title match.
	ListLessons(ctx context.Context, userID uuid.UUID, query string) ([]*domain.Lesson, error)
	GetLesson(ctx context.Context, userID, lessonID uuid.UUID) (*domain.Lesson, error)
	// UpdateLesson overwrites title, date and notes.
	UpdateLesson(ctx context.Context, lesson *domain.Lesson) error
	DeleteLesson(ctx context.Context, userID, lessonID uuid.UUID) error
}

type postgresRepository struct {
	db *sql.DB // The database connection pool.
}

// NewPostgresRepository is the constructor for the repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{
		db: db,
	}
}

const selectLesson = `
	SELECT lesson_id, user_id, title, lesson_date, notes, created_at, updated_at
	FROM lessons
`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLesson(row rowScanner) (*domain.Lesson, error) {
	var (
		l     domain.Lesson
		notes sql.NullString
	)
	if err := row.Scan(&l.LessonID, &l.UserID, &l.Title, &l.Date, &notes, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	if notes.Valid {
		l.Notes = &notes.String
	}
	return &l, nil
}

// CreateLesson inserts a new lessons record.
func (pr *postgresRepository) CreateLesson(ctx context.Context, lesson *domain.Lesson) error {
	now := time.Now().UTC()
	lesson.LessonID = uuid.New()
	lesson.CreatedAt = now
	lesson.UpdatedAt = now

	query := `
		INSERT INTO lessons (lesson_id, user_id, title, lesson_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := pr.db.ExecContext(ctx, query,
		lesson.LessonID,
		lesson.UserID,
		lesson.Title,
		lesson.Date,
		lesson.Notes,
		lesson.CreatedAt,
		lesson.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not insert lesson: %w", err)
	}
	return nil
}

// ListLessons fetches the user's lessons ordered by lesson date, newest first.
func (pr *postgresRepository) ListLessons(ctx context.Context, userID uuid.UUID, query string) ([]*domain.Lesson, error) {
	args := []any{userID}
	stmt := selectLesson + ` WHERE user_id = $1`
	if query = strings.TrimSpace(query); query != "" {
		stmt += ` AND title ILIKE $2`
		args = append(args, "%"+escapeLike(query)+"%")
	}
	stmt += ` ORDER BY lesson_date DESC, created_at DESC`

	rows, err := pr.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query lessons: %w", err)
	}
	defer rows.Close()

	lessons := []*domain.Lesson{}
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan lesson: %w", err)
		}
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate lessons: %w", err)
	}
	return lessons, nil
}

// GetLesson fetches a single lesson owned by userID.
func (pr *postgresRepository) GetLesson(ctx context.Context, userID, lessonID uuid.UUID) (*domain.Lesson, error) {
	l, err := scanLesson(pr.db.QueryRowContext(ctx, selectLesson+` WHERE lesson_id = $1 AND user_id = $2`, lessonID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("could not get lesson: %w", err)
	}
	return l, nil
}

// UpdateLesson rewrites the editable columns and bumps updated_at.
func (pr *postgresRepository) UpdateLesson(ctx context.Context, lesson *domain.Lesson) error {
	lesson.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE lessons
		SET title = $1, lesson_date = $2, notes = $3, updated_at = $4
		WHERE lesson_id = $5 AND user_id = $6
	`
	res, err := pr.db.ExecContext(ctx, query,
		lesson.Title, lesson.Date, lesson.Notes, lesson.UpdatedAt, lesson.LessonID, lesson.UserID)
	if err != nil {
		return fmt.Errorf("could not update lesson: %w", err)
	}
	return expectOneRow(res)
}

// DeleteLesson removes a lesson owned by userID.
func (pr *postgresRepository) DeleteLesson(ctx context.Context, userID, lessonID uuid.UUID) error {
	res, err := pr.db.ExecContext(ctx, `DELETE FROM lessons WHERE lesson_id = $1 AND user_id = $2`, lessonID, userID)
	if err != nil {
		return fmt.Errorf("could not delete lesson: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrLessonNotFound
	}
	return nil
}

// escapeLike quotes the ILIKE wildcards so the search matches them literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
