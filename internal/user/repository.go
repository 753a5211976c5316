package user

//go:generate mockgen -destination=./repository_mock_test.go -package=user -source=repository.go Repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lesson-sage/internal/domain" // Shared domain models

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrAvatarNotFound = errors.New("avatar not found")
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// Repository is the interface for all user related database operations.
type Repository interface {
	// CreateUser inserts a new user record and fills in UserID and CreatedAt.
	CreateUser(ctx context.Context, user *domain.User) error
	// GetUserByEmail finds a user by their normalized email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetUserByID finds a user by their primary key (UUID).
	GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	// UpdateProfile overwrites the editable profile fields.
	UpdateProfile(ctx context.Context, user *domain.User) error
	// SetAvatar stores (or clears, with nil data) the profile image.
	SetAvatar(ctx context.Context, userID uuid.UUID, avatar domain.Avatar) error
	// GetAvatar returns the stored profile image.
	GetAvatar(ctx context.Context, userID uuid.UUID) (*domain.Avatar, error)
	// DeleteUser removes the user and, by cascade, their lessons.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// postgresRepository is the concrete implementation of the Repository that uses a Postgres database
type postgresRepository struct {
	db *sql.DB // The database connection pool.
}

// NewPostgresRepository is the constructor for the repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{
		db: db,
	}
}

const selectUser = `
	SELECT user_id, email, password_hash, first_name, last_name, school, role,
	       avatar IS NOT NULL, created_at
	FROM users
`

func scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.School,
		&user.Role,
		&user.HasAvatar,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	return user, nil
}

// CreateUser inserts a new row into the users table.
func (pr *postgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	user.UserID = uuid.New()
	user.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO users (user_id, email, password_hash, first_name, last_name, school, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := pr.db.ExecContext(ctx, query,
		user.UserID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.School,
		user.Role,
		user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("could not insert user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a single user by email.
func (pr *postgresRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(pr.db.QueryRowContext(ctx, selectUser+` WHERE email = $1`, email))
}

// GetUserByID retrieves a single user based on their internal UUID.
func (pr *postgresRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return scanUser(pr.db.QueryRowContext(ctx, selectUser+` WHERE user_id = $1`, userID))
}

// UpdateProfile updates the name, school and role columns.
func (pr *postgresRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, school = $3, role = $4
		WHERE user_id = $5
	`
	res, err := pr.db.ExecContext(ctx, query, user.FirstName, user.LastName, user.School, user.Role, user.UserID)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	return expectOneRow(res)
}

// SetAvatar writes the avatar bytes; nil data clears it.
func (pr *postgresRepository) SetAvatar(ctx context.Context, userID uuid.UUID, avatar domain.Avatar) error {
	var data, contentType interface{}
	if len(avatar.Data) > 0 {
		data, contentType = avatar.Data, avatar.ContentType
	}
	res, err := pr.db.ExecContext(ctx,
		`UPDATE users SET avatar = $1, avatar_content_type = $2 WHERE user_id = $3`,
		data, contentType, userID,
	)
	if err != nil {
		return fmt.Errorf("could not set avatar: %w", err)
	}
	return expectOneRow(res)
}

// GetAvatar reads the avatar bytes.
func (pr *postgresRepository) GetAvatar(ctx context.Context, userID uuid.UUID) (*domain.Avatar, error) {
	var (
		data        []byte
		contentType sql.NullString
	)
	err := pr.db.QueryRowContext(ctx,
		`SELECT avatar, avatar_content_type FROM users WHERE user_id = $1`, userID,
	).Scan(&data, &contentType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not get avatar: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrAvatarNotFound
	}
	return &domain.Avatar{Data: data, ContentType: contentType.String}, nil
}

// DeleteUser removes the users row.
func (pr *postgresRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	res, err := pr.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}
	return expectOneRow(res)
}

// expectOneRow turns "no rows affected" into ErrUserNotFound.
func expectOneRow(res sql.Result) error {
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
