package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	School       string    `json:"school" db:"school"`
	Role         string    `json:"role" db:"role"`
	HasAvatar    bool      `json:"has_avatar" db:"-"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Avatar struct {
	Data        []byte `db:"avatar"`
	ContentType string `db:"avatar_content_type"`
}

type Lesson struct {
	LessonID  uuid.UUID `json:"lesson_id" db:"lesson_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Date      time.Time `json:"date" db:"lesson_date"`
	Notes     *string   `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
