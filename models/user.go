package models

import "time"

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	DisplayName  string    `json:"displayName" db:"display_name"`
	Email        string    `json:"email" db:"email"`
	GoogleID     *string   `json:"-" db:"google_id"`
	Preferences  JSONMap   `json:"preferences" db:"preferences"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Session struct {
	ID         string    `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	ExpiresAt  time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	LastUsedAt time.Time `json:"lastUsedAt" db:"last_used_at"`
}

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50,username"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DisplayName string `json:"displayName" validate:"max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type UpdatePreferencesRequest struct {
	Preferences JSONMap `json:"preferences" validate:"required"`
}
