package model

import "time"

// Role restricts what operations user is allowed to perform
type Role string

const (
	// RoleAdmin has full access to every resource
	RoleAdmin Role = "admin"
	// RoleManager can additionally manage customer records
	RoleManager Role = "manager"
	// RoleUser is a regular field sales representative
	RoleUser Role = "user"
)

// User is application user entity
type User struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	FullName     string          `json:"full_name"`
	Role         Role            `json:"role"`
	Department   *string         `json:"department"`
	Territory    *string         `json:"territory"`
	Phone        *string         `json:"phone"`
	AvatarURL    *string         `json:"avatar_url"`
	Permissions  map[string]bool `json:"permissions,omitempty"`
	IsActive     bool            `json:"is_active"`
	LastLogin    *time.Time      `json:"last_login"`
	CreatedAt    time.Time       `json:"created_at"`
}
