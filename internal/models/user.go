package models

import "time"

// User roles
const (
	RoleTenant   = "tenant"
	RoleLandlord = "landlord"
	RoleAdmin    = "admin"
)

type User struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	IDNumber     string    `json:"id_number"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"` // tenant, landlord or admin
	IsActive     bool      `json:"is_active"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName returns the display name used in decorated views
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// ValidRole reports whether role is one of the known user roles
func ValidRole(role string) bool {
	return role == RoleTenant || role == RoleLandlord || role == RoleAdmin
}

// SignupRequest represents the request body for signup
type SignupRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	IDNumber    string `json:"id_number"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
