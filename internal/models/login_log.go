package models

import "time"

type LoginLog struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	UserEmail string    `json:"user_email,omitempty"` // Joined from users table
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	LoginAt   time.Time `json:"login_at"`
}
