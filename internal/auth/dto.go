// AngelaMos | 2026
// dto.go

package auth

import (
	"time"
)

type RegisterRequest struct {
	Email    string  `json:"email"    validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,max=128"`
	Name     *string `json:"name"     validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

type AuthResponse struct {
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	Name        *string `json:"name"`
	IsPremium   bool    `json:"is_premium"`
	AccessToken string  `json:"access_token"`
}

type UserInfoResponse struct {
	UserID           string    `json:"user_id"`
	Email            string    `json:"email"`
	Name             *string   `json:"name"`
	IsPremium        bool      `json:"is_premium"`
	AnalysesThisWeek int       `json:"analyses_this_week"`
	AnalysesLimit    int       `json:"analyses_limit"`
	CreatedAt        time.Time `json:"created_at"`
}
