package domain

import (
	"context"
	"time"

	"jobforge-backend/pkg/token"
)

// Subscription tiers
const (
	TierFree       = "free"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
)

type User struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	PasswordHash          *string    `json:"-"` // nil for OAuth-only accounts
	FullName              string     `json:"full_name"`
	ProfilePictureURL     *string    `json:"profile_picture_url,omitempty"`
	Phone                 *string    `json:"phone,omitempty"`
	Location              *string    `json:"location,omitempty"`
	LinkedinURL           *string    `json:"linkedin_url,omitempty"`
	GithubURL             *string    `json:"github_url,omitempty"`
	PortfolioURL          *string    `json:"portfolio_url,omitempty"`
	EmailVerified         bool       `json:"email_verified"`
	IsActive              bool       `json:"is_active"`
	SubscriptionTier      string     `json:"subscription_tier"`
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	LastLoginAt           *time.Time `json:"last_login_at,omitempty"`
}

// RegisterInput carries validated registration data into the usecase.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	TouchLastLogin(ctx context.Context, id string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (token.Pair, error)
	Refresh(ctx context.Context, refreshToken string) (token.Pair, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}
