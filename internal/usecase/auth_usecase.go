package usecase

import (
	"context"
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"jobforge-backend/internal/domain"
	"jobforge-backend/pkg/apperror"
	"jobforge-backend/pkg/logger"
	"jobforge-backend/pkg/token"
)

type authUsecase struct {
	userRepo domain.UserRepository
	issuer   *token.Issuer
}

func NewAuthUsecase(userRepo domain.UserRepository, issuer *token.Issuer) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, issuer: issuer}
}

// validatePassword enforces the minimum password policy: at least 8
// characters with a digit, an uppercase and a lowercase letter.
func validatePassword(password string) error {
	if len(password) < 8 {
		return apperror.BadRequest("Password must be at least 8 characters long")
	}
	var hasDigit, hasUpper, hasLower bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if !hasDigit {
		return apperror.BadRequest("Password must contain at least one digit")
	}
	if !hasUpper {
		return apperror.BadRequest("Password must contain at least one uppercase letter")
	}
	if !hasLower {
		return apperror.BadRequest("Password must contain at least one lowercase letter")
	}
	return nil
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.BadRequest("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hash := string(hashed)

	user := &domain.User{
		Email:            input.Email,
		PasswordHash:     &hash,
		FullName:         input.FullName,
		IsActive:         true,
		SubscriptionTier: domain.TierFree,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.Log.Info("user registered", "user_id", user.ID)
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (token.Pair, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return token.Pair{}, apperror.Unauthorized("Incorrect email or password")
		}
		return token.Pair{}, err
	}
	if user.PasswordHash == nil {
		return token.Pair{}, apperror.Unauthorized("Incorrect email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) != nil {
		return token.Pair{}, apperror.Unauthorized("Incorrect email or password")
	}
	if !user.IsActive {
		return token.Pair{}, apperror.BadRequest("Inactive user")
	}

	if err := u.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		logger.Log.Warn("failed to record last login", "user_id", user.ID, "error", err)
	}

	return u.issuer.IssuePair(user.ID, user.Email)
}

func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (token.Pair, error) {
	claims, err := u.issuer.Verify(refreshToken, token.KindRefresh)
	if err != nil {
		return token.Pair{}, apperror.Unauthorized("Invalid refresh token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return token.Pair{}, apperror.Unauthorized("Invalid refresh token")
		}
		return token.Pair{}, err
	}
	if !user.IsActive {
		return token.Pair{}, apperror.Unauthorized("Invalid refresh token")
	}

	return u.issuer.IssuePair(user.ID, user.Email)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	if user.PasswordHash == nil {
		return apperror.BadRequest("Password change is not available for this account")
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(oldPassword)) != nil {
		return apperror.BadRequest("Incorrect password")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, userID, string(hashed))
}
