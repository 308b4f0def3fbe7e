package usecase

import (
	"context"
	"errors"
	"time"

	"jobforge-backend/internal/domain"
	"jobforge-backend/pkg/apperror"
)

type applicationUsecase struct {
	appRepo domain.ApplicationRepository
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository) domain.ApplicationUsecase {
	return &applicationUsecase{appRepo: appRepo}
}

func (u *applicationUsecase) getOwned(ctx context.Context, userID, id string) (*domain.Application, error) {
	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, err
	}
	if app.UserID != userID {
		return nil, apperror.NotFound("Application not found")
	}
	return app, nil
}

func (u *applicationUsecase) List(ctx context.Context, userID string, limit, offset int) ([]domain.Application, error) {
	return u.appRepo.GetByUserID(ctx, userID, limit, offset)
}

func (u *applicationUsecase) Get(ctx context.Context, userID, id string) (*domain.Application, error) {
	return u.getOwned(ctx, userID, id)
}

func (u *applicationUsecase) Create(ctx context.Context, app *domain.Application) error {
	if app.Status == "" {
		app.Status = domain.StatusDraft
	}
	if !domain.IsValidApplicationStatus(app.Status) {
		return apperror.BadRequest("Invalid application status: " + app.Status)
	}
	if app.Status == domain.StatusApplied && app.AppliedDate == nil {
		now := time.Now().UTC()
		app.AppliedDate = &now
	}
	return u.appRepo.Create(ctx, app)
}

func (u *applicationUsecase) Update(ctx context.Context, userID, id string, update *domain.ApplicationUpdate) (*domain.Application, error) {
	app, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if update.Status != nil {
		if !domain.IsValidApplicationStatus(*update.Status) {
			return nil, apperror.BadRequest("Invalid application status: " + *update.Status)
		}
		app.Status = *update.Status
	}
	if update.JobID != nil {
		app.JobID = update.JobID
	}
	if update.CompanyName != nil {
		app.CompanyName = *update.CompanyName
	}
	if update.JobTitle != nil {
		app.JobTitle = *update.JobTitle
	}
	if update.JobURL != nil {
		app.JobURL = update.JobURL
	}
	if update.AppliedDate != nil {
		app.AppliedDate = update.AppliedDate
	}
	if update.Source != nil {
		app.Source = update.Source
	}
	if update.Notes != nil {
		app.Notes = update.Notes
	}
	if update.MatchScore != nil {
		app.MatchScore = update.MatchScore
	}

	if err := u.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) Delete(ctx context.Context, userID, id string) error {
	if _, err := u.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return u.appRepo.Delete(ctx, id)
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, userID, id, status string) (*domain.Application, error) {
	// Ownership first: a bad status against someone else's row still
	// reads as 404, not 400.
	app, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !domain.IsValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Invalid application status: " + status)
	}
	if err := u.appRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	app.Status = status
	return app, nil
}

func (u *applicationUsecase) Stats(ctx context.Context, userID string) (*domain.ApplicationStats, error) {
	counts, err := u.appRepo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &domain.ApplicationStats{
		ByStatus: make(map[string]int64, len(domain.ApplicationStatuses)),
	}
	for _, status := range domain.ApplicationStatuses {
		count := counts[status]
		stats.ByStatus[status] = count
		stats.Total += count
	}
	return stats, nil
}
