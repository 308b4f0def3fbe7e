package usecase

import (
	"context"
	"errors"
	"time"

	"jobforge-backend/internal/domain"
	"jobforge-backend/pkg/apperror"
)

type interviewUsecase struct {
	interviewRepo domain.InterviewRepository
	appRepo       domain.ApplicationRepository
}

func NewInterviewUsecase(interviewRepo domain.InterviewRepository, appRepo domain.ApplicationRepository) domain.InterviewUsecase {
	return &interviewUsecase{interviewRepo: interviewRepo, appRepo: appRepo}
}

func (u *interviewUsecase) getOwned(ctx context.Context, userID, id string) (*domain.Interview, error) {
	interview, err := u.interviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview not found")
		}
		return nil, err
	}
	if interview.UserID != userID {
		return nil, apperror.NotFound("Interview not found")
	}
	return interview, nil
}

func (u *interviewUsecase) List(ctx context.Context, userID string, limit, offset int) ([]domain.Interview, error) {
	return u.interviewRepo.GetByUserID(ctx, userID, limit, offset)
}

func (u *interviewUsecase) Upcoming(ctx context.Context, userID string) ([]domain.Interview, error) {
	return u.interviewRepo.Upcoming(ctx, userID)
}

func (u *interviewUsecase) Get(ctx context.Context, userID, id string) (*domain.Interview, error) {
	return u.getOwned(ctx, userID, id)
}

func (u *interviewUsecase) Create(ctx context.Context, interview *domain.Interview) error {
	if !domain.IsValidInterviewType(interview.InterviewType) {
		return apperror.BadRequest("Invalid interview type: " + interview.InterviewType)
	}
	if interview.Status == "" {
		interview.Status = domain.InterviewStatusScheduled
	}
	if !domain.IsValidInterviewStatus(interview.Status) {
		return apperror.BadRequest("Invalid interview status: " + interview.Status)
	}

	// Scheduling against an application you do not own is the one
	// ownership failure surfaced as 403 rather than 404.
	app, err := u.appRepo.GetByID(ctx, interview.ApplicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Forbidden("Cannot create interview for another user's application")
		}
		return err
	}
	if app.UserID != interview.UserID {
		return apperror.Forbidden("Cannot create interview for another user's application")
	}

	return u.interviewRepo.Create(ctx, interview)
}

func (u *interviewUsecase) Update(ctx context.Context, userID, id string, update *domain.InterviewUpdate) (*domain.Interview, error) {
	interview, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if update.InterviewType != nil {
		if !domain.IsValidInterviewType(*update.InterviewType) {
			return nil, apperror.BadRequest("Invalid interview type: " + *update.InterviewType)
		}
		interview.InterviewType = *update.InterviewType
	}
	if update.Status != nil {
		if !domain.IsValidInterviewStatus(*update.Status) {
			return nil, apperror.BadRequest("Invalid interview status: " + *update.Status)
		}
		interview.Status = *update.Status
		if *update.Status == domain.InterviewStatusCompleted && interview.CompletedAt == nil {
			now := time.Now().UTC()
			interview.CompletedAt = &now
		}
	}
	if update.ScheduledAt != nil {
		interview.ScheduledAt = *update.ScheduledAt
	}
	if update.DurationMinutes != nil {
		interview.DurationMinutes = update.DurationMinutes
	}
	if update.InterviewerName != nil {
		interview.InterviewerName = update.InterviewerName
	}
	if update.Location != nil {
		interview.Location = update.Location
	}
	if update.MeetingLink != nil {
		interview.MeetingLink = update.MeetingLink
	}
	if update.Notes != nil {
		interview.Notes = update.Notes
	}

	if err := u.interviewRepo.Update(ctx, interview); err != nil {
		return nil, err
	}
	return interview, nil
}

func (u *interviewUsecase) Delete(ctx context.Context, userID, id string) error {
	if _, err := u.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return u.interviewRepo.Delete(ctx, id)
}

func (u *interviewUsecase) UpdateStatus(ctx context.Context, userID, id, status string) (*domain.Interview, error) {
	// Ownership first: a bad status against someone else's row still
	// reads as 404, not 400.
	interview, err := u.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !domain.IsValidInterviewStatus(status) {
		return nil, apperror.BadRequest("Invalid interview status: " + status)
	}

	var completedAt *time.Time
	if status == domain.InterviewStatusCompleted {
		if interview.CompletedAt != nil {
			completedAt = interview.CompletedAt
		} else {
			now := time.Now().UTC()
			completedAt = &now
		}
	}
	if err := u.interviewRepo.UpdateStatus(ctx, id, status, completedAt); err != nil {
		return nil, err
	}
	interview.Status = status
	interview.CompletedAt = completedAt
	return interview, nil
}
