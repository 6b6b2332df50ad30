package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// SubmitApplication records an application for the authenticated caller.
// The referenced job must exist. The same user may apply to the same job
// more than once; there is no duplicate check (see DESIGN.md).
func (u *applicationUsecase) SubmitApplication(ctx context.Context, userID int64, app *domain.Application) error {
	if _, err := u.jobRepo.GetByID(ctx, app.JobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	app.ApplicantID = userID
	app.AppliedAt = time.Now()

	if err := u.applicationRepo.Create(ctx, app); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *applicationUsecase) GetMyApplications(ctx context.Context, userID int64) ([]domain.Application, error) {
	apps, err := u.applicationRepo.GetByApplicantID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}
