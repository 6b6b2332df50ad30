package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// CreateJob binds the posting to the authenticated caller and stamps
// posted_at server-side. Jobs are immutable after this point.
func (u *jobUsecase) CreateJob(ctx context.Context, userID int64, job *domain.Job) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}

	job.PostedBy = userID
	job.PostedAt = time.Now()

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	jobs, err := u.jobRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

// SearchJobs matches the query against title or company, case-insensitive.
// An empty query matches every job.
func (u *jobUsecase) SearchJobs(ctx context.Context, query string) ([]domain.Job, error) {
	jobs, err := u.jobRepo.Search(ctx, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
