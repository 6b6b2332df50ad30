package domain

import (
	"context"
	"time"
)

// Application links a job and an applicant. Name and email are stored as
// snapshots taken at submission time, independent of the live user record,
// so historical applications stay readable even if the account changes.
type Application struct {
	ID             int64     `json:"id"`
	JobID          int64     `json:"job"`
	ApplicantID    int64     `json:"applicant"`
	ApplicantName  string    `json:"applicant_name"`
	ApplicantEmail string    `json:"applicant_email"`
	Resume         string    `json:"resume"`
	AppliedAt      time.Time `json:"applied_at"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByApplicantID(ctx context.Context, applicantID int64) ([]Application, error)
}

type ApplicationUsecase interface {
	SubmitApplication(ctx context.Context, userID int64, app *Application) error
	GetMyApplications(ctx context.Context, userID int64) ([]Application, error)
}
