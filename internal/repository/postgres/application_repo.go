package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobboard-backend/internal/domain"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, applicant_id, applicant_name, applicant_email, resume, applied_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		app.JobID, app.ApplicantID, app.ApplicantName, app.ApplicantEmail, app.Resume, app.AppliedAt,
	).Scan(&app.ID)
}

func (r *applicationRepo) GetByApplicantID(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	query := `SELECT id, job_id, applicant_id, applicant_name, applicant_email, resume, applied_at
              FROM applications WHERE applicant_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(&app.ID, &app.JobID, &app.ApplicantID, &app.ApplicantName, &app.ApplicantEmail, &app.Resume, &app.AppliedAt); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}
