package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobboard-backend/internal/domain"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, company, location, description, posted_at, posted_by)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.Title, job.Company, job.Location, job.Description, job.PostedAt, job.PostedBy,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, title, company, location, description, posted_at, posted_by FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Description, &job.PostedAt, &job.PostedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) FetchAll(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT id, title, company, location, description, posted_at, posted_by FROM jobs ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows)
}

func (r *jobRepo) Search(ctx context.Context, query string) ([]domain.Job, error) {
	// ILIKE with an empty query degenerates to '%%' and matches every row,
	// which is the intended behavior for an empty search. Metacharacters in
	// the query are escaped so "50%" matches a literal "50%", not everything.
	q := `SELECT id, title, company, location, description, posted_at, posted_by
          FROM jobs
          WHERE title ILIKE '%' || $1 || '%' OR company ILIKE '%' || $1 || '%'
          ORDER BY id`

	rows, err := r.db.Query(ctx, q, escapeLike(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows)
}

// escapeLike neutralizes LIKE/ILIKE metacharacters so they match literally
// instead of acting as wildcards. PostgreSQL's default escape character is
// the backslash, so no ESCAPE clause is needed.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.Location, &job.Description, &job.PostedAt, &job.PostedBy); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
