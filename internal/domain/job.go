package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate resource")
)

// Job is a posting. Jobs are immutable once created; there is no update
// or delete operation.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	PostedAt    time.Time `json:"posted_at"`
	PostedBy    int64     `json:"posted_by"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	FetchAll(ctx context.Context) ([]Job, error)
	// Search matches title or company by case-insensitive substring.
	Search(ctx context.Context, query string) ([]Job, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID int64, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context) ([]Job, error)
	SearchJobs(ctx context.Context, query string) ([]Job, error)
}
