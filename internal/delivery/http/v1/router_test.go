package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobboard-backend/config"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("json")
	os.Exit(m.Run())
}

// stubStore is an in-memory implementation of the three usecases, enough to
// exercise the HTTP contract without a database.
type stubStore struct {
	users  map[string]*domain.User // by username
	tokens map[string]int64        // token key -> user ID
	jobs   []domain.Job
	apps   []domain.Application
	nextID int64
}

func newStubStore() *stubStore {
	return &stubStore{
		users:  make(map[string]*domain.User),
		tokens: make(map[string]int64),
	}
}

func (s *stubStore) Register(_ context.Context, username, password, email string) (string, error) {
	if username == "" || password == "" || email == "" {
		return "", apperror.BadRequest("Invalid data")
	}
	if _, ok := s.users[username]; ok {
		return "", apperror.BadRequest("Username already taken")
	}
	s.nextID++
	s.users[username] = &domain.User{ID: s.nextID, Username: username, Email: email, PasswordHash: password}
	key := "tok-" + username
	s.tokens[key] = s.nextID
	return key, nil
}

func (s *stubStore) Login(_ context.Context, username, password string) (string, error) {
	user, ok := s.users[username]
	if !ok || user.PasswordHash != password {
		return "", apperror.BadRequest("Invalid credentials")
	}
	return "tok-" + username, nil
}

func (s *stubStore) Authorize(_ context.Context, key string) (*domain.User, error) {
	id, ok := s.tokens[key]
	if !ok {
		return nil, apperror.Unauthorized("Invalid token")
	}
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperror.Unauthorized("Invalid token")
}

func (s *stubStore) CreateJob(_ context.Context, userID int64, job *domain.Job) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	s.nextID++
	job.ID = s.nextID
	job.PostedBy = userID
	job.PostedAt = time.Now()
	s.jobs = append(s.jobs, *job)
	return nil
}

func (s *stubStore) GetJobDetails(_ context.Context, id int64) (*domain.Job, error) {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return &s.jobs[i], nil
		}
	}
	return nil, apperror.NotFound("Job not found")
}

func (s *stubStore) ListJobs(_ context.Context) ([]domain.Job, error) {
	return s.jobs, nil
}

func (s *stubStore) SearchJobs(_ context.Context, query string) ([]domain.Job, error) {
	q := strings.ToLower(query)
	var out []domain.Job
	for _, j := range s.jobs {
		if strings.Contains(strings.ToLower(j.Title), q) || strings.Contains(strings.ToLower(j.Company), q) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *stubStore) SubmitApplication(ctx context.Context, userID int64, app *domain.Application) error {
	if _, err := s.GetJobDetails(ctx, app.JobID); err != nil {
		return err
	}
	s.nextID++
	app.ID = s.nextID
	app.ApplicantID = userID
	app.AppliedAt = time.Now()
	s.apps = append(s.apps, *app)
	return nil
}

func (s *stubStore) GetMyApplications(_ context.Context, userID int64) ([]domain.Application, error) {
	var out []domain.Application
	for _, a := range s.apps {
		if a.ApplicantID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func newTestRouter() (*gin.Engine, *stubStore) {
	store := newStubStore()
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        store,
		JobUC:         store,
		ApplicationUC: store,
		Config:        &config.Config{FrontendURL: "http://localhost:3000"},
	})
	return router, store
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLoginContract(t *testing.T) {
	router, _ := newTestRouter()

	t.Run("register returns a token", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/register/", "", gin.H{
			"username": "alice", "password": "s3cret", "email": "alice@example.com",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body["token"])
	})

	t.Run("register with missing fields returns 400 with error body", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/register/", "", gin.H{"username": "bob"})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	})

	t.Run("register with malformed email returns 400", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/register/", "", gin.H{
			"username": "carol", "password": "s3cret", "email": "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate username returns 400", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/register/", "", gin.H{
			"username": "alice", "password": "other", "email": "other@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad credentials return 400, not 401", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/login/", "", gin.H{
			"username": "alice", "password": "wrong",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("repeat logins return the same token", func(t *testing.T) {
		login := func() string {
			w := doJSON(router, http.MethodPost, "/api/login/", "", gin.H{
				"username": "alice", "password": "s3cret",
			})
			require.Equal(t, http.StatusOK, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			return body["token"]
		}
		assert.Equal(t, login(), login())
	})
}

func TestJobEndpoints(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/register/", "", gin.H{
		"username": "alice", "password": "s3cret", "email": "alice@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var reg map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	token := reg["token"]

	t.Run("unauthenticated POST is rejected", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/jobs/", "", gin.H{
			"title": "Engineer", "company": "Acme", "location": "Remote",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("authenticated POST creates the job", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/jobs/", token, gin.H{
			"title": "Engineer", "company": "Acme", "location": "Remote", "description": "Build things",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var job domain.Job
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
		assert.Equal(t, "Engineer", job.Title)
		assert.NotZero(t, job.ID)
		assert.False(t, job.PostedAt.IsZero())
	})

	t.Run("unauthenticated GET succeeds", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/jobs/", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var jobs []domain.Job
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
		assert.Len(t, jobs, 1)
	})

	t.Run("search matches title and company case-insensitively", func(t *testing.T) {
		for _, q := range []string{"Acme", "acme", "Eng", "eng"} {
			w := doJSON(router, http.MethodGet, "/api/jobs/search/?q="+q, "", nil)
			require.Equal(t, http.StatusOK, w.Code)

			var jobs []domain.Job
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs), "query %q", q)
			assert.Len(t, jobs, 1, "query %q", q)
		}
	})

	t.Run("search with no match returns an empty list", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/jobs/search/?q=Zzz", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("empty query returns all jobs", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/jobs/search/?q=", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var jobs []domain.Job
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
		assert.Len(t, jobs, 1)
	})

	t.Run("job details return 404 for an unknown ID", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/jobs/9999/", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestApplicationEndpoints(t *testing.T) {
	router, store := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/register/", "", gin.H{
		"username": "alice", "password": "s3cret", "email": "alice@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var reg map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	token := reg["token"]

	w = doJSON(router, http.MethodPost, "/api/jobs/", token, gin.H{
		"title": "Engineer", "company": "Acme", "location": "Remote",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var job domain.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))

	t.Run("unauthenticated submission is rejected", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/applications/", "", gin.H{
			"job": job.ID, "applicant_name": "Alice", "applicant_email": "alice@example.com",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("submission against a nonexistent job returns 404 and stores nothing", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/applications/", token, gin.H{
			"job": 9999, "applicant_name": "Alice", "applicant_email": "alice@example.com", "resume": "https://example.com/cv",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, store.apps)
	})

	t.Run("valid submission creates the application", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/applications/", token, gin.H{
			"job": job.ID, "applicant_name": "Alice", "applicant_email": "alice@example.com", "resume": "https://example.com/cv",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var app domain.Application
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &app))
		assert.Equal(t, job.ID, app.JobID)
		assert.Equal(t, "Alice", app.ApplicantName)
	})

	t.Run("listing returns the caller's applications", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/applications/", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var apps []domain.Application
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apps))
		assert.Len(t, apps, 1)
	})

	t.Run("invalid applicant email returns 400", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/applications/", token, gin.H{
			"job": job.ID, "applicant_name": "Alice", "applicant_email": "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBearerAliasAccepted(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/register/", "", gin.H{
		"username": "alice", "password": "s3cret", "email": "alice@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var reg map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))

	req := httptest.NewRequest(http.MethodPost, "/api/jobs/", bytes.NewReader([]byte(`{"title":"Engineer","company":"Acme","location":"Remote"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", reg["token"]))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
