package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"peticiona-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type fakeTemplateRepo struct {
	mu        sync.Mutex
	templates map[uuid.UUID]*models.TemplateSettings
	lookups   int
	err       error
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: map[uuid.UUID]*models.TemplateSettings{}}
}

func (r *fakeTemplateRepo) Create(ctx context.Context, tmpl *models.TemplateSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tmpl.ID = uuid.New()
	tmpl.CreatedAt = time.Now()
	tmpl.UpdatedAt = tmpl.CreatedAt
	stored := *tmpl
	r.templates[tmpl.ID] = &stored
	return nil
}

func (r *fakeTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.TemplateSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups++
	if r.err != nil {
		return nil, r.err
	}
	tmpl, ok := r.templates[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := *tmpl
	return &out, nil
}

func (r *fakeTemplateRepo) Update(ctx context.Context, tmpl *models.TemplateSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[tmpl.ID]; !ok {
		return pgx.ErrNoRows
	}
	tmpl.UpdatedAt = time.Now()
	stored := *tmpl
	r.templates[tmpl.ID] = &stored
	return nil
}

func (r *fakeTemplateRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.TemplateSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.TemplateSettings
	for _, tmpl := range r.templates {
		if tmpl.UserID == userID {
			t := *tmpl
			out = append(out, &t)
		}
	}
	return out, nil
}

type fakeDocumentRepo struct {
	mu        sync.Mutex
	docs      map[uuid.UUID]*models.Document
	createErr error
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[uuid.UUID]*models.Document{}}
}

func (r *fakeDocumentRepo) Create(ctx context.Context, doc *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	doc.ID = uuid.New()
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt
	stored := *doc
	r.docs[doc.ID] = &stored
	return nil
}

func (r *fakeDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := *doc
	return &out, nil
}

func (r *fakeDocumentRepo) Update(ctx context.Context, doc *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[doc.ID]; !ok {
		return pgx.ErrNoRows
	}
	doc.UpdatedAt = time.Now()
	stored := *doc
	r.docs[doc.ID] = &stored
	return nil
}

func (r *fakeDocumentRepo) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Document
	for _, doc := range r.docs {
		if doc.UserID == userID {
			d := *doc
			out = append(out, &d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.docs, id)
	return nil
}

type fakeFileRepo struct {
	mu        sync.Mutex
	files     map[uuid.UUID]*models.File
	createErr error
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: map[uuid.UUID]*models.File{}}
}

func (r *fakeFileRepo) Create(ctx context.Context, file *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if file.ID == uuid.Nil {
		file.ID = uuid.New()
	}
	file.CreatedAt = time.Now()
	stored := *file
	r.files[file.ID] = &stored
	return nil
}

func (r *fakeFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	file, ok := r.files[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := *file
	return &out, nil
}

func (r *fakeFileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.files[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.files, id)
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*models.GenerationJob
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[uuid.UUID]*models.GenerationJob{}}
}

func (r *fakeJobRepo) Create(ctx context.Context, job *models.GenerationJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	stored := *job
	r.jobs[job.ID] = &stored
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.GenerationJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	out := *job
	out.Steps = append(models.GenerationSteps(nil), job.Steps...)
	return &out, nil
}

func (r *fakeJobRepo) update(id uuid.UUID, fn func(*models.GenerationJob)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return errors.New("job not found")
	}
	fn(job)
	job.UpdatedAt = time.Now()
	return nil
}

func (r *fakeJobRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.GenerationJobStatus) error {
	return r.update(id, func(j *models.GenerationJob) { j.Status = status })
}

func (r *fakeJobRepo) UpdateProgress(ctx context.Context, id uuid.UUID, currentStep string, steps models.GenerationSteps) error {
	return r.update(id, func(j *models.GenerationJob) {
		j.CurrentStep = &currentStep
		j.Steps = append(models.GenerationSteps(nil), steps...)
	})
}

func (r *fakeJobRepo) Complete(ctx context.Context, id, documentID uuid.UUID, report models.AnalysisReport) error {
	return r.update(id, func(j *models.GenerationJob) {
		now := time.Now()
		j.Status = models.JobStatusCompleted
		j.DocumentID = &documentID
		j.Report = &report
		j.CompletedAt = &now
	})
}

func (r *fakeJobRepo) Fail(ctx context.Context, id uuid.UUID, errorMessage string) error {
	return r.update(id, func(j *models.GenerationJob) {
		j.Status = models.JobStatusFailed
		j.ErrorMessage = &errorMessage
	})
}

type fakeGenerator struct {
	text   string
	err    error
	prompt string
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.text, g.err
}

type fakeUserRepo map[uuid.UUID]models.User

func (r fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := r[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}
