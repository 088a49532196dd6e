package handlers

import (
	"context"
	"errors"
	"sync"
	"time"

	"peticiona-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type memTemplates struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.TemplateSettings
}

func (m *memTemplates) Create(ctx context.Context, t *models.TemplateSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	m.rows[t.ID] = *t
	return nil
}

func (m *memTemplates) GetByID(ctx context.Context, id uuid.UUID) (*models.TemplateSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &t, nil
}

func (m *memTemplates) Update(ctx context.Context, t *models.TemplateSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[t.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.rows[t.ID] = *t
	return nil
}

func (m *memTemplates) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.TemplateSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.TemplateSettings
	for _, t := range m.rows {
		if t.UserID == userID {
			t := t
			out = append(out, &t)
		}
	}
	return out, nil
}

type memDocuments struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Document
}

func (m *memDocuments) Create(ctx context.Context, d *models.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	m.rows[d.ID] = *d
	return nil
}

func (m *memDocuments) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &d, nil
}

func (m *memDocuments) Update(ctx context.Context, d *models.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[d.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.rows[d.ID] = *d
	return nil
}

func (m *memDocuments) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Document
	for _, d := range m.rows {
		if d.UserID == userID {
			d := d
			out = append(out, &d)
		}
	}
	return out, nil
}

func (m *memDocuments) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.rows, id)
	return nil
}

type memFiles struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.File
}

func (m *memFiles) Create(ctx context.Context, f *models.File) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f.CreatedAt = time.Now()
	m.rows[f.ID] = *f
	return nil
}

func (m *memFiles) GetByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &f, nil
}

func (m *memFiles) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

type memJobs struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.GenerationJob
}

func (m *memJobs) Create(ctx context.Context, j *models.GenerationJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j.CreatedAt = time.Now()
	m.rows[j.ID] = *j
	return nil
}

func (m *memJobs) GetByID(ctx context.Context, id uuid.UUID) (*models.GenerationJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &j, nil
}

func (m *memJobs) update(id uuid.UUID, fn func(*models.GenerationJob)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.rows[id]
	if !ok {
		return errors.New("job not found")
	}
	fn(&j)
	m.rows[id] = j
	return nil
}

func (m *memJobs) UpdateStatus(ctx context.Context, id uuid.UUID, status models.GenerationJobStatus) error {
	return m.update(id, func(j *models.GenerationJob) { j.Status = status })
}

func (m *memJobs) UpdateProgress(ctx context.Context, id uuid.UUID, step string, steps models.GenerationSteps) error {
	return m.update(id, func(j *models.GenerationJob) {
		j.CurrentStep = &step
		j.Steps = steps
	})
}

func (m *memJobs) Complete(ctx context.Context, id, documentID uuid.UUID, report models.AnalysisReport) error {
	return m.update(id, func(j *models.GenerationJob) {
		j.Status = models.JobStatusCompleted
		j.DocumentID = &documentID
		j.Report = &report
	})
}

func (m *memJobs) Fail(ctx context.Context, id uuid.UUID, msg string) error {
	return m.update(id, func(j *models.GenerationJob) {
		j.Status = models.JobStatusFailed
		j.ErrorMessage = &msg
	})
}

type staticGenerator string

func (g staticGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return string(g), nil
}
