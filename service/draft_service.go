package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"peticiona-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Drafting steps, in order
const (
	StepDrafting   = "Drafting Petition"
	StepFormatting = "Formatting Document"
	StepAnalyzing  = "Analyzing Quality"
)

// GenerationJobRepository persists drafting jobs
type GenerationJobRepository interface {
	Create(ctx context.Context, job *models.GenerationJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.GenerationJob, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.GenerationJobStatus) error
	UpdateProgress(ctx context.Context, id uuid.UUID, currentStep string, steps models.GenerationSteps) error
	Complete(ctx context.Context, id, documentID uuid.UUID, report models.AnalysisReport) error
	Fail(ctx context.Context, id uuid.UUID, errorMessage string) error
}

// DocumentCreator stores generated drafts
type DocumentCreator interface {
	CreateDocument(ctx context.Context, req CreateDocumentRequest) (*models.Document, error)
}

// UserLookup resolves the account a draft is written for
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// DraftService writes petitions with a ContentGenerator as background jobs
type DraftService struct {
	jobRepo    GenerationJobRepository
	users      UserLookup
	documents  DocumentCreator
	formatting *FormattingService
	generator  ContentGenerator
	logger     *zap.Logger
}

// DraftServiceOption is a functional option for DraftService
type DraftServiceOption func(*DraftService)

// DraftWithGenerationJobRepository sets the generation job repository
func DraftWithGenerationJobRepository(repo GenerationJobRepository) DraftServiceOption {
	return func(s *DraftService) {
		s.jobRepo = repo
	}
}

// DraftWithUsers sets the account lookup used to sign drafts
func DraftWithUsers(users UserLookup) DraftServiceOption {
	return func(s *DraftService) {
		s.users = users
	}
}

// DraftWithDocuments sets where generated drafts are stored
func DraftWithDocuments(documents DocumentCreator) DraftServiceOption {
	return func(s *DraftService) {
		s.documents = documents
	}
}

// DraftWithFormattingService sets the formatting service
func DraftWithFormattingService(formatting *FormattingService) DraftServiceOption {
	return func(s *DraftService) {
		s.formatting = formatting
	}
}

// DraftWithGenerator sets the content generator
func DraftWithGenerator(generator ContentGenerator) DraftServiceOption {
	return func(s *DraftService) {
		s.generator = generator
	}
}

// DraftWithLogger sets the logger
func DraftWithLogger(logger *zap.Logger) DraftServiceOption {
	return func(s *DraftService) {
		s.logger = logger
	}
}

// NewDraftService creates a new draft service
func NewDraftService(opts ...DraftServiceOption) *DraftService {
	s := &DraftService{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.formatting == nil {
		s.formatting = NewFormattingService(FormattingWithLogger(s.logger))
	}
	return s
}

// GenerateDraftRequest represents a request to draft a petition
type GenerateDraftRequest struct {
	UserID uuid.UUID
	Input  models.DraftInput
}

// GenerateDraftResult represents the result of creating a drafting job
type GenerateDraftResult struct {
	JobID uuid.UUID
}

// GenerateDraft validates the case data and creates a pending job. The work
// itself happens in ProcessDraft.
func (s *DraftService) GenerateDraft(ctx context.Context, req GenerateDraftRequest) (*GenerateDraftResult, error) {
	if s.jobRepo == nil {
		return nil, errors.New("generation job repository not set")
	}

	input := trimDraftInput(req.Input)
	if missing := missingDraftFields(input); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequiredData, strings.Join(missing, ", "))
	}
	input = s.withSignature(ctx, req.UserID, input)

	job := &models.GenerationJob{
		ID:     uuid.New(),
		UserID: req.UserID,
		Status: models.JobStatusPending,
		Steps:  initialDraftSteps(),
		Input:  input,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create generation job: %w", err)
	}

	s.logger.Info("drafting job created", zap.String("job_id", job.ID.String()))
	return &GenerateDraftResult{JobID: job.ID}, nil
}

// withSignature fills the lawyer name and OAB number from the account when the
// request leaves them blank
func (s *DraftService) withSignature(ctx context.Context, userID uuid.UUID, in models.DraftInput) models.DraftInput {
	if s.users == nil || (in.LawyerName != "" && in.OABNumber != "") {
		return in
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("failed to load user for signature", zap.String("user_id", userID.String()), zap.Error(err))
		}
		return in
	}

	if in.LawyerName == "" {
		in.LawyerName = strings.TrimSpace(user.Name)
	}
	if in.OABNumber == "" && user.OABNumber != nil {
		in.OABNumber = strings.TrimSpace(*user.OABNumber)
	}
	return in
}

// GetJobStatus retrieves a drafting job
func (s *DraftService) GetJobStatus(ctx context.Context, jobID uuid.UUID) (*models.GenerationJob, error) {
	if s.jobRepo == nil {
		return nil, errors.New("generation job repository not set")
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load generation job: %w", err)
	}
	return job, nil
}

// ProcessDraft runs a pending job: generate the text, store and format it,
// then analyze it. Any failure marks the job failed with its message.
func (s *DraftService) ProcessDraft(ctx context.Context, jobID uuid.UUID) error {
	if s.jobRepo == nil {
		return errors.New("generation job repository not set")
	}
	if s.generator == nil || s.documents == nil {
		return errors.New("draft service not fully configured")
	}

	job, err := s.GetJobStatus(ctx, jobID)
	if err != nil {
		return err
	}
	logger := s.logger.With(zap.String("job_id", jobID.String()))

	if err := s.jobRepo.UpdateStatus(ctx, jobID, models.JobStatusInProgress); err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	steps := job.Steps
	if len(steps) == 0 {
		steps = initialDraftSteps()
	}
	progress := func(name, status string) error {
		steps = withStepStatus(steps, name, status)
		logger.Debug("drafting step", zap.String("step", name), zap.String("status", status))
		return s.jobRepo.UpdateProgress(ctx, jobID, name, steps)
	}
	fail := func(step string, err error) error {
		if step != "" {
			steps = withStepStatus(steps, step, models.StepFailed)
			_ = s.jobRepo.UpdateProgress(ctx, jobID, step, steps)
		}
		logger.Error("drafting job failed", zap.String("step", step), zap.Error(err))
		if ferr := s.jobRepo.Fail(ctx, jobID, err.Error()); ferr != nil {
			logger.Error("failed to mark job failed", zap.Error(ferr))
		}
		return err
	}

	// 1. Draft
	if err := progress(StepDrafting, models.StepInProgress); err != nil {
		return fail("", fmt.Errorf("failed to update step: %w", err))
	}
	content, err := s.generator.Generate(ctx, buildDraftPrompt(job.Input))
	if err != nil {
		return fail(StepDrafting, fmt.Errorf("%w: %v", ErrGenerationFailed, err))
	}
	content = cleanGeneratedText(content)
	if strings.TrimSpace(content) == "" {
		return fail(StepDrafting, fmt.Errorf("%w: empty draft", ErrGenerationFailed))
	}
	if err := progress(StepDrafting, models.StepCompleted); err != nil {
		return fail("", fmt.Errorf("failed to update step: %w", err))
	}

	// 2. Store and format
	if err := progress(StepFormatting, models.StepInProgress); err != nil {
		return fail("", fmt.Errorf("failed to update step: %w", err))
	}
	doc, err := s.documents.CreateDocument(ctx, CreateDocumentRequest{
		UserID:     job.UserID,
		Title:      draftTitle(job.Input),
		Content:    content,
		TemplateID: job.Input.TemplateID,
	})
	if err != nil {
		return fail(StepFormatting, fmt.Errorf("failed to store draft: %w", err))
	}
	formatted, err := s.formatting.Format(ctx, FormatRequest{Content: content, TemplateID: job.Input.TemplateID})
	if err != nil {
		return fail(StepFormatting, fmt.Errorf("failed to format draft: %w", err))
	}
	if err := progress(StepFormatting, models.StepCompleted); err != nil {
		return fail("", fmt.Errorf("failed to update step: %w", err))
	}

	// 3. Analyze
	if err := progress(StepAnalyzing, models.StepInProgress); err != nil {
		return fail("", fmt.Errorf("failed to update step: %w", err))
	}
	report := formatted.Report
	if !report.Complete() {
		logger.Warn("generated draft is structurally incomplete", zap.Any("report", report))
	}
	if err := progress(StepAnalyzing, models.StepCompleted); err != nil {
		return fail("", fmt.Errorf("failed to update step: %w", err))
	}

	if err := s.jobRepo.Complete(ctx, jobID, doc.ID, report); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	logger.Info("drafting job completed",
		zap.String("document_id", doc.ID.String()),
		zap.Int("blocks", len(formatted.Blocks)))
	return nil
}

func initialDraftSteps() models.GenerationSteps {
	return models.GenerationSteps{
		{Name: StepDrafting, Status: models.StepPending, Description: "Writing the petition from the case data"},
		{Name: StepFormatting, Status: models.StepPending, Description: "Storing and structuring the draft"},
		{Name: StepAnalyzing, Status: models.StepPending, Description: "Checking the structural elements"},
	}
}

// withStepStatus returns a copy of steps with the named step set to status
func withStepStatus(steps models.GenerationSteps, name, status string) models.GenerationSteps {
	out := make(models.GenerationSteps, len(steps))
	copy(out, steps)
	for i := range out {
		if out[i].Name == name {
			out[i].Status = status
		}
	}
	return out
}

func trimDraftInput(in models.DraftInput) models.DraftInput {
	in.ActionType = strings.TrimSpace(in.ActionType)
	in.Court = strings.TrimSpace(in.Court)
	in.Author = strings.TrimSpace(in.Author)
	in.AuthorQualification = strings.TrimSpace(in.AuthorQualification)
	in.Defendant = strings.TrimSpace(in.Defendant)
	in.Facts = strings.TrimSpace(in.Facts)
	in.LegalBasis = strings.TrimSpace(in.LegalBasis)
	in.LawyerName = strings.TrimSpace(in.LawyerName)
	in.OABNumber = strings.TrimSpace(in.OABNumber)

	requests := in.Requests[:0:0]
	for _, r := range in.Requests {
		if r = strings.TrimSpace(r); r != "" {
			requests = append(requests, r)
		}
	}
	in.Requests = requests
	return in
}

func missingDraftFields(in models.DraftInput) []string {
	var missing []string
	if in.ActionType == "" {
		missing = append(missing, "action_type")
	}
	if in.Author == "" {
		missing = append(missing, "author")
	}
	if in.Defendant == "" {
		missing = append(missing, "defendant")
	}
	if in.Facts == "" {
		missing = append(missing, "facts")
	}
	return missing
}

func draftTitle(in models.DraftInput) string {
	return fmt.Sprintf("%s - %s x %s", in.ActionType, in.Author, in.Defendant)
}

// cleanGeneratedText removes a Markdown code fence wrapping the whole answer
func cleanGeneratedText(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	} else {
		return ""
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func buildDraftPrompt(in models.DraftInput) string {
	var b strings.Builder

	b.WriteString("Você é um advogado brasileiro experiente. Redija uma petição inicial completa em português, ")
	b.WriteString("em texto simples, sem Markdown, seguindo exatamente esta estrutura:\n\n")
	b.WriteString("1. Endereçamento em linha própria, iniciando com \"EXCELENTÍSSIMO(A) SENHOR(A) DOUTOR(A) JUIZ(A)\".\n")
	b.WriteString("2. Qualificação das partes em parágrafos que começam pelo nome completo seguido de vírgula. ")
	b.WriteString("Use \"em face de\" antes do nome do réu.\n")
	b.WriteString("3. O nome da ação em maiúsculas, em linha própria (por exemplo, \"AÇÃO DE INDENIZAÇÃO\").\n")
	b.WriteString("4. Capítulos em maiúsculas no formato \"I - DOS FATOS\", \"II - DO DIREITO\", \"III - DOS PEDIDOS\".\n")
	b.WriteString("5. Citações de jurisprudência em linhas iniciadas por \"> \".\n")
	b.WriteString("6. Fecho com local, data, nome do advogado e número da OAB (por exemplo, \"OAB/SP 123.456\").\n")
	b.WriteString("Separe cada parágrafo por uma linha em branco.\n\n")

	b.WriteString("DADOS DO CASO\n")
	fmt.Fprintf(&b, "Tipo de ação: %s\n", in.ActionType)
	if in.Court != "" {
		fmt.Fprintf(&b, "Juízo: %s\n", in.Court)
	}
	fmt.Fprintf(&b, "Autor: %s\n", in.Author)
	if in.AuthorQualification != "" {
		fmt.Fprintf(&b, "Qualificação do autor: %s\n", in.AuthorQualification)
	}
	fmt.Fprintf(&b, "Réu: %s\n", in.Defendant)
	fmt.Fprintf(&b, "Fatos: %s\n", in.Facts)
	if in.LegalBasis != "" {
		fmt.Fprintf(&b, "Fundamentos jurídicos: %s\n", in.LegalBasis)
	}
	if len(in.Requests) > 0 {
		b.WriteString("Pedidos:\n")
		for _, r := range in.Requests {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}
	if in.LawyerName != "" {
		fmt.Fprintf(&b, "Advogado: %s\n", in.LawyerName)
	}
	if in.OABNumber != "" {
		fmt.Fprintf(&b, "OAB: %s\n", in.OABNumber)
	}

	return b.String()
}
