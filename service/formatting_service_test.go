package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"peticiona-backend/formatter"
	"peticiona-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const servicePetition = "EXCELENTÍSSIMO JUIZ\n\nJOÃO SILVA, CPF 123,\n\nDOS FATOS\n\nO autor comprou um produto."

func headingText(t *testing.T, blocks []models.Block) string {
	t.Helper()
	for _, b := range blocks {
		if b.Role == models.RoleSectionHeading {
			return b.Text
		}
	}
	t.Fatalf("no section heading in %d blocks", len(blocks))
	return ""
}

func seedTemplate(t *testing.T, repo *fakeTemplateRepo, numbering models.ChapterNumbering) uuid.UUID {
	t.Helper()
	settings := models.DefaultStyleSettings()
	settings.ChapterNumbering = numbering
	tmpl := &models.TemplateSettings{UserID: uuid.New(), Name: "Padrão", Settings: settings}
	require.NoError(t, repo.Create(context.Background(), tmpl))
	return tmpl.ID
}

func TestFormattingService_Format_Defaults(t *testing.T) {
	svc := NewFormattingService()

	result, err := svc.Format(context.Background(), FormatRequest{Content: servicePetition})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultStyleSettings(), result.Settings)
	require.Len(t, result.Blocks, 4)
	assert.Equal(t, "DOS FATOS", headingText(t, result.Blocks))
	assert.True(t, result.Report.HasAddressing)
	assert.True(t, result.Report.HasFacts)
}

func TestFormattingService_Format_UsesTemplate(t *testing.T) {
	repo := newFakeTemplateRepo()
	id := seedTemplate(t, repo, models.NumberingInteger)
	svc := NewFormattingService(FormattingWithTemplates(repo))

	result, err := svc.Format(context.Background(), FormatRequest{Content: servicePetition, TemplateID: &id})
	require.NoError(t, err)

	assert.Equal(t, models.NumberingInteger, result.Settings.ChapterNumbering)
	assert.Equal(t, "1. DOS FATOS", headingText(t, result.Blocks))
}

func TestFormattingService_Format_ExplicitSettingsWin(t *testing.T) {
	repo := newFakeTemplateRepo()
	id := seedTemplate(t, repo, models.NumberingInteger)
	svc := NewFormattingService(FormattingWithTemplates(repo))

	explicit := models.StyleSettings{ChapterNumbering: models.NumberingNone, DefaultFont: "arial"}
	result, err := svc.Format(context.Background(), FormatRequest{
		Content:    servicePetition,
		TemplateID: &id,
		Settings:   &explicit,
	})
	require.NoError(t, err)

	assert.Equal(t, "DOS FATOS", headingText(t, result.Blocks))
	assert.Equal(t, "arial", result.Settings.DefaultFont)
	assert.Equal(t, "2.5cm", result.Settings.FirstLineIndent)
	assert.Equal(t, 0, repo.lookups)
}

func TestFormattingService_Format_UnknownTemplateFallsBack(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	repo := newFakeTemplateRepo()
	svc := NewFormattingService(FormattingWithTemplates(repo), FormattingWithLogger(zap.New(core)))

	missing := uuid.New()
	result, err := svc.Format(context.Background(), FormatRequest{Content: servicePetition, TemplateID: &missing})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultStyleSettings(), result.Settings)
	assert.Equal(t, 1, logs.FilterMessage("template not found, using defaults").Len())
}

func TestFormattingService_Format_TemplateErrorFallsBack(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	repo := newFakeTemplateRepo()
	repo.err = errors.New("connection refused")
	svc := NewFormattingService(FormattingWithTemplates(repo), FormattingWithLogger(zap.New(core)))

	id := uuid.New()
	result, err := svc.Format(context.Background(), FormatRequest{Content: servicePetition, TemplateID: &id})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultStyleSettings(), result.Settings)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "connection refused", entries[0].ContextMap()["error"])
}

func TestFormattingService_Format_EmptyContent(t *testing.T) {
	svc := NewFormattingService()

	result, err := svc.Format(context.Background(), FormatRequest{Content: ""})
	require.NoError(t, err)

	assert.NotNil(t, result.Blocks)
	assert.Empty(t, result.Blocks)
	assert.Equal(t, 1, result.Report.WordCount)
}

func TestFormattingService_Format_Memoizes(t *testing.T) {
	cache := formatter.NewCache(8)
	svc := NewFormattingService(FormattingWithCache(cache))
	ctx := context.Background()

	first, err := svc.Format(ctx, FormatRequest{Content: servicePetition})
	require.NoError(t, err)
	second, err := svc.Format(ctx, FormatRequest{Content: servicePetition})
	require.NoError(t, err)

	assert.Equal(t, first.Blocks, second.Blocks)
	stats := cache.Stats()
	assert.Equal(t, uint64(2), stats.Misses)
	assert.Equal(t, uint64(2), stats.Hits)
}

func TestFormattingService_FormatBatch(t *testing.T) {
	svc := NewFormattingService(FormattingWithCache(formatter.NewCache(16)))

	reqs := make([]FormatRequest, 20)
	for i := range reqs {
		reqs[i] = FormatRequest{Content: fmt.Sprintf("Parágrafo número %d.", i)}
	}

	results, err := svc.FormatBatch(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))
	for i, result := range results {
		require.Len(t, result.Blocks, 1)
		assert.Equal(t, fmt.Sprintf("Parágrafo número %d.", i), result.Blocks[0].Text)
	}
}

func TestFormattingService_FormatBatch_TooLarge(t *testing.T) {
	svc := NewFormattingService(FormattingWithMaxBatchSize(2))

	_, err := svc.FormatBatch(context.Background(), make([]FormatRequest, 3))
	assert.ErrorIs(t, err, ErrBatchTooLarge)

	results, err := svc.FormatBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFormattingService_FormatBatch_CanceledContext(t *testing.T) {
	svc := NewFormattingService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.FormatBatch(ctx, []FormatRequest{{Content: servicePetition}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormattingService_PreviewHTML(t *testing.T) {
	svc := NewFormattingService()

	out, err := svc.PreviewHTML(context.Background(), FormatRequest{Content: servicePetition})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<div class="document"`))
	assert.Contains(t, out, "<b>JOÃO SILVA</b>")
}

func TestFormattingService_PreviewHTML_DropsInjectedStyle(t *testing.T) {
	svc := NewFormattingService()
	settings := models.StyleSettings{
		FirstLineIndent: "2cm; background:url(https://example.com/x.png)",
		Margin:          "0} body{display:none",
	}

	out, err := svc.PreviewHTML(context.Background(), FormatRequest{Content: servicePetition, Settings: &settings})
	require.NoError(t, err)

	assert.NotContains(t, out, "background")
	assert.NotContains(t, out, "display")
	assert.Contains(t, out, "text-indent: 2.5cm")
	assert.Contains(t, out, "padding: 3cm 2cm 2cm 3cm")
}

func TestFormattingService_Analyze(t *testing.T) {
	svc := NewFormattingService()

	report := svc.Analyze(context.Background(), "DO DIREITO\n\nDOS PEDIDOS\n\nAdvogado OAB/SP 123.456")
	assert.True(t, report.HasLegalBasis)
	assert.True(t, report.HasRequests)
	assert.True(t, report.HasSignature)
	assert.True(t, report.HasOAB)
	assert.False(t, report.HasAddressing)
}
