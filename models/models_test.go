package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChapterNumbering(t *testing.T) {
	assert.True(t, NumberingNone.Valid())
	assert.True(t, NumberingUnit.Valid())
	assert.False(t, ChapterNumbering("roman").Valid())

	assert.False(t, NumberingNone.Prefixed())
	assert.True(t, NumberingInteger.Prefixed())
	assert.True(t, NumberingUnit.Prefixed())
	assert.False(t, ChapterNumbering("").Prefixed())
}

func TestStyleSettings_WithDefaults(t *testing.T) {
	got := StyleSettings{DefaultFont: "arial", ChapterNumbering: "roman"}.WithDefaults()

	want := DefaultStyleSettings()
	want.DefaultFont = "arial"
	want.ChapterNumbering = "roman"
	assert.Equal(t, want, got)

	assert.Equal(t, DefaultStyleSettings(), StyleSettings{}.WithDefaults())
}

func TestStyleSettings_UnsafeValues(t *testing.T) {
	assert.True(t, SafeCSSValue("3cm 2cm 2cm 3cm"))
	assert.True(t, SafeCSSValue(`"Times New Roman", serif`))
	assert.False(t, SafeCSSValue("2cm; background:url(x)"))
	assert.False(t, SafeCSSValue("0} p{color:red"))

	unsafe := StyleSettings{FirstLineIndent: "2cm; color:red", Margin: "1cm\nx", JurisprudenceIndent: "5cm"}
	assert.ErrorIs(t, unsafe.Validate(), ErrUnsafeStyleValue)
	assert.NoError(t, DefaultStyleSettings().Validate())

	got := unsafe.WithDefaults()
	assert.Equal(t, "2.5cm", got.FirstLineIndent)
	assert.Equal(t, "3cm 2cm 2cm 3cm", got.Margin)
	assert.Equal(t, "5cm", got.JurisprudenceIndent)
	assert.NoError(t, got.Validate())
}

func TestStyleSettings_JSONB(t *testing.T) {
	in := DefaultStyleSettings()
	in.ChapterNumbering = NumberingInteger

	raw, err := in.Value()
	require.NoError(t, err)

	var out StyleSettings
	require.NoError(t, out.Scan(raw))
	assert.Equal(t, in, out)

	var empty StyleSettings
	require.NoError(t, empty.Scan(nil))
	assert.Equal(t, DefaultStyleSettings(), empty)
}

func TestGenerationSteps_Scan(t *testing.T) {
	var steps GenerationSteps
	require.NoError(t, steps.Scan(`[{"name":"Drafting Petition","status":"pending"}]`))
	require.Len(t, steps, 1)
	assert.Equal(t, "Drafting Petition", steps[0].Name)

	require.NoError(t, steps.Scan(nil))
	assert.NotNil(t, steps)
	assert.Empty(t, steps)
}

func TestDraftInput_Scan(t *testing.T) {
	var input DraftInput
	require.NoError(t, input.Scan([]byte(`{"action_type":"AÇÃO DE COBRANÇA","requests":["citação"]}`)))
	assert.Equal(t, "AÇÃO DE COBRANÇA", input.ActionType)
	assert.Equal(t, []string{"citação"}, input.Requests)

	require.NoError(t, input.Scan(42))
	assert.Equal(t, DraftInput{}, input)
}

func TestAnalysisReport_Complete(t *testing.T) {
	report := AnalysisReport{
		HasAddressing: true, HasFacts: true, HasLegalBasis: true,
		HasRequests: true, HasSignature: true, HasOAB: true,
	}
	assert.True(t, report.Complete())

	report.HasOAB = false
	assert.False(t, report.Complete())

	var scanned AnalysisReport
	require.NoError(t, scanned.Scan([]byte(`{"has_facts":true,"word_count":7}`)))
	assert.True(t, scanned.HasFacts)
	assert.Equal(t, 7, scanned.WordCount)
}

func TestBlockRole_IsParagraph(t *testing.T) {
	assert.True(t, RoleBodyParagraph.IsParagraph())
	assert.True(t, RoleQualificationParagraph.IsParagraph())
	assert.False(t, RoleSectionHeading.IsParagraph())
}
