package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectZone(t *testing.T) {
	t.Run("addressing before facts", func(t *testing.T) {
		lines := []string{"EXCELENTÍSSIMO JUIZ", "", "JOÃO SILVA, CPF 123,", "", "DOS FATOS", "", "Texto."}
		zone := DetectZone(lines)

		assert.True(t, zone.HasAddressing)
		assert.True(t, zone.HasFacts)
		assert.Equal(t, 0, zone.AddressingIndex)
		assert.Equal(t, 4, zone.FactsIndex)
		assert.True(t, zone.Valid())
		assert.True(t, zone.Contains(2))
		assert.False(t, zone.Contains(0))
		assert.False(t, zone.Contains(4))
	})

	t.Run("nothing found", func(t *testing.T) {
		zone := DetectZone([]string{"Texto.", "Mais texto."})

		assert.False(t, zone.HasAddressing)
		assert.False(t, zone.HasFacts)
		assert.Equal(t, -1, zone.AddressingIndex)
		assert.Equal(t, -1, zone.FactsIndex)
		assert.False(t, zone.Valid())
		assert.False(t, zone.Contains(0))
	})

	t.Run("addressing after facts is not a zone", func(t *testing.T) {
		zone := DetectZone([]string{"DOS FATOS", "MARIA, brasileira,", "EXMO. SR. JUIZ"})

		assert.Equal(t, 2, zone.AddressingIndex)
		assert.Equal(t, 0, zone.FactsIndex)
		assert.False(t, zone.Valid())
		assert.False(t, zone.Contains(1))
	})

	t.Run("first occurrence wins", func(t *testing.T) {
		zone := DetectZone([]string{"Excelentíssimo Senhor", "EXCELENTÍSSIMO JUIZ", "FATOS:", "DOS FATOS"})

		assert.Equal(t, 0, zone.AddressingIndex)
		assert.Equal(t, 2, zone.FactsIndex)
	})

	t.Run("facts marker inside a numbered heading", func(t *testing.T) {
		zone := DetectZone([]string{"EXCELENTÍSSIMO JUIZ", "I – DOS FATOS"})
		assert.Equal(t, 1, zone.FactsIndex)
	})

	t.Run("lower-case prose is not a facts heading", func(t *testing.T) {
		zone := DetectZone([]string{"EXCELENTÍSSIMO JUIZ", "Segue a narração dos fatos ocorridos."})
		assert.False(t, zone.HasFacts)
	})

	t.Run("lines are trimmed before matching", func(t *testing.T) {
		zone := DetectZone([]string{"   EXCELENTÍSSIMO JUIZ  ", "\tDOS FATOS"})
		assert.True(t, zone.Valid())
	})
}
