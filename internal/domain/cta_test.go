package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCTABreakdown(t *testing.T) {
	breakdown := NewCTABreakdown()

	assert.False(t, breakdown.Available)
	assert.Len(t, breakdown.Counts, 6)
	for _, label := range []string{"Spotify", "Apple Music", "Novela", "Instagram", "Regalo", "Música"} {
		count, ok := breakdown.Counts[label]
		assert.True(t, ok, "chave fixa %s ausente", label)
		assert.Zero(t, count)
	}
}

func TestCTABreakdown_Set(t *testing.T) {
	breakdown := NewCTABreakdown()

	breakdown.Set("release_apple_click", 12)
	breakdown.Set("evento_fora_da_tabela", 999)

	assert.Equal(t, 12, breakdown.Counts["Apple Music"])
	assert.Equal(t, 12, breakdown.Total())
	// Set de valor desconhecido não cria chave nova
	assert.Len(t, breakdown.Counts, 6)
}
