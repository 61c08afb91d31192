package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	p, ok := Get("GT1")
	require.True(t, ok)
	assert.Equal(t, "Problem-Exploration", p.Title)
	assert.Equal(t, CategoryGeissler, p.Category)
	assert.Contains(t, p.Content, "PROBLEM-BESCHREIBUNG")

	_, ok = Get("XX9")
	assert.False(t, ok)
}

func TestAllSortedByKey(t *testing.T) {
	all := All()
	require.Len(t, all, 8)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Key, all[i].Key)
	}
}

func TestByCategory(t *testing.T) {
	gt := ByCategory(CategoryGeissler)
	require.Len(t, gt, 3)
	assert.Equal(t, "GT1", gt[0].Key)
	assert.Equal(t, "GT3", gt[2].Key)

	// empty category means everything
	assert.Len(t, ByCategory(""), 8)
	assert.Empty(t, ByCategory("Unbekannt"))
}

func TestStats(t *testing.T) {
	stats := Stats()
	assert.Equal(t, 3, stats[CategoryGeissler])
	assert.Equal(t, 2, stats[CategoryEinzel])
	assert.Equal(t, 2, stats[CategorySystemisch])
	assert.Equal(t, 1, stats[CategoryKommunik])
}
