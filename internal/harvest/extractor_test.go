package harvest_test

import (
	"errors"
	"testing"

	"github.com/qepting91/complaint-harvester/internal/domain"
	"github.com/qepting91/complaint-harvester/internal/harvest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_OnlyNewCards(t *testing.T) {
	t.Parallel()

	ex := harvest.NewExtractor(harvest.DefaultConfig().Selectors)
	all := cards("x", 5)

	b := ex.ExtractNew(all, 3, 7, 10)
	require.Len(t, b.Posts, 2)
	assert.Equal(t, 2, b.Consumed)
	assert.Equal(t, "x complaint 3", b.Posts[0].BodyText)
	assert.Equal(t, 7, b.Posts[0].SourceID)
	assert.Equal(t, 8, b.Posts[1].SourceID)
}

func TestExtractor_Fields(t *testing.T) {
	t.Parallel()

	ex := harvest.NewExtractor(harvest.DefaultConfig().Selectors)
	b := ex.ExtractNew([]string{
		card("  Paket iptal edilmiyor  ", "  can  ", " 16 Ocak 10:23 "),
		card("Hat taşıma", "", ""),
	}, 0, 0, 10)

	require.Len(t, b.Posts, 2)
	first := b.Posts[0]
	assert.Equal(t, "Paket iptal edilmiyor", first.BodyText)
	require.NotNil(t, first.AuthorHandle)
	assert.Equal(t, "can", *first.AuthorHandle)
	require.NotNil(t, first.PostedAtRaw)
	assert.Equal(t, "16 Ocak 10:23", *first.PostedAtRaw)

	assert.Nil(t, b.Posts[1].AuthorHandle)
	assert.Nil(t, b.Posts[1].PostedAtRaw)
}

func TestExtractor_SkipsAndRespectsLimit(t *testing.T) {
	t.Parallel()

	ex := harvest.NewExtractor(harvest.DefaultConfig().Selectors)
	input := []string{
		card("", "a", ""),
		card("one", "b", ""),
		"",
		card("two", "c", ""),
		card("three", "d", ""),
	}

	b := ex.ExtractNew(input, 0, 0, 2)
	require.Len(t, b.Posts, 2)
	assert.Equal(t, []int{0, 1}, []int{b.Posts[0].SourceID, b.Posts[1].SourceID})
	assert.Equal(t, "two", b.Posts[1].BodyText)
	assert.Equal(t, 4, b.Consumed)

	require.Len(t, b.Skipped, 2)
	assert.Equal(t, 0, b.Skipped[0].Index)
	assert.Equal(t, 2, b.Skipped[1].Index)
	assert.True(t, errors.Is(b.Skipped[0], domain.ErrMissingBody))
}

func TestExtractor_NothingNew(t *testing.T) {
	t.Parallel()

	ex := harvest.NewExtractor(harvest.DefaultConfig().Selectors)
	b := ex.ExtractNew(cards("x", 2), 2, 2, 10)
	assert.Empty(t, b.Posts)
	assert.Zero(t, b.Consumed)

	// a feed that shrank below the cursor yields nothing
	b = ex.ExtractNew(cards("x", 1), 2, 2, 10)
	assert.Empty(t, b.Posts)
}
