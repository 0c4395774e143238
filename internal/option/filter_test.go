package option

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOptions() []Option {
	return []Option{
		{ID: "apples", Label: "Apples", Description: "Fresh fruit"},
		{ID: "bread", Label: "Bread", Description: "Bakery"},
		{ID: "brie", Label: "Brie", Description: "Soft cheese"},
		{ID: "cider", Label: "Cider", Description: "Apple drink"},
	}
}

func TestFilterEmptyQueryReturnsInputUnchanged(t *testing.T) {
	t.Parallel()

	options := sampleOptions()

	for _, query := range []string{"", "   ", "\t"} {
		result := Filter(options, query)
		require.Len(t, result, len(options))
		assert.Equal(t, options, result)
	}
}

func TestFilterMatchesLabelCaseInsensitively(t *testing.T) {
	t.Parallel()

	result := Filter(sampleOptions(), "BR")
	require.Len(t, result, 2)
	assert.Equal(t, "bread", result[0].ID)
	assert.Equal(t, "brie", result[1].ID)
}

func TestFilterMatchesDescription(t *testing.T) {
	t.Parallel()

	result := Filter(sampleOptions(), "apple")
	require.Len(t, result, 2)
	// "Apples" by label, "Cider" by its "Apple drink" description.
	assert.Equal(t, "apples", result[0].ID)
	assert.Equal(t, "cider", result[1].ID)
}

func TestFilterResultIsSubsetContainingQuery(t *testing.T) {
	t.Parallel()

	options := sampleOptions()
	query := "e"
	result := Filter(options, query)

	assert.LessOrEqual(t, len(result), len(options))
	for _, opt := range result {
		haystack := strings.ToLower(opt.Label + " " + opt.Description)
		assert.Contains(t, haystack, query)
	}
}

func TestFilterNoMatches(t *testing.T) {
	t.Parallel()

	result := Filter(sampleOptions(), "xyzzy")
	assert.Empty(t, result)
}

func TestFilterNilOptions(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Filter(nil, "query"))
	assert.Nil(t, Filter(nil, ""))
}

func TestFilterPaddedQueryMatchesLiterally(t *testing.T) {
	t.Parallel()

	// "Apple drink" contains "apple " but no label or description
	// contains " apples ".
	result := Filter(sampleOptions(), "apple ")
	require.Len(t, result, 1)
	assert.Equal(t, "cider", result[0].ID)

	assert.Empty(t, Filter(sampleOptions(), " apples "))
}
