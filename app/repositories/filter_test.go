package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSearchFilterEmptyQueryMatchesAll(t *testing.T) {
	assert.Equal(t, bson.M{}, searchFilter(""))
}

func TestSearchFilterCoversAllSlots(t *testing.T) {
	filter := searchFilter("electronics")

	clauses, ok := filter["$or"].([]bson.M)
	require.True(t, ok, "filter must be an $or disjunction")
	require.Len(t, clauses, 5)

	fields := make([]string, 0, len(clauses))
	for _, clause := range clauses {
		require.Len(t, clause, 1)
		for field, cond := range clause {
			fields = append(fields, field)

			regex, ok := cond.(bson.M)
			require.True(t, ok, "%s condition must be a regex document", field)
			assert.Equal(t, "electronics", regex["$regex"])
			assert.Equal(t, "i", regex["$options"], "%s match must be case-insensitive", field)
		}
	}

	// Both legacy identifier spellings plus the three display fields.
	assert.ElementsMatch(t,
		[]string{"Internal_ID", "InternalID", "Name", "Brand", "Category"},
		fields)
}

func TestIdentifierFilterChecksBothSlots(t *testing.T) {
	filter := identifierFilter("04cc19ed-772c-4cab-9758-057962c2a475")

	clauses, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	assert.ElementsMatch(t, []bson.M{
		{"Internal_ID": "04cc19ed-772c-4cab-9758-057962c2a475"},
		{"InternalID": "04cc19ed-772c-4cab-9758-057962c2a475"},
	}, clauses)
}
