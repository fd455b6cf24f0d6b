package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseMealQuery(t *testing.T) {
	t.Run("all inputs absent means empty filter", func(t *testing.T) {
		q := ParseMealQuery("", "", "")
		assert.Equal(t, bson.M{}, q.Filter())
	})

	t.Run("search and category compose conjunctively", func(t *testing.T) {
		q := ParseMealQuery("chicken", "lunch", "")
		filter := q.Filter()
		assert.Equal(t, bson.M{"$regex": "chicken", "$options": "i"}, filter["meal_title"])
		assert.Equal(t, bson.M{"$regex": "lunch", "$options": "i"}, filter["category"])
		assert.NotContains(t, filter, "price")
	})

	t.Run("full price range sets both bounds", func(t *testing.T) {
		q := ParseMealQuery("", "", "10-20")
		require.NotNil(t, q.MinPrice)
		require.NotNil(t, q.MaxPrice)
		assert.Equal(t, bson.M{"price": bson.M{"$gte": 10.0, "$lte": 20.0}}, q.Filter())
	})

	t.Run("missing lower bound disables the price filter", func(t *testing.T) {
		q := ParseMealQuery("", "", "-20")
		assert.Nil(t, q.MinPrice)
		assert.Equal(t, bson.M{}, q.Filter())
	})

	t.Run("garbage range disables the price filter", func(t *testing.T) {
		q := ParseMealQuery("", "", "cheap")
		assert.Equal(t, bson.M{}, q.Filter())
	})

	t.Run("missing upper bound keeps a lower-bound-only filter", func(t *testing.T) {
		q := ParseMealQuery("", "", "10-")
		require.NotNil(t, q.MinPrice)
		assert.Nil(t, q.MaxPrice)
		assert.Equal(t, bson.M{"price": bson.M{"$gte": 10.0}}, q.Filter())
	})
}
