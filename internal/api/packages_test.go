package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/borhan98/UniFood-Server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPackages(t *testing.T) {
	t.Run("list returns every package", func(t *testing.T) {
		r, store := newTestServer(t)
		for _, name := range []string{"Silver", "Gold", "Platinum"} {
			_, err := store.Packages().InsertOne(context.Background(), domain.Package{Name: name, Price: 9.99})
			require.NoError(t, err)
		}
		w := doJSON(t, r, http.MethodGet, "/packages", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeList(t, w), 3)
	})

	t.Run("fetch by id returns the package", func(t *testing.T) {
		r, store := newTestServer(t)
		res, err := store.Packages().InsertOne(context.Background(), domain.Package{Name: "Gold", Price: 14.99})
		require.NoError(t, err)
		id := res.InsertedID.(primitive.ObjectID)

		w := doJSON(t, r, http.MethodGet, "/packages/"+id.Hex(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Gold", body["package_name"])
		assert.Equal(t, 14.99, body["price"])
	})

	t.Run("malformed id is a backend failure", func(t *testing.T) {
		r, _ := newTestServer(t)
		w := doJSON(t, r, http.MethodGet, "/packages/zzz", nil, "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLiveness(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(t, r, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "UniFood is running", w.Body.String())
}
