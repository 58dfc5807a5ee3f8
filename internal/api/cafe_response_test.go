package api

import (
	"testing"
	"time"

	"cafe-map/internal/model"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestNewCafeResponse(t *testing.T) {
	name := "官方推薦"
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	c := model.Cafe{
		ID: 7, Title: "T", Address: "A", Latitude: 0, Longitude: 121.5,
		AuthorID: 3, Author: model.Author{ID: 3, Name: &name},
		CreatedAt: now, UpdatedAt: now,
	}

	b, err := json.Marshal(NewCafeResponse(&c))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	for _, k := range []string{"id", "title", "description", "address", "latitude", "longitude",
		"category", "imageUrl", "googleMapsUrl", "authorId", "author", "createdAt", "updatedAt"} {
		require.Contains(t, got, k)
	}
	require.Nil(t, got["description"])
	require.Equal(t, float64(0), got["latitude"])
	require.Equal(t, map[string]any{"id": float64(3), "name": "官方推薦"}, got["author"])
}

func TestNewCafeListResponseEmpty(t *testing.T) {
	b, err := json.Marshal(NewCafeListResponse(nil))
	require.NoError(t, err)
	require.JSONEq(t, "[]", string(b))
}
