package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"forumflow/internal/models"
)

func TestUserUpsertDocument(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	update := userUpsertDocument("alice@example.com", "Alice", now)

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", set["email"])
	assert.Equal(t, "Alice", set["name"])
	assert.Equal(t, now, set["lastLogin"])

	// A repeat sync must never rewrite these.
	assert.NotContains(t, set, "createdAt")
	assert.NotContains(t, set, "role")
	assert.NotContains(t, set, "membership")

	onInsert, ok := update["$setOnInsert"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, models.RoleUser, onInsert["role"])
	assert.Equal(t, "", onInsert["membership"])
	assert.Equal(t, now, onInsert["createdAt"])
	assert.NotContains(t, onInsert, "lastLogin")
}
