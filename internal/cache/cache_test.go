package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"classtrack/internal/model"
)

func TestDisabledClient(t *testing.T) {
	client := New("", "", 0)
	ctx := context.Background()

	assert.NoError(t, client.Set(ctx, "k", []byte("v"), 0))

	data, err := client.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, client.Delete(ctx, "k"))
}

func TestNilClient(t *testing.T) {
	var client *Client
	ctx := context.Background()

	data, err := client.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, client.Set(ctx, "k", []byte("v"), 0))
	assert.NoError(t, client.Delete(ctx, "k"))
}

func TestSessionCacheOverDisabledClient(t *testing.T) {
	codes := NewSessionCache(New("", "", 0))
	ctx := context.Background()

	session := &model.Session{ID: 1, Code: "12345", Name: "Lecture 1"}
	codes.Put(ctx, session)

	// A disabled client never stores, so everything misses.
	assert.Nil(t, codes.GetByCode(ctx, "12345"))

	codes.Invalidate(ctx, "12345")
	assert.Nil(t, codes.GetByCode(ctx, "12345"))
}
