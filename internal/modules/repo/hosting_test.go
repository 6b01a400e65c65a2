package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomify-io/roomify-server/internal/modules/model"
)

func TestHostingConfigRepo_PutAndGet(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	r := NewHostingConfigRepo(rdb)

	require.NoError(t, r.Put(ctx, "user-1", &model.HostingConfig{Subdomain: "roomify-abc123def456"}))

	got, err := r.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "roomify-abc123def456", got.Subdomain)
}

func TestHostingConfigRepo_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	r := NewHostingConfigRepo(rdb)

	_, err := r.Get(ctx, "user-1")
	assert.ErrorIs(t, err, model.ErrHostingConfigNotFound)
}

func TestHostingConfigRepo_PerUser(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	r := NewHostingConfigRepo(rdb)

	require.NoError(t, r.Put(ctx, "user-1", &model.HostingConfig{Subdomain: "roomify-one"}))

	_, err := r.Get(ctx, "user-2")
	assert.ErrorIs(t, err, model.ErrHostingConfigNotFound)
}
