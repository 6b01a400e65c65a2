package repo

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roomify-io/roomify-server/internal/modules/model"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestProjectRepo_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	r := NewProjectRepo(rdb, zap.NewNop())

	p := &model.Project{
		ID:          "proj-1",
		Name:        "Living room",
		SourceImage: "data:image/png;base64,aGVsbG8=",
		OwnerID:     "user-1",
		Timestamp:   1724900000000,
	}

	require.NoError(t, r.Save(ctx, "user-1", p))

	got, err := r.Get(ctx, "user-1", "proj-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.SourceImage, got.SourceImage)
	assert.Equal(t, p.Timestamp, got.Timestamp)
}

func TestProjectRepo_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	r := NewProjectRepo(rdb, zap.NewNop())

	_, err := r.Get(ctx, "user-1", "missing")
	assert.ErrorIs(t, err, model.ErrProjectNotFound)
}

func TestProjectRepo_Get_OtherUserInvisible(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	r := NewProjectRepo(rdb, zap.NewNop())

	require.NoError(t, r.Save(ctx, "user-1", &model.Project{ID: "proj-1", SourceImage: "x"}))

	_, err := r.Get(ctx, "user-2", "proj-1")
	assert.ErrorIs(t, err, model.ErrProjectNotFound)
}

func TestProjectRepo_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	r := NewProjectRepo(rdb, zap.NewNop())

	require.NoError(t, r.Save(ctx, "user-1", &model.Project{ID: "proj-1", SourceImage: "x", Name: "old"}))
	require.NoError(t, r.Save(ctx, "user-1", &model.Project{ID: "proj-1", SourceImage: "x", Name: "new"}))

	got, err := r.Get(ctx, "user-1", "proj-1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)
}

func TestProjectRepo_List(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	r := NewProjectRepo(rdb, zap.NewNop())

	require.NoError(t, r.Save(ctx, "user-1", &model.Project{ID: "a", SourceImage: "x"}))
	require.NoError(t, r.Save(ctx, "user-1", &model.Project{ID: "b", SourceImage: "y"}))
	require.NoError(t, r.Save(ctx, "user-2", &model.Project{ID: "c", SourceImage: "z"}))

	projects, err := r.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	ids := []string{projects[0].ID, projects[1].ID}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestProjectRepo_List_Empty(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	r := NewProjectRepo(rdb, zap.NewNop())

	projects, err := r.List(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectRepo_List_SkipsCorruptEntries(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	r := NewProjectRepo(rdb, zap.NewNop())

	require.NoError(t, r.Save(ctx, "user-1", &model.Project{ID: "good", SourceImage: "x"}))
	require.NoError(t, rdb.Set(ctx, projectKey("user-1", "bad"), "{not json", 0).Err())

	projects, err := r.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "good", projects[0].ID)
}
