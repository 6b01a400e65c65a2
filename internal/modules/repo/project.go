package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/roomify-io/roomify-server/internal/modules/model"
)

// Keys are namespaced per user so the flat KV store behaves like the
// per-user buckets the client was written against. The roomify_project_
// segment is part of the established key layout and must not change.
const (
	userKeyPrefix    = "user:"
	projectKeyPrefix = "roomify_project_"
)

func projectKey(userID, projectID string) string {
	return userKeyPrefix + userID + ":" + projectKeyPrefix + projectID
}

type ProjectRepo interface {
	Save(ctx context.Context, userID string, p *model.Project) error
	Get(ctx context.Context, userID, projectID string) (*model.Project, error)
	List(ctx context.Context, userID string) ([]*model.Project, error)
}

type projectRepo struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewProjectRepo(rdb *redis.Client, log *zap.Logger) ProjectRepo {
	return &projectRepo{rdb: rdb, log: log}
}

func (r *projectRepo) Save(ctx context.Context, userID string, p *model.Project) error {
	raw, err := sonic.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	// Last write wins; there is no version check on purpose.
	if err := r.rdb.Set(ctx, projectKey(userID, p.ID), raw, 0).Err(); err != nil {
		return fmt.Errorf("set project: %w", err)
	}
	return nil
}

func (r *projectRepo) Get(ctx context.Context, userID, projectID string) (*model.Project, error) {
	raw, err := r.rdb.Get(ctx, projectKey(userID, projectID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	var p model.Project
	if err := sonic.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("unmarshal project: %w", err)
	}
	return &p, nil
}

func (r *projectRepo) List(ctx context.Context, userID string) ([]*model.Project, error) {
	prefix := userKeyPrefix + userID + ":" + projectKeyPrefix

	var keys []string
	iter := r.rdb.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan projects: %w", err)
	}

	projects := make([]*model.Project, 0, len(keys))
	if len(keys) == 0 {
		return projects, nil
	}

	values, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("mget projects: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue // key deleted between scan and mget
		}
		var p model.Project
		if err := sonic.Unmarshal([]byte(raw), &p); err != nil {
			// corrupt entries are skipped, not fatal for the listing
			r.log.Warn("skipping unparseable project entry",
				zap.String("key", keys[i]),
				zap.Error(err))
			continue
		}
		projects = append(projects, &p)
	}

	return projects, nil
}
