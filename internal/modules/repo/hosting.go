package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/roomify-io/roomify-server/internal/modules/model"
)

const hostingConfigKey = "roomify_hosting_config"

func hostingKey(userID string) string {
	return userKeyPrefix + userID + ":" + hostingConfigKey
}

type HostingConfigRepo interface {
	Get(ctx context.Context, userID string) (*model.HostingConfig, error)
	Put(ctx context.Context, userID string, cfg *model.HostingConfig) error
}

type hostingConfigRepo struct {
	rdb *redis.Client
}

func NewHostingConfigRepo(rdb *redis.Client) HostingConfigRepo {
	return &hostingConfigRepo{rdb: rdb}
}

func (r *hostingConfigRepo) Get(ctx context.Context, userID string) (*model.HostingConfig, error) {
	raw, err := r.rdb.Get(ctx, hostingKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrHostingConfigNotFound
		}
		return nil, fmt.Errorf("get hosting config: %w", err)
	}

	var cfg model.HostingConfig
	if err := sonic.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal hosting config: %w", err)
	}
	return &cfg, nil
}

func (r *hostingConfigRepo) Put(ctx context.Context, userID string, cfg *model.HostingConfig) error {
	raw, err := sonic.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal hosting config: %w", err)
	}
	if err := r.rdb.Set(ctx, hostingKey(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("set hosting config: %w", err)
	}
	return nil
}
