package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	apperrors "gearguard/pkg/errors"
)

const (
	refreshTokenPrefix = "refresh_token:"
	analyticsKey       = "analytics:snapshot"
)

type CacheRepositoryInterface interface {
	SetRefreshToken(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)
	DeleteRefreshToken(ctx context.Context, userID uuid.UUID) error
	GetAnalytics(ctx context.Context, dest any) error
	SetAnalytics(ctx context.Context, value any, ttl time.Duration) error
	InvalidateAnalytics(ctx context.Context) error
}

type CacheRepository struct {
	client *redis.Client
}

func NewCacheRepository(client *redis.Client) CacheRepositoryInterface {
	return &CacheRepository{client: client}
}

func (r *CacheRepository) SetRefreshToken(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	return r.client.Set(ctx, refreshTokenPrefix+userID.String(), token, ttl).Err()
}

func (r *CacheRepository) GetRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := r.client.Get(ctx, refreshTokenPrefix+userID.String()).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.ErrInvalidToken
	}
	return token, err
}

func (r *CacheRepository) DeleteRefreshToken(ctx context.Context, userID uuid.UUID) error {
	return r.client.Del(ctx, refreshTokenPrefix+userID.String()).Err()
}

func (r *CacheRepository) GetAnalytics(ctx context.Context, dest any) error {
	data, err := r.client.Get(ctx, analyticsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (r *CacheRepository) SetAnalytics(ctx context.Context, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, analyticsKey, data, ttl).Err()
}

func (r *CacheRepository) InvalidateAnalytics(ctx context.Context) error {
	return r.client.Del(ctx, analyticsKey).Err()
}
