package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"carepoint-backend/internal/domain/entity"
	domainRepo "carepoint-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// cartRepository stores each user's cart as a Redis hash: key cart:<userId>,
// one field per product id, value the JSON-encoded cart item.
type cartRepository struct {
	redisClient *redis.Client
}

func NewCartRepository(redisClient *redis.Client) domainRepo.CartRepository {
	return &cartRepository{redisClient: redisClient}
}

func cartKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s", cartKeyPrefix, userID.String())
}

func (r *cartRepository) GetItems(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	fields, err := r.redisClient.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]entity.CartItem, 0, len(fields))
	for _, raw := range fields {
		var item entity.CartItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("corrupt cart item for user %s: %w", userID, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *cartRepository) GetItem(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error) {
	raw, err := r.redisClient.HGet(ctx, cartKey(userID), productID.String()).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var item entity.CartItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, fmt.Errorf("corrupt cart item for user %s: %w", userID, err)
	}
	return &item, nil
}

func (r *cartRepository) SaveItem(ctx context.Context, userID uuid.UUID, item *entity.CartItem) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return r.redisClient.HSet(ctx, cartKey(userID), item.ProductID.String(), raw).Err()
}

func (r *cartRepository) DeleteItem(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	removed, err := r.redisClient.HDel(ctx, cartKey(userID), productID.String()).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

func (r *cartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.redisClient.Del(ctx, cartKey(userID)).Err()
}
