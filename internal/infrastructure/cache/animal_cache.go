package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"amigos-con-cola/internal/domain/entity"
	domainRepo "amigos-con-cola/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const animalKeyPrefix = "animal:"

func animalKey(id int) string {
	return fmt.Sprintf("%s%d", animalKeyPrefix, id)
}

type redisAnimalCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAnimalCache stores animals as JSON under "animal:<id>".
func NewRedisAnimalCache(client *redis.Client, ttl time.Duration) domainRepo.AnimalCache {
	return &redisAnimalCache{client: client, ttl: ttl}
}

func (c *redisAnimalCache) Get(ctx context.Context, id int) (*entity.Animal, error) {
	data, err := c.client.Get(ctx, animalKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return decodeAnimal(data)
}

func (c *redisAnimalCache) Set(ctx context.Context, animal *entity.Animal) error {
	data, err := json.Marshal(animal)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, animalKey(animal.ID), data, c.ttl).Err()
}

func decodeAnimal(data []byte) (*entity.Animal, error) {
	var animal entity.Animal
	if err := json.Unmarshal(data, &animal); err != nil {
		return nil, fmt.Errorf("decode cached animal: %w", err)
	}
	return &animal, nil
}

type noopAnimalCache struct{}

// NewNoopAnimalCache never stores anything; every Get is a miss.
func NewNoopAnimalCache() domainRepo.AnimalCache {
	return noopAnimalCache{}
}

func (noopAnimalCache) Get(context.Context, int) (*entity.Animal, error) { return nil, nil }
func (noopAnimalCache) Set(context.Context, *entity.Animal) error        { return nil }
