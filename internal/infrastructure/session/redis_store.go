package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"video-guestbook/internal/domain/entities"
	"video-guestbook/internal/domain/repositories"
)

const keyPrefix = "wizard:session:"

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) repositories.SessionStore {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Get(ctx context.Context, id string) (*entities.WizardSession, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session okunamadı: %w", err)
	}
	var session entities.WizardSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("session deserialize edilemedi: %w", err)
	}
	return &session, nil
}

func (s *redisStore) Save(ctx context.Context, session *entities.WizardSession) error {
	serialized, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyPrefix+session.ID, serialized, 0).Err()
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, keyPrefix+id).Err()
}

func (s *redisStore) List(ctx context.Context) ([]*entities.WizardSession, error) {
	var sessions []*entities.WizardSession
	iter := s.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		val, err := s.rdb.Get(ctx, iter.Val()).Result()
		if err != nil {
			continue
		}
		var session entities.WizardSession
		if err := json.Unmarshal([]byte(val), &session); err != nil {
			continue
		}
		sessions = append(sessions, &session)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
