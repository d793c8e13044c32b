package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"soporte-tecnico/internal/entities"
	apperrors "soporte-tecnico/pkg/errors"
)

// RedisDraftStore - сессии редактирования в Redis, JSON с TTL.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) DraftStoreInterface {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func (r *RedisDraftStore) Save(ctx context.Context, session *entities.EditSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("no se pudo serializar la sesión %s: %w", session.ID, err)
	}
	return r.client.Set(ctx, draftKey(session.ID), payload, r.ttl).Err()
}

func (r *RedisDraftStore) Get(ctx context.Context, id string) (*entities.EditSession, error) {
	payload, err := r.client.Get(ctx, draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error de lectura de la sesión %s: %w", id, err)
	}
	var session entities.EditSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("sesión %s dañada: %w", id, err)
	}
	return &session, nil
}

func (r *RedisDraftStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, draftKey(id)).Err()
}
