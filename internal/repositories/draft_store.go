package repositories

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"soporte-tecnico/internal/entities"
	apperrors "soporte-tecnico/pkg/errors"
)

// DraftStoreInterface хранит сессии режима редактирования между запросами.
type DraftStoreInterface interface {
	Save(ctx context.Context, session *entities.EditSession) error
	Get(ctx context.Context, id string) (*entities.EditSession, error)
	Delete(ctx context.Context, id string) error
}

const draftKeyPrefix = "edit_session:"

func draftKey(id string) string { return draftKeyPrefix + id }

// MemoryDraftStore - хранилище по умолчанию, записи истекают через ttl.
type MemoryDraftStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewMemoryDraftStore(ttl time.Duration) DraftStoreInterface {
	return &MemoryDraftStore{cache: cache.New(ttl, 2*ttl), ttl: ttl}
}

func (s *MemoryDraftStore) Save(ctx context.Context, session *entities.EditSession) error {
	s.cache.Set(draftKey(session.ID), cloneSession(session), s.ttl)
	return nil
}

func (s *MemoryDraftStore) Get(ctx context.Context, id string) (*entities.EditSession, error) {
	v, ok := s.cache.Get(draftKey(id))
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return cloneSession(v.(*entities.EditSession)), nil
}

func (s *MemoryDraftStore) Delete(ctx context.Context, id string) error {
	s.cache.Delete(draftKey(id))
	return nil
}

// cloneSession не даёт вызывающему менять сохранённую сессию через указатель Draft.
func cloneSession(s *entities.EditSession) *entities.EditSession {
	out := *s
	if s.Draft != nil {
		draft := *s.Draft
		out.Draft = &draft
	}
	return &out
}
