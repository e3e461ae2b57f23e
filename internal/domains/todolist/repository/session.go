package repository

import (
	"context"
	"errors"
	"fmt"
	"todos/infras/otel"
	"todos/internal/domains/todolist/model"
	"todos/shared"
	"todos/shared/cache"
	"todos/shared/constant"
	"todos/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheKeySession = "session"

type sessionOpener struct {
	cache      cache.RedisCache
	ttlSeconds int
	otel       otel.Otel
}

// NewSessionOpener returns an Opener that restores the caller's lists from their
// session on every request. Sessions are kept in redis and expire after ttlSeconds.
func NewSessionOpener(cache cache.RedisCache, ttlSeconds int, otel otel.Otel) Opener {
	return &sessionOpener{
		cache:      cache,
		ttlSeconds: ttlSeconds,
		otel:       otel,
	}
}

// Open implements Opener. The session id is read from the request context.
func (o *sessionOpener) Open(ctx context.Context) (Storage, error) {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Open")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)
	if sessionID == "" {
		return nil, failure.MissingSession
	}

	key := shared.BuildCacheKey(cacheKeySession, sessionID)

	var lists []model.List

	err := o.cache.Get(ctx, key, &lists)
	if err != nil && !errors.Is(err, cache.Nil) {
		scope.TraceError(err)
		log.Error().Err(err).Str("session", sessionID).Msg("failed to load session")

		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &sessionStorage{
		Memory:     NewMemory(lists),
		cache:      o.cache,
		key:        key,
		ttlSeconds: o.ttlSeconds,
	}, nil
}

// sessionStorage is a Memory that writes itself back to the session after every mutation.
type sessionStorage struct {
	*Memory
	cache      cache.RedisCache
	key        string
	ttlSeconds int
}

// save writes the lists back to the session. A session without lists is dropped from the
// cache; Open treats a missing key as an empty session.
func (s *sessionStorage) save(ctx context.Context) error {
	lists := s.Memory.Lists()
	if len(lists) == 0 {
		if err := s.cache.Delete(ctx, s.key); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}

		return nil
	}

	if err := s.cache.Save(ctx, s.key, lists, s.ttlSeconds); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *sessionStorage) CreateList(ctx context.Context, name string) error {
	if err := s.Memory.CreateList(ctx, name); err != nil {
		return err
	}

	return s.save(ctx)
}

func (s *sessionStorage) DeleteList(ctx context.Context, id int) error {
	if err := s.Memory.DeleteList(ctx, id); err != nil {
		return err
	}

	return s.save(ctx)
}

func (s *sessionStorage) RenameList(ctx context.Context, id int, name string) error {
	if err := s.Memory.RenameList(ctx, id, name); err != nil {
		return err
	}

	return s.save(ctx)
}

func (s *sessionStorage) AddTodo(ctx context.Context, listID int, name string) error {
	if err := s.Memory.AddTodo(ctx, listID, name); err != nil {
		return err
	}

	return s.save(ctx)
}

func (s *sessionStorage) DeleteTodoItem(ctx context.Context, listID, todoID int) error {
	if err := s.Memory.DeleteTodoItem(ctx, listID, todoID); err != nil {
		return err
	}

	return s.save(ctx)
}

func (s *sessionStorage) UpdateCompletedStatus(ctx context.Context, listID, todoID int, status bool) error {
	if err := s.Memory.UpdateCompletedStatus(ctx, listID, todoID, status); err != nil {
		return err
	}

	return s.save(ctx)
}

func (s *sessionStorage) MarkAllCompleted(ctx context.Context, listID int) error {
	if err := s.Memory.MarkAllCompleted(ctx, listID); err != nil {
		return err
	}

	return s.save(ctx)
}
