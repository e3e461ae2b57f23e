package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"todos/config"
	"todos/infras/otel"
	"todos/infras/postgres"
	"todos/internal/domains/todolist/model"
	"todos/shared/cache"
	"todos/shared/constant"

	"github.com/rs/zerolog/log"
)

// Storage is the list/todo contract shared by every backend.
//
// Ids are assigned as max(existing)+1, or 1 when nothing exists yet. An id can
// therefore come back after the entity holding it is deleted; in particular the
// first list created after deleting every list gets id 1 again.
//
// Operations addressing a list or todo that does not exist are no-ops. Errors
// are reserved for the backend itself failing.
type Storage interface {
	// FindList reports false when no list has the given id.
	FindList(ctx context.Context, id int) (model.List, bool, error)
	AllLists(ctx context.Context) ([]model.List, error)
	CreateList(ctx context.Context, name string) error
	// DeleteList removes the list's todos before the list itself.
	DeleteList(ctx context.Context, id int) error
	RenameList(ctx context.Context, id int, name string) error
	AddTodo(ctx context.Context, listID int, name string) error
	DeleteTodoItem(ctx context.Context, listID, todoID int) error
	UpdateCompletedStatus(ctx context.Context, listID, todoID int, status bool) error
	MarkAllCompleted(ctx context.Context, listID int) error
}

// Opener hands out the Storage to use for the current request.
type Opener interface {
	Open(ctx context.Context) (Storage, error)
}

type staticOpener struct {
	storage Storage
}

// Open implements Opener.
func (o *staticOpener) Open(_ context.Context) (Storage, error) {
	return o.storage, nil
}

// NewStaticOpener returns an Opener that always hands out the same Storage.
func NewStaticOpener(storage Storage) Opener {
	return &staticOpener{storage: storage}
}

// NewOpener selects the backend configured in APP_STORAGE. The returned cleanup
// releases the database connection when the database backend is in use.
func NewOpener(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) (Opener, func()) {
	switch cfg.App.Storage {
	case constant.StorageBackendDatabase:
		log.Info().Str("storage", cfg.App.Storage).Msg("Using database storage")

		db := postgres.New(cfg)
		if err := EnsureSchema(context.Background(), db); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare database schema")
		}

		cleanup := func() {
			if err := db.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close database connection")
			}
		}

		return NewStaticOpener(NewDatabase(db, otel)), cleanup
	case constant.StorageBackendSession, "":
		log.Info().Str("storage", constant.StorageBackendSession).Msg("Using session storage")

		return NewSessionOpener(cache, cfg.App.Session.TTLSeconds, otel), func() {}
	default:
		log.Fatal().Str("storage", cfg.App.Storage).Msg("Unknown storage backend")

		return nil, func() {}
	}
}
