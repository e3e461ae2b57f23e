package service

import (
	"context"
	"errors"
	"fmt"
	"todos/infras/otel"
	"todos/internal/domains/todolist/model"
	"todos/internal/domains/todolist/model/dto"
	"todos/internal/domains/todolist/repository"
	"todos/shared/constant"
	"todos/shared/failure"

	"github.com/rs/zerolog/log"
)

type TodoList interface {
	GetAll(ctx context.Context) (dto.GetListsResponse, error)
	Get(ctx context.Context, id int) (dto.ListResponse, error)
	Create(ctx context.Context, req dto.ListNameRequest) error
	Rename(ctx context.Context, id int, req dto.ListNameRequest) error
	Delete(ctx context.Context, id int) error
	AddTodo(ctx context.Context, listID int, req dto.AddTodoRequest) error
	DeleteTodo(ctx context.Context, listID, todoID int) error
	UpdateTodoStatus(ctx context.Context, listID, todoID int, req dto.UpdateTodoStatusRequest) error
	CompleteAll(ctx context.Context, listID int) error
}

type serviceImpl struct {
	opener repository.Opener
	otel   otel.Otel
}

func New(opener repository.Opener, otel otel.Otel) TodoList {
	return &serviceImpl{
		opener: opener,
		otel:   otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetListsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	storage, err := s.open(ctx)
	if err != nil {
		return res, err
	}

	lists, err := storage.AllLists(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get lists")

		return res, fmt.Errorf("failed to get lists: %w", err)
	}

	res.FromModels(lists)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.ListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	storage, err := s.open(ctx)
	if err != nil {
		return res, err
	}

	list, err := s.findList(ctx, storage, id)
	if err != nil {
		return res, err
	}

	res.FromModel(list)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.ListNameRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	storage, err := s.open(ctx)
	if err != nil {
		return err
	}

	lists, err := storage.AllLists(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get lists")

		return fmt.Errorf("failed to get lists: %w", err)
	}

	if err = ListNameError(req.Name, lists); err != nil {
		return err
	}

	if err = storage.CreateList(ctx, req.Trimmed()); err != nil {
		log.Error().Err(err).Msg("failed to create list")

		return passFailure(err, "failed to create list")
	}

	return nil
}

func (s *serviceImpl) Rename(ctx context.Context, id int, req dto.ListNameRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rename")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	storage, err := s.open(ctx)
	if err != nil {
		return err
	}

	if _, err = s.findList(ctx, storage, id); err != nil {
		return err
	}

	lists, err := storage.AllLists(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get lists")

		return fmt.Errorf("failed to get lists: %w", err)
	}

	if err = ListNameError(req.Name, lists); err != nil {
		return err
	}

	if err = storage.RenameList(ctx, id, req.Trimmed()); err != nil {
		log.Error().Err(err).Int("list", id).Msg("failed to rename list")

		return passFailure(err, "failed to rename list")
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	storage, err := s.open(ctx)
	if err != nil {
		return err
	}

	if _, err = s.findList(ctx, storage, id); err != nil {
		return err
	}

	if err = storage.DeleteList(ctx, id); err != nil {
		log.Error().Err(err).Int("list", id).Msg("failed to delete list")

		return fmt.Errorf("failed to delete list: %w", err)
	}

	return nil
}

func (s *serviceImpl) AddTodo(ctx context.Context, listID int, req dto.AddTodoRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddTodo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	storage, err := s.open(ctx)
	if err != nil {
		return err
	}

	if _, err = s.findList(ctx, storage, listID); err != nil {
		return err
	}

	if err = TodoNameError(req.Name); err != nil {
		return err
	}

	if err = storage.AddTodo(ctx, listID, req.Trimmed()); err != nil {
		log.Error().Err(err).Int("list", listID).Msg("failed to add todo")

		return fmt.Errorf("failed to add todo: %w", err)
	}

	return nil
}

// DeleteTodo succeeds when the todo is already gone.
func (s *serviceImpl) DeleteTodo(ctx context.Context, listID, todoID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteTodo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	storage, err := s.open(ctx)
	if err != nil {
		return err
	}

	if _, err = s.findList(ctx, storage, listID); err != nil {
		return err
	}

	if err = storage.DeleteTodoItem(ctx, listID, todoID); err != nil {
		log.Error().Err(err).Int("list", listID).Int("todo", todoID).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}

func (s *serviceImpl) UpdateTodoStatus(ctx context.Context, listID, todoID int, req dto.UpdateTodoStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTodoStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Completed == nil {
		return failure.BadRequestFromString("completed is required") //nolint:wrapcheck
	}

	storage, err := s.open(ctx)
	if err != nil {
		return err
	}

	list, err := s.findList(ctx, storage, listID)
	if err != nil {
		return err
	}

	if _, found := list.FindTodo(todoID); !found {
		return failure.TodoNotFound
	}

	if err = storage.UpdateCompletedStatus(ctx, listID, todoID, *req.Completed); err != nil {
		log.Error().Err(err).Int("list", listID).Int("todo", todoID).Msg("failed to update todo")

		return fmt.Errorf("failed to update todo: %w", err)
	}

	return nil
}

func (s *serviceImpl) CompleteAll(ctx context.Context, listID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	storage, err := s.open(ctx)
	if err != nil {
		return err
	}

	if _, err = s.findList(ctx, storage, listID); err != nil {
		return err
	}

	if err = storage.MarkAllCompleted(ctx, listID); err != nil {
		log.Error().Err(err).Int("list", listID).Msg("failed to complete todos")

		return fmt.Errorf("failed to complete todos: %w", err)
	}

	return nil
}

func (s *serviceImpl) open(ctx context.Context) (repository.Storage, error) {
	storage, err := s.opener.Open(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to open storage")

		return nil, passFailure(err, "failed to open storage")
	}

	return storage, nil
}

// findList loads the list or reports failure.ListNotFound.
func (s *serviceImpl) findList(ctx context.Context, storage repository.Storage, id int) (model.List, error) {
	list, found, err := storage.FindList(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("list", id).Msg("failed to find list")

		return model.List{}, fmt.Errorf("failed to find list: %w", err)
	}

	if !found {
		return model.List{}, failure.ListNotFound
	}

	return list, nil
}

// passFailure keeps a failure's message intact for the client and wraps anything else.
func passFailure(err error, message string) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return fail
	}

	return fmt.Errorf("%s: %w", message, err)
}
