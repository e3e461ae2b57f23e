package repository

import (
	"context"
	"errors"
	"fmt"
	"todos/infras/otel"
	"todos/infras/postgres"
	"todos/internal/domains/todolist/model"
	"todos/shared/constant"
	gDto "todos/shared/dto"
	"todos/shared/failure"
	"todos/shared/logger"
	gRepo "todos/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Inserts compute the next id in the same statement. They are written with "?" placeholders
// and rebound to the driver's style before execution. User input is only ever a bound parameter.
const (
	queryCreateList = `INSERT INTO lists (id, name)
		SELECT COALESCE(MAX(id), 0) + 1, CAST(? AS text) FROM lists`

	queryAddTodo = `INSERT INTO todos (list_id, id, name)
		SELECT l.id, COALESCE((SELECT MAX(t.id) FROM todos t WHERE t.list_id = l.id), 0) + 1, CAST(? AS text)
		FROM lists l WHERE l.id = ?`
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS lists (
		id integer PRIMARY KEY,
		name text NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS todos (
		list_id integer NOT NULL REFERENCES lists (id),
		id integer NOT NULL,
		name text NOT NULL,
		completed boolean NOT NULL DEFAULT false,
		PRIMARY KEY (list_id, id)
	)`,
}

const messageListNameTaken = "List name must be unique."

// EnsureSchema creates the lists and todos tables when they are missing.
func EnsureSchema(ctx context.Context, db *postgres.Connection) error {
	for _, statement := range schema {
		logger.Statement(statement)

		if _, err := db.DB.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

type database struct {
	lists gRepo.Repository[model.List]
	todos gRepo.Repository[model.Todo]
	db    *postgres.Connection
	otel  otel.Otel
}

// NewDatabase returns the relational Storage backed by the lists and todos tables.
func NewDatabase(db *postgres.Connection, otel otel.Otel) Storage {
	return &database{
		lists: gRepo.NewRepository[model.List](model.EntityList, model.TableLists, db, otel),
		todos: gRepo.NewRepository[model.Todo](model.EntityTodo, model.TableTodos, db, otel),
		db:    db,
		otel:  otel,
	}
}

func listByID(id int) gDto.FilterGroup {
	return gDto.All(gDto.Equal(model.FieldID, id))
}

func todosOfList(listID int) gDto.FilterGroup {
	return gDto.All(gDto.Equal(model.FieldListID, listID))
}

func todoByID(listID, todoID int) gDto.FilterGroup {
	return gDto.All(gDto.Equal(model.FieldListID, listID), gDto.Equal(model.FieldID, todoID))
}

func (r *database) FindList(ctx context.Context, id int) (model.List, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".database.FindList")
	defer scope.End()

	list, found, err := r.lists.Get(ctx, listByID(id))
	if err != nil {
		scope.TraceError(err)

		return model.List{}, false, fmt.Errorf("failed to find list: %w", err)
	}

	if !found {
		return model.List{}, false, nil
	}

	list.Todos, err = r.todos.GetAll(ctx, todosOfList(id), model.FieldID)
	if err != nil {
		scope.TraceError(err)

		return model.List{}, false, fmt.Errorf("failed to get todos of list: %w", err)
	}

	return list, true, nil
}

func (r *database) AllLists(ctx context.Context) ([]model.List, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".database.AllLists")
	defer scope.End()

	lists, err := r.lists.GetAll(ctx, gDto.All(), model.FieldID)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get lists: %w", err)
	}

	todos, err := r.todos.GetAll(ctx, gDto.All(), model.FieldListID, model.FieldID)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	byList := make(map[int][]model.Todo, len(lists))
	for _, todo := range todos {
		byList[todo.ListID] = append(byList[todo.ListID], todo)
	}

	for i := range lists {
		lists[i].Todos = byList[lists[i].ID]
		if lists[i].Todos == nil {
			lists[i].Todos = []model.Todo{}
		}
	}

	return lists, nil
}

func (r *database) CreateList(ctx context.Context, name string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".database.CreateList")
	defer scope.End()

	if err := r.exec(ctx, queryCreateList, name); err != nil {
		scope.TraceError(err)

		return uniqueName(fmt.Errorf("failed to create list: %w", err))
	}

	return nil
}

func (r *database) DeleteList(ctx context.Context, id int) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".database.DeleteList")
	defer scope.End()

	err := r.db.WithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.todos.DeleteTx(ctx, tx, todosOfList(id)); err != nil {
			return err //nolint:wrapcheck
		}

		return r.lists.DeleteTx(ctx, tx, listByID(id)) //nolint:wrapcheck
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to delete list: %w", err)
	}

	return nil
}

func (r *database) RenameList(ctx context.Context, id int, name string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".database.RenameList")
	defer scope.End()

	if err := r.lists.Update(ctx, map[string]any{model.FieldName: name}, listByID(id)); err != nil {
		scope.TraceError(err)

		return uniqueName(fmt.Errorf("failed to rename list: %w", err))
	}

	return nil
}

func (r *database) AddTodo(ctx context.Context, listID int, name string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".database.AddTodo")
	defer scope.End()

	if err := r.exec(ctx, queryAddTodo, name, listID); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to add todo: %w", err)
	}

	return nil
}

func (r *database) DeleteTodoItem(ctx context.Context, listID, todoID int) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".database.DeleteTodoItem")
	defer scope.End()

	if err := r.todos.Delete(ctx, todoByID(listID, todoID)); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}

func (r *database) UpdateCompletedStatus(ctx context.Context, listID, todoID int, status bool) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".database.UpdateCompletedStatus")
	defer scope.End()

	if err := r.todos.Update(ctx, map[string]any{model.FieldCompleted: status}, todoByID(listID, todoID)); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to update todo status: %w", err)
	}

	return nil
}

func (r *database) MarkAllCompleted(ctx context.Context, listID int) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".database.MarkAllCompleted")
	defer scope.End()

	if err := r.todos.Update(ctx, map[string]any{model.FieldCompleted: true}, todosOfList(listID)); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to complete todos: %w", err)
	}

	return nil
}

// exec runs one of the insert statements.
func (r *database) exec(ctx context.Context, query string, args ...any) error {
	query = r.db.DB.Rebind(query)
	logger.Statement(query, args...)

	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".database.statement")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := r.db.DB.ExecContext(ctx, query, args...)
	scope.TraceIfError(err)

	return err //nolint:wrapcheck
}

// uniqueName turns a unique violation on lists.name into a conflict failure.
func uniqueName(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		return failure.Conflict(messageListNameTaken)
	}

	return err
}
