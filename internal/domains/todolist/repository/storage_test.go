package repository_test

import (
	"context"
	"testing"
	"todos/internal/domains/todolist/model"
	"todos/internal/domains/todolist/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStorage runs the behaviour every Storage backend shares.
func testStorage(t *testing.T, newStorage func(t *testing.T) repository.Storage) {
	t.Helper()

	ctx := context.Background()

	t.Run("empty store has no lists", func(t *testing.T) {
		store := newStorage(t)

		lists, err := store.AllLists(ctx)
		require.NoError(t, err)
		assert.Empty(t, lists)

		_, found, err := store.FindList(ctx, 1)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("lists get sequential ids in creation order", func(t *testing.T) {
		store := newStorage(t)

		require.NoError(t, store.CreateList(ctx, "Groceries"))
		require.NoError(t, store.CreateList(ctx, "Chores"))

		lists, err := store.AllLists(ctx)
		require.NoError(t, err)
		require.Len(t, lists, 2)
		assert.Equal(t, model.NewList(1, "Groceries"), lists[0])
		assert.Equal(t, model.NewList(2, "Chores"), lists[1])
	})

	t.Run("ids restart at one once every list is gone", func(t *testing.T) {
		store := newStorage(t)

		require.NoError(t, store.CreateList(ctx, "A"))
		require.NoError(t, store.CreateList(ctx, "B"))
		require.NoError(t, store.DeleteList(ctx, 1))
		require.NoError(t, store.DeleteList(ctx, 2))
		require.NoError(t, store.CreateList(ctx, "C"))

		list, found, err := store.FindList(ctx, 1)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "C", list.Name)
	})

	t.Run("the highest id is reused after deleting it", func(t *testing.T) {
		store := newStorage(t)

		require.NoError(t, store.CreateList(ctx, "A"))
		require.NoError(t, store.CreateList(ctx, "B"))
		require.NoError(t, store.DeleteList(ctx, 2))
		require.NoError(t, store.CreateList(ctx, "C"))

		list, found, err := store.FindList(ctx, 2)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "C", list.Name)
	})

	t.Run("todos are added in order and completed", func(t *testing.T) {
		store := newStorage(t)

		require.NoError(t, store.CreateList(ctx, "Groceries"))
		require.NoError(t, store.AddTodo(ctx, 1, "Milk"))
		require.NoError(t, store.AddTodo(ctx, 1, "Eggs"))
		require.NoError(t, store.UpdateCompletedStatus(ctx, 1, 1, true))

		list, found, err := store.FindList(ctx, 1)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []model.Todo{
			{ListID: 1, ID: 1, Name: "Milk", Completed: true},
			{ListID: 1, ID: 2, Name: "Eggs"},
		}, list.Todos)
		assert.Equal(t, 1, list.RemainingTodosCount())
		assert.False(t, list.Completed())

		require.NoError(t, store.UpdateCompletedStatus(ctx, 1, 1, false))

		list, _, err = store.FindList(ctx, 1)
		require.NoError(t, err)
		assert.False(t, list.Todos[0].Completed)
	})

	t.Run("todo ids are scoped to their list", func(t *testing.T) {
		store := newStorage(t)

		require.NoError(t, store.CreateList(ctx, "A"))
		require.NoError(t, store.CreateList(ctx, "B"))
		require.NoError(t, store.AddTodo(ctx, 1, "a1"))
		require.NoError(t, store.AddTodo(ctx, 2, "b1"))

		lists, err := store.AllLists(ctx)
		require.NoError(t, err)
		require.Len(t, lists, 2)
		assert.Equal(t, []model.Todo{{ListID: 1, ID: 1, Name: "a1"}}, lists[0].Todos)
		assert.Equal(t, []model.Todo{{ListID: 2, ID: 1, Name: "b1"}}, lists[1].Todos)
	})

	t.Run("mark all completed is idempotent", func(t *testing.T) {
		store := newStorage(t)

		require.NoError(t, store.CreateList(ctx, "Groceries"))
		require.NoError(t, store.AddTodo(ctx, 1, "Milk"))
		require.NoError(t, store.AddTodo(ctx, 1, "Eggs"))
		require.NoError(t, store.MarkAllCompleted(ctx, 1))
		require.NoError(t, store.MarkAllCompleted(ctx, 1))

		list, _, err := store.FindList(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, list.RemainingTodosCount())
		assert.True(t, list.Completed())
	})

	t.Run("deleting a todo keeps the others", func(t *testing.T) {
		store := newStorage(t)

		require.NoError(t, store.CreateList(ctx, "Groceries"))
		require.NoError(t, store.AddTodo(ctx, 1, "Milk"))
		require.NoError(t, store.AddTodo(ctx, 1, "Eggs"))
		require.NoError(t, store.DeleteTodoItem(ctx, 1, 1))

		list, _, err := store.FindList(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []model.Todo{{ListID: 1, ID: 2, Name: "Eggs"}}, list.Todos)
	})

	t.Run("deleting a list removes its todos", func(t *testing.T) {
		store := newStorage(t)

		require.NoError(t, store.CreateList(ctx, "Groceries"))
		require.NoError(t, store.AddTodo(ctx, 1, "Milk"))
		require.NoError(t, store.DeleteList(ctx, 1))
		require.NoError(t, store.CreateList(ctx, "Chores"))

		list, found, err := store.FindList(ctx, 1)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Chores", list.Name)
		assert.Empty(t, list.Todos)
	})

	t.Run("rename keeps todos", func(t *testing.T) {
		store := newStorage(t)

		require.NoError(t, store.CreateList(ctx, "Groceries"))
		require.NoError(t, store.AddTodo(ctx, 1, "Milk"))
		require.NoError(t, store.RenameList(ctx, 1, "Shopping"))

		list, _, err := store.FindList(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Shopping", list.Name)
		assert.Len(t, list.Todos, 1)
	})

	t.Run("missing ids are no-ops", func(t *testing.T) {
		store := newStorage(t)

		require.NoError(t, store.CreateList(ctx, "Groceries"))
		require.NoError(t, store.AddTodo(ctx, 1, "Milk"))

		assert.NoError(t, store.DeleteList(ctx, 42))
		assert.NoError(t, store.RenameList(ctx, 42, "Other"))
		assert.NoError(t, store.DeleteTodoItem(ctx, 1, 42))
		assert.NoError(t, store.UpdateCompletedStatus(ctx, 1, 42, true))
		assert.NoError(t, store.MarkAllCompleted(ctx, 42))

		lists, err := store.AllLists(ctx)
		require.NoError(t, err)
		require.Len(t, lists, 1)
		assert.Equal(t, "Groceries", lists[0].Name)
		assert.Equal(t, []model.Todo{{ListID: 1, ID: 1, Name: "Milk"}}, lists[0].Todos)
	})
}
