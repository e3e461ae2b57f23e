package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"todos/infras/otel/mocks"
	todoListMocks "todos/internal/domains/todolist/mocks"
	"todos/internal/domains/todolist/model"
	"todos/internal/domains/todolist/model/dto"
	"todos/internal/domains/todolist/repository"
	"todos/internal/domains/todolist/service"
	"todos/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockedService(t *testing.T) (service.TodoList, *todoListMocks.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStorage := todoListMocks.NewMockStorage(ctrl)
	mockOpener := todoListMocks.NewMockOpener(ctrl)
	mockOpener.EXPECT().Open(gomock.Any()).Return(mockStorage, nil).AnyTimes()

	return service.New(mockOpener, mocks.NewOtel()), mockStorage
}

func newMemoryService() service.TodoList {
	return service.New(repository.NewStaticOpener(repository.NewMemory(nil)), mocks.NewOtel())
}

func boolPtr(value bool) *bool {
	return &value
}

func TestTodoListService_Create(t *testing.T) {
	svc, mockStorage := newMockedService(t)

	existing := []model.List{model.NewList(1, "Groceries")}

	tests := []struct {
		name      string
		req       dto.ListNameRequest
		setupMock func()
		wantErr   string
		wantCode  int
	}{
		{
			name: "creates trimmed name",
			req:  dto.ListNameRequest{Name: "  Chores "},
			setupMock: func() {
				mockStorage.EXPECT().AllLists(gomock.Any()).Return(existing, nil)
				mockStorage.EXPECT().CreateList(gomock.Any(), "Chores").Return(nil)
			},
		},
		{
			name: "duplicate name does not touch storage",
			req:  dto.ListNameRequest{Name: "Groceries"},
			setupMock: func() {
				mockStorage.EXPECT().AllLists(gomock.Any()).Return(existing, nil)
			},
			wantErr:  "List name must be unique.",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "storage conflict is passed through",
			req:  dto.ListNameRequest{Name: "Chores"},
			setupMock: func() {
				mockStorage.EXPECT().AllLists(gomock.Any()).Return(existing, nil)
				mockStorage.EXPECT().CreateList(gomock.Any(), "Chores").Return(failure.Conflict("List name must be unique."))
			},
			wantErr:  "List name must be unique.",
			wantCode: http.StatusConflict,
		},
		{
			name: "storage failure",
			req:  dto.ListNameRequest{Name: "Chores"},
			setupMock: func() {
				mockStorage.EXPECT().AllLists(gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			wantErr:  "failed to get lists: connection reset",
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestTodoListService_MissingList(t *testing.T) {
	svc, mockStorage := newMockedService(t)
	ctx := context.Background()

	mockStorage.EXPECT().FindList(gomock.Any(), 9).Return(model.List{}, false, nil).Times(7)

	_, err := svc.Get(ctx, 9)
	assert.ErrorIs(t, err, failure.ListNotFound)

	assert.ErrorIs(t, svc.Rename(ctx, 9, dto.ListNameRequest{Name: "Other"}), failure.ListNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 9), failure.ListNotFound)
	assert.ErrorIs(t, svc.AddTodo(ctx, 9, dto.AddTodoRequest{Name: "Milk"}), failure.ListNotFound)
	assert.ErrorIs(t, svc.DeleteTodo(ctx, 9, 1), failure.ListNotFound)
	assert.ErrorIs(t, svc.UpdateTodoStatus(ctx, 9, 1, dto.UpdateTodoStatusRequest{Completed: boolPtr(true)}), failure.ListNotFound)
	assert.ErrorIs(t, svc.CompleteAll(ctx, 9), failure.ListNotFound)
}

func TestTodoListService_UpdateTodoStatus(t *testing.T) {
	svc, mockStorage := newMockedService(t)
	ctx := context.Background()

	list := model.List{ID: 1, Name: "Groceries", Todos: []model.Todo{{ListID: 1, ID: 1, Name: "Milk"}}}

	t.Run("updates existing todo", func(t *testing.T) {
		mockStorage.EXPECT().FindList(gomock.Any(), 1).Return(list, true, nil)
		mockStorage.EXPECT().UpdateCompletedStatus(gomock.Any(), 1, 1, true).Return(nil)

		assert.NoError(t, svc.UpdateTodoStatus(ctx, 1, 1, dto.UpdateTodoStatusRequest{Completed: boolPtr(true)}))
	})

	t.Run("missing todo", func(t *testing.T) {
		mockStorage.EXPECT().FindList(gomock.Any(), 1).Return(list, true, nil)

		err := svc.UpdateTodoStatus(ctx, 1, 2, dto.UpdateTodoStatusRequest{Completed: boolPtr(true)})
		assert.ErrorIs(t, err, failure.TodoNotFound)
	})

	t.Run("missing status", func(t *testing.T) {
		err := svc.UpdateTodoStatus(ctx, 1, 1, dto.UpdateTodoStatusRequest{})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestTodoListService_OpenFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOpener := todoListMocks.NewMockOpener(ctrl)
	svc := service.New(mockOpener, mocks.NewOtel())

	mockOpener.EXPECT().Open(gomock.Any()).Return(nil, failure.MissingSession)

	_, err := svc.GetAll(context.Background())
	assert.ErrorIs(t, err, failure.MissingSession)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	mockOpener.EXPECT().Open(gomock.Any()).Return(nil, errors.New("redis down"))

	err = svc.Delete(context.Background(), 1)
	assert.EqualError(t, err, "failed to open storage: redis down")
}

func TestTodoListService_DuplicateListScenario(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, dto.ListNameRequest{Name: "A"}))

	err := svc.Create(ctx, dto.ListNameRequest{Name: "A"})
	assert.EqualError(t, err, "List name must be unique.")

	res, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, res.Lists, 1)
}

func TestTodoListService_GroceriesScenario(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, dto.ListNameRequest{Name: "Groceries"}))
	require.NoError(t, svc.Create(ctx, dto.ListNameRequest{Name: "Chores"}))
	require.NoError(t, svc.AddTodo(ctx, 1, dto.AddTodoRequest{Name: "Milk"}))
	require.NoError(t, svc.AddTodo(ctx, 1, dto.AddTodoRequest{Name: " Eggs "}))
	require.NoError(t, svc.UpdateTodoStatus(ctx, 1, 1, dto.UpdateTodoStatusRequest{Completed: boolPtr(true)}))

	list, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, list.TotalTodosCount)
	assert.Equal(t, 1, list.RemainingTodosCount)
	assert.False(t, list.Completed)
	assert.Equal(t, []dto.TodoResponse{
		{ID: 2, Name: "Eggs"},
		{ID: 1, Name: "Milk", Completed: true},
	}, list.Todos)

	err = svc.AddTodo(ctx, 1, dto.AddTodoRequest{Name: "   "})
	assert.EqualError(t, err, "Todo name must be 1 - 100 characters.")

	require.NoError(t, svc.CompleteAll(ctx, 1))
	require.NoError(t, svc.CompleteAll(ctx, 1))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all.Lists, 2)
	assert.Equal(t, "Chores", all.Lists[0].Name)
	assert.Equal(t, "Groceries", all.Lists[1].Name)
	assert.True(t, all.Lists[1].Completed)

	require.NoError(t, svc.DeleteTodo(ctx, 1, 1))
	require.NoError(t, svc.DeleteTodo(ctx, 1, 1))

	require.NoError(t, svc.Rename(ctx, 1, dto.ListNameRequest{Name: "Shopping"}))
	assert.EqualError(t, svc.Rename(ctx, 1, dto.ListNameRequest{Name: "Chores"}), "List name must be unique.")

	require.NoError(t, svc.Delete(ctx, 1))

	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, failure.ListNotFound)
}
