package dto

import (
	"strings"
	"todos/internal/domains/todolist/model"
)

type ListNameRequest struct {
	Name string `json:"name"`
}

// Trimmed returns the name without surrounding whitespace.
func (r ListNameRequest) Trimmed() string {
	return strings.TrimSpace(r.Name)
}

type AddTodoRequest struct {
	Name string `json:"name"`
}

func (r AddTodoRequest) Trimmed() string {
	return strings.TrimSpace(r.Name)
}

type UpdateTodoStatusRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

type TodoResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

func (r *TodoResponse) FromModel(todo model.Todo) {
	r.ID = todo.ID
	r.Name = todo.Name
	r.Completed = todo.Completed
}

type ListResponse struct {
	ID                  int            `json:"id"`
	Name                string         `json:"name"`
	Completed           bool           `json:"completed"`
	TotalTodosCount     int            `json:"total_todos_count"`
	RemainingTodosCount int            `json:"remaining_todos_count"`
	Todos               []TodoResponse `json:"todos"`
}

// FromModel fills the response with the list's todos, unfinished first.
func (r *ListResponse) FromModel(list model.List) {
	r.ID = list.ID
	r.Name = list.Name
	r.Completed = list.Completed()
	r.TotalTodosCount = list.TotalTodosCount()
	r.RemainingTodosCount = list.RemainingTodosCount()

	todos := SortTodos(list.Todos)

	r.Todos = make([]TodoResponse, len(todos))
	for i, todo := range todos {
		r.Todos[i].FromModel(todo)
	}
}

type GetListsResponse struct {
	Lists []ListResponse `json:"lists"`
}

// FromModels fills the response with the lists, unfinished first.
func (r *GetListsResponse) FromModels(lists []model.List) {
	sorted := SortLists(lists)

	r.Lists = make([]ListResponse, len(sorted))
	for i, list := range sorted {
		r.Lists[i].FromModel(list)
	}
}
