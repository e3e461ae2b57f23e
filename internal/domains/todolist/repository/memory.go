package repository

import (
	"context"
	"slices"
	"todos/internal/domains/todolist/model"
)

// Memory keeps lists in an ordered slice. It is not safe for concurrent use;
// a Memory belongs to a single session and a single request at a time.
type Memory struct {
	lists []model.List
}

// NewMemory wraps lists, typically restored from a session, without copying them.
// Todos get their list id back since it is not part of the serialized form.
func NewMemory(lists []model.List) *Memory {
	if lists == nil {
		lists = []model.List{}
	}

	for i := range lists {
		if lists[i].Todos == nil {
			lists[i].Todos = []model.Todo{}
		}

		for j := range lists[i].Todos {
			lists[i].Todos[j].ListID = lists[i].ID
		}
	}

	return &Memory{lists: lists}
}

// Lists returns the current state, e.g. for writing it back to the session.
func (m *Memory) Lists() []model.List {
	return m.lists
}

func (m *Memory) FindList(_ context.Context, id int) (model.List, bool, error) {
	index := m.indexOf(id)
	if index < 0 {
		return model.List{}, false, nil
	}

	return cloneList(m.lists[index]), true, nil
}

func (m *Memory) AllLists(_ context.Context) ([]model.List, error) {
	lists := make([]model.List, len(m.lists))
	for i, list := range m.lists {
		lists[i] = cloneList(list)
	}

	return lists, nil
}

func (m *Memory) CreateList(_ context.Context, name string) error {
	id := nextID(m.lists, func(list model.List) int { return list.ID })
	m.lists = append(m.lists, model.NewList(id, name))

	return nil
}

func (m *Memory) DeleteList(_ context.Context, id int) error {
	m.lists = slices.DeleteFunc(m.lists, func(list model.List) bool { return list.ID == id })

	return nil
}

func (m *Memory) RenameList(_ context.Context, id int, name string) error {
	if list := m.list(id); list != nil {
		list.Name = name
	}

	return nil
}

func (m *Memory) AddTodo(_ context.Context, listID int, name string) error {
	list := m.list(listID)
	if list == nil {
		return nil
	}

	id := nextID(list.Todos, func(todo model.Todo) int { return todo.ID })
	list.Todos = append(list.Todos, model.Todo{ListID: listID, ID: id, Name: name})

	return nil
}

func (m *Memory) DeleteTodoItem(_ context.Context, listID, todoID int) error {
	if list := m.list(listID); list != nil {
		list.Todos = slices.DeleteFunc(list.Todos, func(todo model.Todo) bool { return todo.ID == todoID })
	}

	return nil
}

func (m *Memory) UpdateCompletedStatus(_ context.Context, listID, todoID int, status bool) error {
	list := m.list(listID)
	if list == nil {
		return nil
	}

	for i := range list.Todos {
		if list.Todos[i].ID == todoID {
			list.Todos[i].Completed = status
		}
	}

	return nil
}

func (m *Memory) MarkAllCompleted(_ context.Context, listID int) error {
	list := m.list(listID)
	if list == nil {
		return nil
	}

	for i := range list.Todos {
		list.Todos[i].Completed = true
	}

	return nil
}

func (m *Memory) indexOf(id int) int {
	return slices.IndexFunc(m.lists, func(list model.List) bool { return list.ID == id })
}

func (m *Memory) list(id int) *model.List {
	index := m.indexOf(id)
	if index < 0 {
		return nil
	}

	return &m.lists[index]
}

// cloneList copies the todos so callers cannot mutate session state behind the store's back.
func cloneList(list model.List) model.List {
	list.Todos = append([]model.Todo{}, list.Todos...)

	return list
}

func nextID[T any](items []T, id func(T) int) int {
	highest := 0

	for _, item := range items {
		highest = max(highest, id(item))
	}

	return highest + 1
}
