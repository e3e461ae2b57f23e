package dto

import "todos/internal/domains/todolist/model"

// SortLists returns the lists with unfinished ones first and completed ones last.
// Relative order inside each group is preserved.
func SortLists(lists []model.List) []model.List {
	return partition(lists, model.List.Completed)
}

// SortTodos returns the todos with open ones first and completed ones last.
// Relative order inside each group is preserved.
func SortTodos(todos []model.Todo) []model.Todo {
	return partition(todos, func(todo model.Todo) bool { return todo.Completed })
}

func partition[T any](items []T, finished func(T) bool) []T {
	sorted := make([]T, 0, len(items))

	for _, item := range items {
		if !finished(item) {
			sorted = append(sorted, item)
		}
	}

	for _, item := range items {
		if finished(item) {
			sorted = append(sorted, item)
		}
	}

	return sorted
}
