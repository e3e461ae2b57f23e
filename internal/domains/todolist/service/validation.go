package service

import (
	"fmt"
	"slices"
	"strings"
	"todos/internal/domains/todolist/model"
	"todos/shared/constant"
	"todos/shared/failure"
	"todos/shared/validator"
)

var nameLengthTag = fmt.Sprintf("trimlen=%d-%d", constant.MinNameLength, constant.MaxNameLength)

var (
	messageListNameUnique = "List name must be unique."
	messageListNameLength = fmt.Sprintf("List name must be %d - %d characters.", constant.MinNameLength, constant.MaxNameLength)
	messageTodoNameLength = fmt.Sprintf("Todo name must be %d - %d characters.", constant.MinNameLength, constant.MaxNameLength)
)

// ListNameError returns nil when name, once trimmed, is a valid new name next to lists.
// Names are compared exactly, so "Groceries" and "groceries" may coexist.
func ListNameError(name string, lists []model.List) error {
	name = strings.TrimSpace(name)

	if slices.ContainsFunc(lists, func(list model.List) bool { return list.Name == name }) {
		return failure.BadRequestFromString(messageListNameUnique) //nolint:wrapcheck
	}

	if err := validator.ValidateVar(name, nameLengthTag); err != nil {
		return failure.BadRequestFromString(messageListNameLength) //nolint:wrapcheck
	}

	return nil
}

// TodoNameError returns nil when name, once trimmed, has an acceptable length.
func TodoNameError(name string) error {
	if err := validator.ValidateVar(name, nameLengthTag); err != nil {
		return failure.BadRequestFromString(messageTodoNameLength) //nolint:wrapcheck
	}

	return nil
}
