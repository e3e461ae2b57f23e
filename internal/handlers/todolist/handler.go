package todolist

import (
	"net/http"
	"todos/infras/otel"
	"todos/internal/domains/todolist/model/dto"
	"todos/internal/domains/todolist/service"
	"todos/shared"
	"todos/shared/constant"
	"todos/shared/failure"
	"todos/shared/validator"
	"todos/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	messageListCreated    = "New list created"
	messageListUpdated    = "List has been updated"
	messageListDeleted    = "List deleted"
	messageTodoAdded      = "Todo item successfully added"
	messageTodoDeleted    = "Todo has been deleted."
	messageTodoUpdated    = "The todo has been updated"
	messageTodosCompleted = "All todos have been marked complete."

	urlParamListID = "/{" + constant.RequestParamID + "}"
	urlParamTodoID = "/{" + constant.RequestParamTodoID + "}"
)

type Handler struct {
	service service.TodoList
	otel    otel.Otel
}

func New(service service.TodoList, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/lists", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetLists)
		routerGroup.Post("/", handler.CreateList)

		routerGroup.Route(urlParamListID, func(listGroup chi.Router) {
			listGroup.Get("/", handler.GetList)
			listGroup.Patch("/", handler.RenameList)
			listGroup.Delete("/", handler.DeleteList)
			listGroup.Post("/complete", handler.CompleteAll)
			listGroup.Post("/todos", handler.AddTodo)
			listGroup.Delete("/todos"+urlParamTodoID, handler.DeleteTodo)
			listGroup.Patch("/todos"+urlParamTodoID, handler.UpdateTodoStatus)
		})
	})
}

// GetLists returns every list of the current store.
// @Summary Get all lists
// @Description Lists are ordered with unfinished lists first.
// @Tags TodoList
// @Produce json
// @Success 200 {object} dto.GetListsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lists [get]
func (handler *Handler) GetLists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLists")
	defer scope.End()

	lists, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get lists")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, lists)
}

// CreateList creates an empty list.
// @Summary Create a list
// @Tags TodoList
// @Accept json
// @Produce json
// @Param request body dto.ListNameRequest true "List name"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lists [post]
func (handler *Handler) CreateList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateList")
	defer scope.End()

	req := dto.ListNameRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create list")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("List created")

	response.WithMessage(w, http.StatusCreated, messageListCreated)
}

// GetList returns one list with its todos, unfinished first.
// @Summary Get a list
// @Tags TodoList
// @Produce json
// @Param id path int true "List ID"
// @Success 200 {object} dto.ListResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lists/{id} [get]
func (handler *Handler) GetList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetList")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.ListNotFound)

		return
	}

	list, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("list", id).Msg("failed to get list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, list)
}

// RenameList changes the name of a list.
// @Summary Rename a list
// @Tags TodoList
// @Accept json
// @Produce json
// @Param id path int true "List ID"
// @Param request body dto.ListNameRequest true "New list name"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lists/{id} [patch]
func (handler *Handler) RenameList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RenameList")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.ListNotFound)

		return
	}

	req := dto.ListNameRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Rename(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("list", id).Msg("failed to rename list")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, messageListUpdated)
}

// DeleteList removes a list and all of its todos.
// @Summary Delete a list
// @Tags TodoList
// @Produce json
// @Param id path int true "List ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lists/{id} [delete]
func (handler *Handler) DeleteList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteList")
	defer scope.End()

	id, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.ListNotFound)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("list", id).Msg("failed to delete list")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("List deleted")

	response.WithMessage(w, http.StatusOK, messageListDeleted)
}

// AddTodo appends a todo to a list.
// @Summary Add a todo
// @Tags TodoList
// @Accept json
// @Produce json
// @Param id path int true "List ID"
// @Param request body dto.AddTodoRequest true "Todo name"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lists/{id}/todos [post]
func (handler *Handler) AddTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddTodo")
	defer scope.End()

	listID, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.ListNotFound)

		return
	}

	req := dto.AddTodoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddTodo(ctx, listID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("list", listID).Msg("failed to add todo")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, messageTodoAdded)
}

// DeleteTodo removes a todo from a list. Deleting a todo twice succeeds.
// @Summary Delete a todo
// @Tags TodoList
// @Produce json
// @Param id path int true "List ID"
// @Param todoID path int true "Todo ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lists/{id}/todos/{todoID} [delete]
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	listID, todoID, err := todoParams(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteTodo(ctx, listID, todoID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("list", listID).Int("todo", todoID).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, messageTodoDeleted)
}

// UpdateTodoStatus marks a todo as completed or not completed.
// @Summary Update a todo's status
// @Tags TodoList
// @Accept json
// @Produce json
// @Param id path int true "List ID"
// @Param todoID path int true "Todo ID"
// @Param request body dto.UpdateTodoStatusRequest true "Completion status"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lists/{id}/todos/{todoID} [patch]
func (handler *Handler) UpdateTodoStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodoStatus")
	defer scope.End()

	listID, todoID, err := todoParams(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateTodoStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateTodoStatus(ctx, listID, todoID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("list", listID).Int("todo", todoID).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, messageTodoUpdated)
}

// CompleteAll marks every todo of a list as completed.
// @Summary Complete all todos
// @Tags TodoList
// @Produce json
// @Param id path int true "List ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lists/{id}/complete [post]
func (handler *Handler) CompleteAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteAll")
	defer scope.End()

	listID, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		response.WithError(w, failure.ListNotFound)

		return
	}

	if err := handler.service.CompleteAll(ctx, listID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("list", listID).Msg("failed to complete todos")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, messageTodosCompleted)
}

func todoParams(r *http.Request) (int, int, error) {
	listID, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if !ok {
		return 0, 0, failure.ListNotFound
	}

	todoID, ok := shared.ParseID(chi.URLParam(r, constant.RequestParamTodoID))
	if !ok {
		return 0, 0, failure.TodoNotFound
	}

	return listID, todoID, nil
}
