package todolist_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"todos/infras/otel/mocks"
	"todos/internal/domains/todolist/model/dto"
	"todos/internal/domains/todolist/repository"
	"todos/internal/domains/todolist/service"
	"todos/internal/handlers/todolist"
	"todos/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	otel := mocks.NewOtel()
	svc := service.New(repository.NewStaticOpener(repository.NewMemory(nil)), otel)
	handler := todolist.New(svc, otel)

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func call(t *testing.T, server *httptest.Server, method, path, body string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, strings.NewReader(body))
	require.NoError(t, err)

	res, err := server.Client().Do(req)
	require.NoError(t, err)

	defer res.Body.Close()

	var payload json.RawMessage
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))

	return res.StatusCode, payload
}

func message(t *testing.T, payload []byte) string {
	t.Helper()

	var msg response.Message
	require.NoError(t, json.Unmarshal(payload, &msg))
	require.NotNil(t, msg.Message)

	return *msg.Message
}

func errorMessage(t *testing.T, payload []byte) string {
	t.Helper()

	var msg response.Error
	require.NoError(t, json.Unmarshal(payload, &msg))
	require.NotNil(t, msg.Error)

	return *msg.Error
}

func TestHandler_ListLifecycle(t *testing.T) {
	server := newServer(t)

	code, body := call(t, server, http.MethodPost, "/v1/lists", `{"name":"Groceries"}`)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "New list created", message(t, body))

	code, body = call(t, server, http.MethodPost, "/v1/lists", `{"name":"Groceries"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "List name must be unique.", errorMessage(t, body))

	code, body = call(t, server, http.MethodPost, "/v1/lists/1/todos", `{"name":"Milk"}`)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Todo item successfully added", message(t, body))

	code, body = call(t, server, http.MethodPatch, "/v1/lists/1/todos/1", `{"completed":true}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "The todo has been updated", message(t, body))

	code, body = call(t, server, http.MethodGet, "/v1/lists/1", "")
	require.Equal(t, http.StatusOK, code)

	var list response.Data[dto.ListResponse]
	require.NoError(t, json.Unmarshal(body, &list))
	require.NotNil(t, list.Data)
	assert.Equal(t, "Groceries", list.Data.Name)
	assert.True(t, list.Data.Completed)
	assert.Equal(t, 1, list.Data.TotalTodosCount)
	assert.Equal(t, 0, list.Data.RemainingTodosCount)

	code, body = call(t, server, http.MethodPatch, "/v1/lists/1", `{"name":"Shopping"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "List has been updated", message(t, body))

	code, body = call(t, server, http.MethodPost, "/v1/lists/1/complete", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "All todos have been marked complete.", message(t, body))

	code, body = call(t, server, http.MethodDelete, "/v1/lists/1/todos/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Todo has been deleted.", message(t, body))

	code, body = call(t, server, http.MethodDelete, "/v1/lists/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "List deleted", message(t, body))

	code, body = call(t, server, http.MethodGet, "/v1/lists", "")
	require.Equal(t, http.StatusOK, code)

	var lists response.Data[dto.GetListsResponse]
	require.NoError(t, json.Unmarshal(body, &lists))
	require.NotNil(t, lists.Data)
	assert.Empty(t, lists.Data.Lists)
}

func TestHandler_Errors(t *testing.T) {
	server := newServer(t)

	code, _ := call(t, server, http.MethodPost, "/v1/lists", `{"name":"Groceries"}`)
	require.Equal(t, http.StatusCreated, code)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
		wantErr  string
	}{
		{
			name:     "unknown list",
			method:   http.MethodGet,
			path:     "/v1/lists/42",
			wantCode: http.StatusNotFound,
			wantErr:  "The specified list was not found.",
		},
		{
			name:     "non numeric list id",
			method:   http.MethodGet,
			path:     "/v1/lists/abc",
			wantCode: http.StatusNotFound,
			wantErr:  "The specified list was not found.",
		},
		{
			name:     "unknown todo",
			method:   http.MethodPatch,
			path:     "/v1/lists/1/todos/5",
			body:     `{"completed":true}`,
			wantCode: http.StatusNotFound,
			wantErr:  "The specified todo was not found.",
		},
		{
			name:     "blank list name",
			method:   http.MethodPost,
			path:     "/v1/lists",
			body:     `{"name":"   "}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "List name must be 1 - 100 characters.",
		},
		{
			name:     "blank todo name",
			method:   http.MethodPost,
			path:     "/v1/lists/1/todos",
			body:     `{"name":""}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "Todo name must be 1 - 100 characters.",
		},
		{
			name:     "missing completed flag",
			method:   http.MethodPatch,
			path:     "/v1/lists/1/todos/1",
			body:     `{}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed body",
			method:   http.MethodPost,
			path:     "/v1/lists",
			body:     `{"name":`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := call(t, server, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantCode, code)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errorMessage(t, body))
			}
		})
	}
}
