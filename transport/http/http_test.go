package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"todos/config"
	"todos/infras/otel/mocks"
	"todos/internal/domains/todolist/repository"
	"todos/internal/domains/todolist/service"
	"todos/internal/handlers/todolist"
	cacheMocks "todos/shared/cache/mocks"
	"todos/shared/constant"
	transport "todos/transport/http"
	"todos/transport/http/middleware"
	"todos/transport/http/router"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newHTTP(t *testing.T) *transport.HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "todos"
	cfg.App.Storage = constant.StorageBackendDatabase
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://todos.example"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	otel := mocks.NewOtel()
	svc := service.New(repository.NewStaticOpener(repository.NewMemory(nil)), otel)
	handlers := router.DomainHandlers{TodoList: todolist.New(svc, otel)}
	appMiddleware := middleware.NewAppMiddleware(otel, cfg, cacheMocks.NewMockRedisCache(gomock.NewController(t)))

	return transport.New(cfg, router.New(handlers), appMiddleware, otel)
}

func TestHTTP_Health(t *testing.T) {
	server := newHTTP(t)
	handler := server.Handler()

	assert.Equal(t, transport.ServerStateReady, server.State())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OK"}`, rec.Body.String())
}

func TestHTTP_Routes(t *testing.T) {
	handler := newHTTP(t).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/lists", strings.NewReader(`{"name":"Groceries"}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/lists", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Groceries"`)
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderContentType))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/lists", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTP_CORS(t *testing.T) {
	handler := newHTTP(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/lists", nil)
	req.Header.Set("Origin", "https://todos.example")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://todos.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
