package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todo-api/internal/domain/apperr"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTodoUseCase struct {
	createFn    func(userID string, dto model.CreateTodoDTO) (*entity.TodoItem, error)
	findAllFn   func(userID string) ([]entity.TodoItem, error)
	findPageFn  func(userID string, page, size int) (*model.Page[entity.TodoItem], error)
	updateFn    func(todoID, userID string, dto model.UpdateTodoDTO) (*model.TodoUpdate, error)
	deleteFn    func(todoID, userID string) error
	uploadUrlFn func(todoID, userID string) (string, error)
}

func (s *stubTodoUseCase) Create(ctx context.Context, userID string, dto model.CreateTodoDTO) (*entity.TodoItem, error) {
	return s.createFn(userID, dto)
}

func (s *stubTodoUseCase) FindAllByUser(ctx context.Context, userID string) ([]entity.TodoItem, error) {
	return s.findAllFn(userID)
}

func (s *stubTodoUseCase) FindPageByUser(ctx context.Context, userID string, page int, size int) (*model.Page[entity.TodoItem], error) {
	return s.findPageFn(userID, page, size)
}

func (s *stubTodoUseCase) Update(ctx context.Context, todoID string, userID string, dto model.UpdateTodoDTO) (*model.TodoUpdate, error) {
	return s.updateFn(todoID, userID, dto)
}

func (s *stubTodoUseCase) Delete(ctx context.Context, todoID string, userID string) error {
	return s.deleteFn(todoID, userID)
}

func (s *stubTodoUseCase) GenerateUploadUrl(ctx context.Context, todoID string, userID string) (string, error) {
	return s.uploadUrlFn(todoID, userID)
}

func (s *stubTodoUseCase) PurgeDone(olderThanDays int) (int64, error) { return 0, nil }

func (s *stubTodoUseCase) NotifyDueSoon(windowHours int) (int, error) { return 0, nil }

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userId", "user-1")
	return c, rec
}

func TestCreateTodo(t *testing.T) {
	useCase := &stubTodoUseCase{
		createFn: func(userID string, dto model.CreateTodoDTO) (*entity.TodoItem, error) {
			require.Equal(t, "user-1", userID)
			return &entity.TodoItem{TodoID: "todo-1", UserID: userID, Name: dto.Name, DueDate: dto.DueDate}, nil
		},
	}
	controller := NewTodoController(nil, useCase, nil)

	c, rec := newTestContext(t, http.MethodPost, "/todos", `{"name":"Buy milk","dueDate":"2026-09-10"}`)
	require.NoError(t, controller.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var item entity.TodoItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "todo-1", item.TodoID)
	assert.Equal(t, "Buy milk", item.Name)
}

func TestCreateTodoValidationFailure(t *testing.T) {
	useCase := &stubTodoUseCase{
		createFn: func(userID string, dto model.CreateTodoDTO) (*entity.TodoItem, error) {
			return nil, apperr.Validation("Todo name must not be empty")
		},
	}
	controller := NewTodoController(nil, useCase, nil)

	c, rec := newTestContext(t, http.MethodPost, "/todos", `{"name":""}`)
	require.NoError(t, controller.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestFindAllTodos(t *testing.T) {
	useCase := &stubTodoUseCase{
		findAllFn: func(userID string) ([]entity.TodoItem, error) {
			return []entity.TodoItem{{TodoID: "todo-1", UserID: userID, Name: "Buy milk"}}, nil
		},
	}
	controller := NewTodoController(nil, useCase, nil)

	c, rec := newTestContext(t, http.MethodGet, "/todos", "")
	require.NoError(t, controller.FindAllByUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var items []entity.TodoItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Buy milk", items[0].Name)
}

func TestFindAllTodosPaginated(t *testing.T) {
	useCase := &stubTodoUseCase{
		findPageFn: func(userID string, page, size int) (*model.Page[entity.TodoItem], error) {
			assert.Equal(t, 1, page)
			assert.Equal(t, 5, size)
			return model.NewPage([]entity.TodoItem{{TodoID: "todo-6"}}, page, size, 6), nil
		},
	}
	controller := NewTodoController(nil, useCase, nil)

	c, rec := newTestContext(t, http.MethodGet, "/todos?page=1&size=5", "")
	require.NoError(t, controller.FindAllByUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var page model.Page[entity.TodoItem]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(6), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
}

func TestUpdateTodo(t *testing.T) {
	useCase := &stubTodoUseCase{
		updateFn: func(todoID, userID string, dto model.UpdateTodoDTO) (*model.TodoUpdate, error) {
			require.Equal(t, "todo-1", todoID)
			require.NotNil(t, dto.Done)
			return &model.TodoUpdate{Name: "Buy milk", Done: *dto.Done}, nil
		},
	}
	controller := NewTodoController(nil, useCase, nil)

	c, rec := newTestContext(t, http.MethodPatch, "/todos/todo-1", `{"done":true}`)
	c.SetParamNames("todoId")
	c.SetParamValues("todo-1")
	require.NoError(t, controller.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var update model.TodoUpdate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &update))
	assert.True(t, update.Done)
}

func TestUpdateTodoNotFound(t *testing.T) {
	useCase := &stubTodoUseCase{
		updateFn: func(todoID, userID string, dto model.UpdateTodoDTO) (*model.TodoUpdate, error) {
			return nil, apperr.NotFound("Todo todo-9 not found")
		},
	}
	controller := NewTodoController(nil, useCase, nil)

	c, rec := newTestContext(t, http.MethodPatch, "/todos/todo-9", `{"done":true}`)
	c.SetParamNames("todoId")
	c.SetParamValues("todo-9")
	require.NoError(t, controller.Update(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTodo(t *testing.T) {
	useCase := &stubTodoUseCase{
		deleteFn: func(todoID, userID string) error {
			require.Equal(t, "todo-1", todoID)
			require.Equal(t, "user-1", userID)
			return nil
		},
	}
	controller := NewTodoController(nil, useCase, nil)

	c, rec := newTestContext(t, http.MethodDelete, "/todos/todo-1", "")
	c.SetParamNames("todoId")
	c.SetParamValues("todo-1")
	require.NoError(t, controller.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var response model.DeleteTodoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "todo-1", response.TodoID)
}

func TestGenerateUploadUrl(t *testing.T) {
	useCase := &stubTodoUseCase{
		uploadUrlFn: func(todoID, userID string) (string, error) {
			return "https://signed.example.com/upload", nil
		},
	}
	controller := NewTodoController(nil, useCase, nil)

	c, rec := newTestContext(t, http.MethodPost, "/todos/todo-1/attachment", "")
	c.SetParamNames("todoId")
	c.SetParamValues("todo-1")
	require.NoError(t, controller.GenerateUploadUrl(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response model.UploadUrlResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "https://signed.example.com/upload", response.UploadUrl)
}

func TestGenerateUploadUrlStorageFailure(t *testing.T) {
	useCase := &stubTodoUseCase{
		uploadUrlFn: func(todoID, userID string) (string, error) {
			return "", apperr.Storage("Failed to generate upload URL", assert.AnError)
		},
	}
	controller := NewTodoController(nil, useCase, nil)

	c, rec := newTestContext(t, http.MethodPost, "/todos/todo-1/attachment", "")
	c.SetParamNames("todoId")
	c.SetParamValues("todo-1")
	require.NoError(t, controller.GenerateUploadUrl(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
