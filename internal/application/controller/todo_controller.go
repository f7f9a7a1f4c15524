package controller

import (
	"net/http"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/apperr"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
	"todo-api/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type TodoController struct {
	api         *echo.Group
	useCase     todo.UseCase
	rateLimiter *redis.RateLimiter
}

// NewTodoController creates the todo controller. The rate limiter is optional
// and only guards the attachment endpoint when present.
func NewTodoController(api *echo.Group, useCase todo.UseCase, rateLimiter *redis.RateLimiter) *TodoController {
	return &TodoController{api: api, useCase: useCase, rateLimiter: rateLimiter}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos", controller.FindAllByUser)
	controller.api.POST("/todos", controller.Create)
	controller.api.PATCH("/todos/:todoId", controller.Update)
	controller.api.DELETE("/todos/:todoId", controller.Delete)
	controller.api.POST("/todos/:todoId/attachment", controller.GenerateUploadUrl)
}

// FindAllByUser godoc
// @Summary List todos
// @Description Retrieve the todo items of the authenticated user, optionally paginated
// @Tags todos
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size" default(10)
// @Success 200 {array} entity.TodoItem "Todo items"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /todos [get]
func (controller *TodoController) FindAllByUser(c echo.Context) error {
	userID := middleware.GetUserID(c)

	if c.QueryParam("page") != "" {
		var page int = numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
		var size int = numberutils.ToIntWithDefault(c.QueryParam("size"), 10)

		todosPage, err := controller.useCase.FindPageByUser(c.Request().Context(), userID, page, size)
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(http.StatusOK, todosPage)
	}

	items, err := controller.useCase.FindAllByUser(c.Request().Context(), userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary Create a todo
// @Description Create a new todo item for the authenticated user
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 201 {object} entity.TodoItem "Created todo item"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	userID := middleware.GetUserID(c)

	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("todo.error.invalid-body")})
	}

	item, err := controller.useCase.Create(c.Request().Context(), userID, dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary Update a todo
// @Description Update name, due date or done flag of a todo item owned by the authenticated user
// @Tags todos
// @Accept json
// @Produce json
// @Param todoId path string true "Todo id"
// @Param todo body model.UpdateTodoDTO true "Fields to update"
// @Success 200 {object} model.TodoUpdate "Updated fields"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 404 {object} map[string]string "Todo not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /todos/{todoId} [patch]
func (controller *TodoController) Update(c echo.Context) error {
	userID := middleware.GetUserID(c)
	todoID := c.Param("todoId")

	var dto model.UpdateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("todo.error.invalid-body")})
	}

	update, err := controller.useCase.Update(c.Request().Context(), todoID, userID, dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, update)
}

// Delete godoc
// @Summary Delete a todo
// @Description Delete a todo item owned by the authenticated user. Deleting an absent id succeeds.
// @Tags todos
// @Accept json
// @Produce json
// @Param todoId path string true "Todo id"
// @Success 200 {object} model.DeleteTodoResponse "Deletion confirmation"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /todos/{todoId} [delete]
func (controller *TodoController) Delete(c echo.Context) error {
	userID := middleware.GetUserID(c)
	todoID := c.Param("todoId")

	if err := controller.useCase.Delete(c.Request().Context(), todoID, userID); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.DeleteTodoResponse{
		TodoID:  todoID,
		Message: msg.GetMessage("todo.delete.success", todoID),
	})
}

// GenerateUploadUrl godoc
// @Summary Generate an attachment upload URL
// @Description Issue a presigned upload URL for a todo item and record its attachment URL
// @Tags todos
// @Accept json
// @Produce json
// @Param todoId path string true "Todo id"
// @Success 201 {object} model.UploadUrlResponse "Presigned upload URL"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 404 {object} map[string]string "Todo not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /todos/{todoId}/attachment [post]
func (controller *TodoController) GenerateUploadUrl(c echo.Context) error {
	userID := middleware.GetUserID(c)
	todoID := c.Param("todoId")

	if controller.rateLimiter != nil {
		allowed, err := controller.rateLimiter.Allow(c.Request().Context(), userID)
		if err == nil && !allowed {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": msg.GetMessage("todo.error.rate-limit")})
		}
	}

	uploadUrl, err := controller.useCase.GenerateUploadUrl(c.Request().Context(), todoID, userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, model.UploadUrlResponse{UploadUrl: uploadUrl})
}

// errorResponse maps domain error kinds onto HTTP statuses.
func errorResponse(c echo.Context, err error) error {
	return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
}
