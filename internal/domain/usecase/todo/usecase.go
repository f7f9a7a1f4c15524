package todo

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	Create(ctx context.Context, userID string, dto model.CreateTodoDTO) (*entity.TodoItem, error)
	FindAllByUser(ctx context.Context, userID string) ([]entity.TodoItem, error)
	FindPageByUser(ctx context.Context, userID string, page int, size int) (*model.Page[entity.TodoItem], error)
	Update(ctx context.Context, todoID string, userID string, dto model.UpdateTodoDTO) (*model.TodoUpdate, error)
	Delete(ctx context.Context, todoID string, userID string) error
	GenerateUploadUrl(ctx context.Context, todoID string, userID string) (string, error)

	PurgeDone(olderThanDays int) (int64, error)
	NotifyDueSoon(windowHours int) (int, error)
}
