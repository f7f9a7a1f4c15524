package db

import (
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// TodoGateway is the persistence boundary for todo items. Every conditional
// operation is scoped by (todoID, userID) inside a single statement, so an
// item can never be read or mutated across owners, and reports a typed
// not-found when the pair does not exist.
type TodoGateway interface {
	Create(item entity.TodoItem) (*entity.TodoItem, error)

	FindAllByUser(userID string) ([]entity.TodoItem, error)
	FindPageByUser(userID string, offset int, limit int) ([]entity.TodoItem, error)
	CountByUser(userID string) (int64, error)

	UpdateByID(todoID string, userID string, dto model.UpdateTodoDTO) (*model.TodoUpdate, error)
	UpdateAttachmentUrl(todoID string, userID string, attachmentUrl string) error

	// DeleteByID reports whether a row was actually removed; a miss is not
	// an error so callers can treat deletes as idempotent.
	DeleteByID(todoID string, userID string) (bool, error)

	DeleteDoneBefore(cutoff string) (int64, error)
	FindDueBetween(from string, to string) ([]entity.TodoItem, error)
}
