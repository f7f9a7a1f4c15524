package db

import (
	"todo-api/internal/domain/apperr"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"

	"gorm.io/gorm"
)

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

func (gateway *GormTodoGateway) Create(item entity.TodoItem) (*entity.TodoItem, error) {
	if err := gateway.DB.Create(&item).Error; err != nil {
		return nil, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	return &item, nil
}

func (gateway *GormTodoGateway) FindAllByUser(userID string) ([]entity.TodoItem, error) {
	items := make([]entity.TodoItem, 0)
	err := gateway.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	return items, nil
}

func (gateway *GormTodoGateway) FindPageByUser(userID string, offset int, limit int) ([]entity.TodoItem, error) {
	items := make([]entity.TodoItem, 0)
	err := gateway.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	return items, nil
}

func (gateway *GormTodoGateway) CountByUser(userID string) (int64, error) {
	var count int64
	err := gateway.DB.Model(&entity.TodoItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	return count, nil
}

func (gateway *GormTodoGateway) UpdateByID(todoID string, userID string, dto model.UpdateTodoDTO) (*model.TodoUpdate, error) {
	fields := make(map[string]interface{})
	if dto.Name != nil {
		fields["name"] = *dto.Name
	}
	if dto.DueDate != nil {
		fields["due_date"] = *dto.DueDate
	}
	if dto.Done != nil {
		fields["done"] = *dto.Done
	}

	if len(fields) > 0 {
		result := gateway.DB.Model(&entity.TodoItem{}).
			Where("todo_id = ? AND user_id = ?", todoID, userID).
			Updates(fields)
		if result.Error != nil {
			return nil, apperr.Persistence(msg.GetMessage("todo.error.persistence"), result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, apperr.NotFound(msg.GetMessage("todo.error.not-found", todoID))
		}
	}

	var item entity.TodoItem
	err := gateway.DB.
		Where("todo_id = ? AND user_id = ?", todoID, userID).
		First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound(msg.GetMessage("todo.error.not-found", todoID))
	}
	if err != nil {
		return nil, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}

	return &model.TodoUpdate{Name: item.Name, DueDate: item.DueDate, Done: item.Done}, nil
}

func (gateway *GormTodoGateway) UpdateAttachmentUrl(todoID string, userID string, attachmentUrl string) error {
	result := gateway.DB.Model(&entity.TodoItem{}).
		Where("todo_id = ? AND user_id = ?", todoID, userID).
		Update("attachment_url", attachmentUrl)
	if result.Error != nil {
		return apperr.Persistence(msg.GetMessage("todo.error.persistence"), result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound(msg.GetMessage("todo.error.not-found", todoID))
	}
	return nil
}

func (gateway *GormTodoGateway) DeleteByID(todoID string, userID string) (bool, error) {
	result := gateway.DB.
		Where("todo_id = ? AND user_id = ?", todoID, userID).
		Delete(&entity.TodoItem{})
	if result.Error != nil {
		return false, apperr.Persistence(msg.GetMessage("todo.error.persistence"), result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (gateway *GormTodoGateway) DeleteDoneBefore(cutoff string) (int64, error) {
	result := gateway.DB.
		Where("done = ? AND created_at < ?", true, cutoff).
		Delete(&entity.TodoItem{})
	if result.Error != nil {
		return 0, apperr.Persistence(msg.GetMessage("todo.error.persistence"), result.Error)
	}
	return result.RowsAffected, nil
}

func (gateway *GormTodoGateway) FindDueBetween(from string, to string) ([]entity.TodoItem, error) {
	items := make([]entity.TodoItem, 0)
	err := gateway.DB.
		Where("done = ? AND due_date <> '' AND due_date >= ? AND due_date <= ?", false, from, to).
		Order("due_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	return items, nil
}
