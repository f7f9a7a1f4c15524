package db

import (
	"database/sql"
	"errors"

	"todo-api/internal/domain/apperr"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

type SQLCTodoGateway struct {
	DB *sql.DB
}

var _ TodoGateway = (*SQLCTodoGateway)(nil)

func NewSQLCTodoGateway(db *sql.DB) *SQLCTodoGateway {
	return &SQLCTodoGateway{DB: db}
}

func (gateway *SQLCTodoGateway) Create(item entity.TodoItem) (*entity.TodoItem, error) {
	_, err := gateway.DB.Exec(`
		INSERT INTO todos (todo_id, user_id, created_at, name, due_date, done, attachment_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.TodoID, item.UserID, item.CreatedAt, item.Name, item.DueDate,
		item.Done, item.AttachmentUrl)
	if err != nil {
		return nil, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	return &item, nil
}

func (gateway *SQLCTodoGateway) FindAllByUser(userID string) ([]entity.TodoItem, error) {
	rows, err := gateway.DB.Query(`
		SELECT todo_id, user_id, created_at, name, due_date, done, attachment_url
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = closeErr
		}
	}()

	return scanTodoRows(rows)
}

func (gateway *SQLCTodoGateway) FindPageByUser(userID string, offset int, limit int) ([]entity.TodoItem, error) {
	rows, err := gateway.DB.Query(`
		SELECT todo_id, user_id, created_at, name, due_date, done, attachment_url
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`, userID, offset, limit)
	if err != nil {
		return nil, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = closeErr
		}
	}()

	return scanTodoRows(rows)
}

func (gateway *SQLCTodoGateway) CountByUser(userID string) (int64, error) {
	var count int64
	err := gateway.DB.QueryRow(`SELECT COUNT(*) FROM todos WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	return count, nil
}

func (gateway *SQLCTodoGateway) UpdateByID(todoID string, userID string, dto model.UpdateTodoDTO) (*model.TodoUpdate, error) {
	var update model.TodoUpdate
	err := gateway.DB.QueryRow(`
		UPDATE todos
		SET name = COALESCE($1, name),
		    due_date = COALESCE($2, due_date),
		    done = COALESCE($3, done)
		WHERE todo_id = $4 AND user_id = $5
		RETURNING name, due_date, done`,
		dto.Name, dto.DueDate, dto.Done, todoID, userID).
		Scan(&update.Name, &update.DueDate, &update.Done)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound(msg.GetMessage("todo.error.not-found", todoID))
	}
	if err != nil {
		return nil, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	return &update, nil
}

func (gateway *SQLCTodoGateway) UpdateAttachmentUrl(todoID string, userID string, attachmentUrl string) error {
	result, err := gateway.DB.Exec(`
		UPDATE todos
		SET attachment_url = $1
		WHERE todo_id = $2 AND user_id = $3`,
		attachmentUrl, todoID, userID)
	if err != nil {
		return apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	if affected == 0 {
		return apperr.NotFound(msg.GetMessage("todo.error.not-found", todoID))
	}
	return nil
}

func (gateway *SQLCTodoGateway) DeleteByID(todoID string, userID string) (bool, error) {
	result, err := gateway.DB.Exec(`
		DELETE FROM todos
		WHERE todo_id = $1 AND user_id = $2`, todoID, userID)
	if err != nil {
		return false, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	return affected > 0, nil
}

func (gateway *SQLCTodoGateway) DeleteDoneBefore(cutoff string) (int64, error) {
	result, err := gateway.DB.Exec(`
		DELETE FROM todos
		WHERE done = TRUE AND created_at < $1`, cutoff)
	if err != nil {
		return 0, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	return affected, nil
}

func (gateway *SQLCTodoGateway) FindDueBetween(from string, to string) ([]entity.TodoItem, error) {
	rows, err := gateway.DB.Query(`
		SELECT todo_id, user_id, created_at, name, due_date, done, attachment_url
		FROM todos
		WHERE done = FALSE AND due_date <> '' AND due_date >= $1 AND due_date <= $2
		ORDER BY due_date ASC`, from, to)
	if err != nil {
		return nil, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = closeErr
		}
	}()

	return scanTodoRows(rows)
}

func scanTodoRows(rows *sql.Rows) ([]entity.TodoItem, error) {
	results := make([]entity.TodoItem, 0)
	for rows.Next() {
		var item entity.TodoItem
		if err := rows.Scan(&item.TodoID, &item.UserID, &item.CreatedAt, &item.Name,
			&item.DueDate, &item.Done, &item.AttachmentUrl); err != nil {
			return nil, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence(msg.GetMessage("todo.error.persistence"), err)
	}
	return results, nil
}
