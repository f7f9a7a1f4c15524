package db

import (
	"fmt"
	"testing"

	"todo-api/internal/domain/apperr"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockGateway(t *testing.T) (*SQLCTodoGateway, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewSQLCTodoGateway(mockDB), mock
}

func todoColumns() []string {
	return []string{"todo_id", "user_id", "created_at", "name", "due_date", "done", "attachment_url"}
}

func TestSQLCCreate(t *testing.T) {
	gateway, mock := newMockGateway(t)

	item := entity.TodoItem{
		TodoID:    "todo-1",
		UserID:    "user-1",
		CreatedAt: "2026-08-29T10:00:00Z",
		Name:      "Buy milk",
		DueDate:   "2026-09-10",
	}

	mock.ExpectExec("INSERT INTO todos").
		WithArgs(item.TodoID, item.UserID, item.CreatedAt, item.Name, item.DueDate, item.Done, item.AttachmentUrl).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := gateway.Create(item)
	require.NoError(t, err)
	assert.Equal(t, item, *created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLCCreateFailure(t *testing.T) {
	gateway, mock := newMockGateway(t)

	mock.ExpectExec("INSERT INTO todos").
		WillReturnError(fmt.Errorf("connection reset"))

	_, err := gateway.Create(entity.TodoItem{TodoID: "todo-1", UserID: "user-1"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindPersistence, apperr.KindOf(err))
}

func TestSQLCFindAllByUser(t *testing.T) {
	gateway, mock := newMockGateway(t)

	attachmentUrl := "https://bucket.s3.amazonaws.com/att-1"
	rows := sqlmock.NewRows(todoColumns()).
		AddRow("todo-1", "user-1", "2026-08-29T10:00:00Z", "Buy milk", "2026-09-10", false, nil).
		AddRow("todo-2", "user-1", "2026-08-28T10:00:00Z", "Walk dog", "", true, attachmentUrl)

	mock.ExpectQuery("SELECT (.+) FROM todos").
		WithArgs("user-1").
		WillReturnRows(rows)

	items, err := gateway.FindAllByUser("user-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Nil(t, items[0].AttachmentUrl)
	require.NotNil(t, items[1].AttachmentUrl)
	assert.Equal(t, attachmentUrl, *items[1].AttachmentUrl)
}

func TestSQLCFindAllByUserEmpty(t *testing.T) {
	gateway, mock := newMockGateway(t)

	mock.ExpectQuery("SELECT (.+) FROM todos").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(todoColumns()))

	items, err := gateway.FindAllByUser("user-1")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestSQLCUpdateByID(t *testing.T) {
	gateway, mock := newMockGateway(t)

	done := true
	mock.ExpectQuery("UPDATE todos").
		WithArgs(nil, nil, done, "todo-1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"name", "due_date", "done"}).
			AddRow("Buy milk", "2026-09-10", true))

	update, err := gateway.UpdateByID("todo-1", "user-1", model.UpdateTodoDTO{Done: &done})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", update.Name)
	assert.True(t, update.Done)
}

func TestSQLCUpdateByIDNotFound(t *testing.T) {
	gateway, mock := newMockGateway(t)

	done := true
	mock.ExpectQuery("UPDATE todos").
		WithArgs(nil, nil, done, "todo-1", "user-2").
		WillReturnRows(sqlmock.NewRows([]string{"name", "due_date", "done"}))

	_, err := gateway.UpdateByID("todo-1", "user-2", model.UpdateTodoDTO{Done: &done})
	assert.True(t, apperr.IsNotFound(err))
}

func TestSQLCUpdateAttachmentUrl(t *testing.T) {
	gateway, mock := newMockGateway(t)

	mock.ExpectExec("UPDATE todos").
		WithArgs("https://bucket.s3.amazonaws.com/att-1", "todo-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := gateway.UpdateAttachmentUrl("todo-1", "user-1", "https://bucket.s3.amazonaws.com/att-1")
	assert.NoError(t, err)
}

func TestSQLCUpdateAttachmentUrlNotFound(t *testing.T) {
	gateway, mock := newMockGateway(t)

	mock.ExpectExec("UPDATE todos").
		WithArgs("https://bucket.s3.amazonaws.com/att-1", "todo-1", "user-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := gateway.UpdateAttachmentUrl("todo-1", "user-2", "https://bucket.s3.amazonaws.com/att-1")
	assert.True(t, apperr.IsNotFound(err))
}

func TestSQLCDeleteByID(t *testing.T) {
	gateway, mock := newMockGateway(t)

	mock.ExpectExec("DELETE FROM todos").
		WithArgs("todo-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := gateway.DeleteByID("todo-1", "user-1")
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestSQLCDeleteByIDMiss(t *testing.T) {
	gateway, mock := newMockGateway(t)

	mock.ExpectExec("DELETE FROM todos").
		WithArgs("todo-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := gateway.DeleteByID("todo-1", "user-1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSQLCDeleteDoneBefore(t *testing.T) {
	gateway, mock := newMockGateway(t)

	mock.ExpectExec("DELETE FROM todos").
		WithArgs("2026-07-30T00:00:00Z").
		WillReturnResult(sqlmock.NewResult(0, 3))

	purged, err := gateway.DeleteDoneBefore("2026-07-30T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
}

func TestSQLCFindDueBetween(t *testing.T) {
	gateway, mock := newMockGateway(t)

	rows := sqlmock.NewRows(todoColumns()).
		AddRow("todo-1", "user-1", "2026-08-29T10:00:00Z", "Buy milk", "2026-08-30", false, nil)

	mock.ExpectQuery("SELECT (.+) FROM todos").
		WithArgs("2026-08-29", "2026-08-30").
		WillReturnRows(rows)

	items, err := gateway.FindDueBetween("2026-08-29", "2026-08-30")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Buy milk", items[0].Name)
}
