package entity

// TodoItem is the single persisted record of the service. An item belongs to
// exactly one user; every access is scoped by (TodoID, UserID).
type TodoItem struct {
	TodoID        string  `json:"todoId" gorm:"primaryKey;column:todo_id"`
	UserID        string  `json:"userId" gorm:"column:user_id;index"`
	CreatedAt     string  `json:"createdAt" gorm:"column:created_at"`
	Name          string  `json:"name"`
	DueDate       string  `json:"dueDate" gorm:"column:due_date"`
	Done          bool    `json:"done"`
	AttachmentUrl *string `json:"attachmentUrl" gorm:"column:attachment_url"`
}

func (TodoItem) TableName() string {
	return "todos"
}
