package model

// TodoEventType identifies the mutation that produced an event.
type TodoEventType string

const (
	TodoCreated    TodoEventType = "TODO_CREATED"
	TodoUpdated    TodoEventType = "TODO_UPDATED"
	TodoDeleted    TodoEventType = "TODO_DELETED"
	TodoAttachment TodoEventType = "TODO_ATTACHMENT"
	TodoDueSoon    TodoEventType = "TODO_DUE_SOON"
)

// TodoEvent is published to the events queue after each successful mutation
// and by the reminder schedule for items that are about to be due.
type TodoEvent struct {
	Type       TodoEventType `json:"type"`
	TodoID     string        `json:"todoId"`
	UserID     string        `json:"userId"`
	Name       string        `json:"name,omitempty"`
	DueDate    string        `json:"dueDate,omitempty"`
	OccurredAt string        `json:"occurredAt"`
}
