package processor

import (
	"encoding/json"
	"fmt"

	"todo-api/internal/domain/model"
	"todo-api/pkg/log"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"
)

// ReminderProcessor consumes due-soon reminder events. Delivery is the whole
// job for now: the reminder is logged so a notification channel can be hooked
// in behind it later.
type ReminderProcessor struct{}

func NewReminderProcessor() *ReminderProcessor {
	return &ReminderProcessor{}
}

// HandleMessage implements the sqs.Handler interface
func (p *ReminderProcessor) HandleMessage(msg *types.Message) error {
	if msg == nil || msg.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	var event model.TodoEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	if event.Type != model.TodoDueSoon {
		log.Warnf("Ignoring unexpected event type %s on reminders queue", event.Type)
		return nil
	}

	log.Info("Todo due soon",
		zap.String("todo_id", event.TodoID),
		zap.String("user_id", event.UserID),
		zap.String("name", event.Name),
		zap.String("due_date", event.DueDate),
	)
	return nil
}
