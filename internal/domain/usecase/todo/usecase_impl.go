package todo

import (
	"context"
	"errors"
	"strings"
	"time"

	"todo-api/internal/domain/apperr"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/gateway/storage"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"

	"github.com/google/uuid"
)

const (
	createdAtLayout = time.RFC3339
	dueDateLayout   = "2006-01-02"
)

// Config carries the queue names the use case publishes to. Empty names
// disable publishing for that concern.
type Config struct {
	EventsQueue    string
	RemindersQueue string
}

type todoUseCase struct {
	gateway     db.TodoGateway
	attachments storage.AttachmentGateway
	sender      queue.Sender
	listCache   *redis.Cache
	config      *Config
	generateID  func() string
}

// NewTodoUseCase wires the todo service with its collaborators. The sender and
// listCache may be nil, which disables event publishing and caching. The id
// generator defaults to uuid and is shared by todo and attachment ids.
func NewTodoUseCase(gateway db.TodoGateway, attachments storage.AttachmentGateway,
	sender queue.Sender, listCache *redis.Cache, config *Config, generateID func() string) UseCase {
	if config == nil {
		config = &Config{}
	}
	if generateID == nil {
		generateID = uuid.NewString
	}
	return &todoUseCase{
		gateway:     gateway,
		attachments: attachments,
		sender:      sender,
		listCache:   listCache,
		config:      config,
		generateID:  generateID,
	}
}

func (uc *todoUseCase) Create(ctx context.Context, userID string, dto model.CreateTodoDTO) (*entity.TodoItem, error) {
	if strings.TrimSpace(dto.Name) == "" {
		return nil, apperr.Validation(msg.GetMessage("todo.error.empty-name"))
	}

	item := entity.TodoItem{
		TodoID:    uc.generateID(),
		UserID:    userID,
		CreatedAt: time.Now().UTC().Format(createdAtLayout),
		Name:      dto.Name,
		DueDate:   dto.DueDate,
		Done:      false,
	}

	created, err := uc.gateway.Create(item)
	if err != nil {
		return nil, err
	}

	uc.invalidateList(ctx, userID)
	uc.publishEvent(model.TodoEvent{
		Type:    model.TodoCreated,
		TodoID:  created.TodoID,
		UserID:  userID,
		Name:    created.Name,
		DueDate: created.DueDate,
	})

	return created, nil
}

func (uc *todoUseCase) FindAllByUser(ctx context.Context, userID string) ([]entity.TodoItem, error) {
	if uc.listCache != nil {
		var cached []entity.TodoItem
		err := uc.listCache.Get(ctx, userID, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			log.Warnf("Todo list cache read failed for user %s: %v", userID, err)
		}
	}

	items, err := uc.gateway.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	if uc.listCache != nil {
		if err := uc.listCache.Set(ctx, userID, items); err != nil {
			log.Warnf("Todo list cache write failed for user %s: %v", userID, err)
		}
	}

	return items, nil
}

func (uc *todoUseCase) FindPageByUser(ctx context.Context, userID string, page int, size int) (*model.Page[entity.TodoItem], error) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 10
	}

	items, err := uc.gateway.FindPageByUser(userID, page*size, size)
	if err != nil {
		return nil, err
	}

	total, err := uc.gateway.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	return model.NewPage(items, page, size, total), nil
}

func (uc *todoUseCase) Update(ctx context.Context, todoID string, userID string, dto model.UpdateTodoDTO) (*model.TodoUpdate, error) {
	if dto.Name != nil && strings.TrimSpace(*dto.Name) == "" {
		return nil, apperr.Validation(msg.GetMessage("todo.error.empty-name"))
	}

	update, err := uc.gateway.UpdateByID(todoID, userID, dto)
	if err != nil {
		return nil, err
	}

	uc.invalidateList(ctx, userID)
	uc.publishEvent(model.TodoEvent{
		Type:    model.TodoUpdated,
		TodoID:  todoID,
		UserID:  userID,
		Name:    update.Name,
		DueDate: update.DueDate,
	})

	return update, nil
}

// Delete is idempotent: removing an id that is already gone is treated as
// success, though the miss is logged.
func (uc *todoUseCase) Delete(ctx context.Context, todoID string, userID string) error {
	removed, err := uc.gateway.DeleteByID(todoID, userID)
	if err != nil {
		return err
	}

	uc.invalidateList(ctx, userID)

	if !removed {
		log.Infof("Delete of todo %s for user %s matched no item", todoID, userID)
		return nil
	}

	uc.publishEvent(model.TodoEvent{
		Type:   model.TodoDeleted,
		TodoID: todoID,
		UserID: userID,
	})

	return nil
}

// GenerateUploadUrl issues a presigned upload URL for a fresh attachment id
// and associates the derived retrieval URL with the item. The conditional
// write guards ownership; a miss surfaces as not-found.
func (uc *todoUseCase) GenerateUploadUrl(ctx context.Context, todoID string, userID string) (string, error) {
	attachmentID := uc.generateID()

	uploadUrl, err := uc.attachments.UploadUrl(ctx, attachmentID)
	if err != nil {
		return "", err
	}

	attachmentUrl := uc.attachments.AttachmentUrl(attachmentID)
	if err := uc.gateway.UpdateAttachmentUrl(todoID, userID, attachmentUrl); err != nil {
		return "", err
	}

	uc.invalidateList(ctx, userID)
	uc.publishEvent(model.TodoEvent{
		Type:   model.TodoAttachment,
		TodoID: todoID,
		UserID: userID,
	})

	return uploadUrl, nil
}

func (uc *todoUseCase) PurgeDone(olderThanDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays).Format(createdAtLayout)
	return uc.gateway.DeleteDoneBefore(cutoff)
}

// NotifyDueSoon publishes a reminder event for every open item whose due date
// falls inside the given window. Returns the number of items found.
func (uc *todoUseCase) NotifyDueSoon(windowHours int) (int, error) {
	now := time.Now().UTC()
	from := now.Format(dueDateLayout)
	to := now.Add(time.Duration(windowHours) * time.Hour).Format(dueDateLayout)

	items, err := uc.gateway.FindDueBetween(from, to)
	if err != nil {
		return 0, err
	}

	if len(items) == 0 || uc.sender == nil || uc.config.RemindersQueue == "" {
		return len(items), nil
	}

	messages := make([]queue.BatchMessage, len(items))
	for i, item := range items {
		messages[i] = queue.BatchMessage{
			MessageID: item.TodoID,
			Body: model.TodoEvent{
				Type:       model.TodoDueSoon,
				TodoID:     item.TodoID,
				UserID:     item.UserID,
				Name:       item.Name,
				DueDate:    item.DueDate,
				OccurredAt: now.Format(createdAtLayout),
			},
		}
	}

	result, err := uc.sender.SendMessageBatch(uc.config.RemindersQueue, messages)
	if err != nil {
		return len(items), err
	}
	if len(result.Failed) > 0 {
		log.Warnf("Failed to publish %d of %d due-soon reminders", len(result.Failed), len(items))
	}

	return len(items), nil
}

// publishEvent sends the event to the configured events queue. Publishing is
// best effort: a queue failure never fails the mutation that produced it.
func (uc *todoUseCase) publishEvent(event model.TodoEvent) {
	if uc.sender == nil || uc.config.EventsQueue == "" {
		return
	}

	event.OccurredAt = time.Now().UTC().Format(createdAtLayout)
	if err := uc.sender.SendMessage(uc.config.EventsQueue, event); err != nil {
		log.Warnf("Failed to publish %s event for todo %s: %v", event.Type, event.TodoID, err)
	}
}

func (uc *todoUseCase) invalidateList(ctx context.Context, userID string) {
	if uc.listCache == nil {
		return
	}
	if err := uc.listCache.Delete(ctx, userID); err != nil {
		log.Warnf("Todo list cache invalidation failed for user %s: %v", userID, err)
	}
}
