package schedule

import (
	"context"
	"time"

	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/redis"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// TodoSchedulerConfig holds configuration for the todo maintenance scheduler
type TodoSchedulerConfig struct {
	PurgeCron           string
	ReminderCron        string
	PurgeRetentionDays  int
	ReminderWindowHours int
	LockTTL             time.Duration
	RefreshInterval     time.Duration
}

// TodoScheduler runs the periodic maintenance tasks: purging done items past
// the retention window and publishing due-soon reminders. A distributed lock
// makes sure only one instance runs them.
type TodoScheduler struct {
	cron        *cron.Cron
	useCase     todo.UseCase
	redisClient *redis.Client
	config      *TodoSchedulerConfig
}

// NewTodoScheduler creates a new todo scheduler with distributed locking support
func NewTodoScheduler(useCase todo.UseCase, redisClient *redis.Client, config *TodoSchedulerConfig) *TodoScheduler {
	return &TodoScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
	}
}

// InitTodoScheduleTasks initializes todo maintenance tasks with distributed locking
func (s *TodoScheduler) InitTodoScheduleTasks(ctx context.Context) {
	go func() {
		lock := redis.NewScheduledTaskLock(
			s.redisClient,
			"todo_maintenance_scheduler",
			s.getLockTTL(),
			s.getRefreshInterval(),
			"todo_schedules",
		)

		err := lock.Lock(ctx)
		if err != nil {
			log.Errorf("Failed to acquire distributed lock, todo scheduler will not be initialized: %v", err)
			return
		}

		// Start auto-refresh to maintain the lock indefinitely
		refreshErrChan := lock.AutoRefresh(ctx)

		if _, err = s.cron.AddFunc(s.config.PurgeCron, s.ExecutePurgeTask); err != nil {
			log.Errorf("Failed to schedule purge task, cron will not be started: %v", err)
			return
		}
		if _, err = s.cron.AddFunc(s.config.ReminderCron, s.ExecuteReminderTask); err != nil {
			log.Errorf("Failed to schedule reminder task, cron will not be started: %v", err)
			return
		}

		s.cron.Start()
		log.Infof("Todo maintenance scheduler started with purge cron %q and reminder cron %q",
			s.config.PurgeCron, s.config.ReminderCron)

		// Monitor auto-refresh errors and stop scheduler if refresh fails
		err = <-refreshErrChan

		if s.cron != nil {
			cronCtx := s.cron.Stop()
			<-cronCtx.Done()
		}

		if err != nil {
			log.Errorf("Todo maintenance scheduler stopped due to auto-refresh failure: %v", err)
		} else {
			log.Info("Todo maintenance scheduler stopped gracefully")
		}
	}()
}

// ExecutePurgeTask removes done items older than the retention window
func (s *TodoScheduler) ExecutePurgeTask() {
	requestID := uuid.New().String()

	log.Info("Todo purge task triggered", zap.String("request_id", requestID))

	purged, err := s.useCase.PurgeDone(s.config.PurgeRetentionDays)
	if err != nil {
		log.Error("Failed to purge done todos", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info("Todo purge task completed", zap.String("request_id", requestID), zap.Int64("purged", purged))
}

// ExecuteReminderTask publishes reminders for items due inside the window
func (s *TodoScheduler) ExecuteReminderTask() {
	requestID := uuid.New().String()

	log.Info("Todo reminder task triggered", zap.String("request_id", requestID))

	found, err := s.useCase.NotifyDueSoon(s.config.ReminderWindowHours)
	if err != nil {
		log.Error("Failed to publish due-soon reminders", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info("Todo reminder task completed", zap.String("request_id", requestID), zap.Int("due_soon", found))
}

// Stop gracefully stops the scheduler
func (s *TodoScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *TodoScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *TodoScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return 1 * time.Minute
}
