package main

import (
	"context"
	"time"

	_ "todo-api/configs"
	_ "todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/application/processor"
	"todo-api/internal/application/schedule"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/gateway/storage"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/internal/infra/aws"
	"todo-api/internal/infra/database/gorm"
	"todo-api/internal/infra/database/sqlc"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
	"todo-api/pkg/sqs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx := context.Background()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetString("app.server.context-path")
	public := e.Group(contextPath)
	api := e.Group(contextPath)
	api.Use(middleware.JWTAuth([]byte(resource.GetString("app.auth.jwt-secret"))))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Redis
	redisConfig := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password"))
	redisClient := redis.NewClient(redisConfig)

	listCache := redis.NewCache(redisClient, redis.NewCacheOptions().
		WithCacheName("todo_list").
		WithTTL(resource.GetDuration("app.todo.list-cache-ttl")))

	rateLimiter := redis.NewRateLimiter(redisClient, redis.NewRateLimiterOptions().
		WithMaxTransactionsPerMinute(resource.GetInt("app.todo.attachment-rate-limit")).
		WithNamespace("todo_attachments"))

	// Init AWS
	presignClient := aws.NewS3PresignClient()
	sqsClient := aws.NewSqsClient()
	sender := aws.NewSQSSenderAdapter(sqsClient)

	attachmentGateway := storage.NewS3AttachmentGateway(
		presignClient,
		resource.GetString("app.cloud.s3.attachments-bucket"),
		time.Duration(resource.GetInt("app.cloud.s3.upload-url-expiration"))*time.Second,
	)

	// Init TodoGateway, switched by the configured engine
	var todoGateway db.TodoGateway
	var healthDBGateway db.HealthDBGateway
	if resource.GetString("app.db.engine") == "gorm" {
		todoGateway = db.NewGormTodoGateway(gorm.Db)
		healthDBGateway = db.NewGormHealthDBGateway(gorm.Db)
	} else {
		todoGateway = db.NewSQLCTodoGateway(sqlc.Db)
		healthDBGateway = db.NewSQLCHealthDBGateway(sqlc.Db)
	}

	cacheHealthGateway := cache.NewRedisHealthGateway(redisClient)
	queueHealthGateway := queue.NewQueueHealthGateway()

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(healthDBGateway, cacheHealthGateway, queueHealthGateway)
	todoUseCase := todo.NewTodoUseCase(todoGateway, attachmentGateway, sender, listCache, &todo.Config{
		EventsQueue:    resource.GetString("app.cloud.sqs.events-queue"),
		RemindersQueue: resource.GetString("app.cloud.sqs.reminders-queue"),
	}, nil)

	// Init Controller
	healthController := controller.NewHealthController(public, healthUseCase)
	todoController := controller.NewTodoController(api, todoUseCase, rateLimiter)

	// Init Routes
	healthController.InitHealthRoutes()
	todoController.InitTodoRoutes()

	// Init reminder worker
	remindersQueue := resource.GetString("app.cloud.sqs.reminders-queue")
	reminderWorker, err := sqs.NewWorker(sqsClient, remindersQueue, processor.NewReminderProcessor(), &sqs.WorkerConfig{
		PoolSize: resource.GetInt("app.cloud.sqs.reminder-pool-size"),
	})
	if err != nil {
		log.Errorf("Failed to initialize reminder worker, reminders will not be consumed: %v", err)
	} else {
		queueHealthGateway.RegisterWorker("reminders", reminderWorker)
		go reminderWorker.Start(ctx)
	}

	// Init Schedule
	todoScheduler := schedule.NewTodoScheduler(todoUseCase, redisClient, &schedule.TodoSchedulerConfig{
		PurgeCron:           resource.GetString("app.todo.purge-cron"),
		ReminderCron:        resource.GetString("app.todo.reminder-cron"),
		PurgeRetentionDays:  resource.GetInt("app.todo.purge-retention-days"),
		ReminderWindowHours: resource.GetInt("app.todo.reminder-window-hours"),
	})
	todoScheduler.InitTodoScheduleTasks(ctx)

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
