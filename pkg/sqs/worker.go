package sqs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"todo-api/pkg/log"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// HandlerFunc defines a function that handles a SQS Message
type HandlerFunc func(msg *types.Message) error

// HandleMessage implements the Handler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(msg *types.Message) error {
	return f(msg)
}

// Handler defines an interface that processes a SQS Message
type Handler interface {
	HandleMessage(msg *types.Message) error
}

// WorkerHealth is the health snapshot reported by a Worker
type WorkerHealth struct {
	Status  HealthStatus
	Details map[string]string
}

// WorkerConfig defines the configuration options for a Worker
type WorkerConfig struct {
	MaxNumberOfMessages int32
	WaitTimeSeconds     int32
	PoolSize            int
}

// Worker polls and processes messages from a SQS queue
type Worker struct {
	sqsClient           SQSClient
	queueName           string
	queueURL            string
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	poolSize            int
	handler             Handler

	mutex        sync.RWMutex
	running      bool
	lastPollErr  error
	lastPollTime time.Time
}

// NewWorker creates and returns a new Worker.
//
// If the provided WorkerConfig is nil or its fields are zero,
// the following defaults will be used:
//   - MaxNumberOfMessages: 10
//   - WaitTimeSeconds: 20
//   - PoolSize: 1
//
// Validations:
//   - MaxNumberOfMessages must be between 1 and 10.
//   - WaitTimeSeconds must be between 1 and 20.
//   - PoolSize must be greater than 0.
func NewWorker(sqsClient SQSClient, queueName string, handler Handler, config *WorkerConfig) (*Worker, error) {
	var maxMessages int32 = 10
	var waitTime int32 = 20
	poolSize := 1

	if config != nil {
		if config.MaxNumberOfMessages != 0 {
			maxMessages = config.MaxNumberOfMessages
		}
		if config.WaitTimeSeconds != 0 {
			waitTime = config.WaitTimeSeconds
		}
		if config.PoolSize != 0 {
			poolSize = config.PoolSize
		}
	}

	if maxMessages < 1 || maxMessages > 10 {
		return nil, errors.New("maxNumberOfMessages must be between 1 and 10")
	}
	if waitTime < 1 || waitTime > 20 {
		return nil, errors.New("waitTimeSeconds must be between 1 and 20")
	}
	if poolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}

	result, err := sqsClient.GetQueueUrl(context.Background(), &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to get queue URL: %w", err)
	}

	return &Worker{
		sqsClient:           sqsClient,
		queueName:           queueName,
		queueURL:            *result.QueueUrl,
		maxNumberOfMessages: maxMessages,
		waitTimeSeconds:     waitTime,
		poolSize:            poolSize,
		handler:             handler,
	}, nil
}

// Start begins polling messages and processing them concurrently.
// It will spawn PoolSize number of pollers that keep polling messages
// until the provided context is canceled.
func (w *Worker) Start(ctx context.Context) {
	w.mutex.Lock()
	w.running = true
	w.mutex.Unlock()

	var wg sync.WaitGroup

	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.pollMessages(ctx)
		}()
	}

	wg.Wait()

	w.mutex.Lock()
	w.running = false
	w.mutex.Unlock()
}

// HealthCheck reports the worker status and its last poll outcome
func (w *Worker) HealthCheck() WorkerHealth {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	details := map[string]string{
		"queue":   w.queueName,
		"running": strconv.FormatBool(w.running),
	}
	if !w.lastPollTime.IsZero() {
		details["last_poll"] = w.lastPollTime.UTC().Format(time.RFC3339)
	}

	status := StatusUp
	if !w.running {
		status = StatusDown
	}
	if w.lastPollErr != nil {
		status = StatusDown
		details["last_error"] = w.lastPollErr.Error()
	}

	return WorkerHealth{Status: status, Details: details}
}

func (w *Worker) pollMessages(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			output, err := w.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
				QueueUrl:            &w.queueURL,
				MaxNumberOfMessages: w.maxNumberOfMessages,
				WaitTimeSeconds:     w.waitTimeSeconds,
			})

			w.mutex.Lock()
			w.lastPollErr = err
			w.lastPollTime = time.Now()
			w.mutex.Unlock()

			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Errorf("Failed to receive messages from queue %s: %v", w.queueName, err)
				// brief pause so a broken queue does not spin the poller
				select {
				case <-ctx.Done():
					return
				case <-time.After(time.Second):
				}
				continue
			}

			for _, msg := range output.Messages {
				go w.handleMessage(ctx, msg)
			}
		}
	}
}

func (w *Worker) handleMessage(ctx context.Context, msg types.Message) {
	err := w.handler.HandleMessage(&msg)
	if err != nil {
		log.Errorf("Error processing message ID %s: %v", safeMessageID(&msg), err)
		return
	}

	_, err = w.sqsClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      &w.queueURL,
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		log.Errorf("Failed to delete message ID %s: %v", safeMessageID(&msg), err)
	} else {
		log.Debugf("Successfully deleted message ID %s", safeMessageID(&msg))
	}
}

func safeMessageID(msg *types.Message) string {
	if msg == nil || msg.MessageId == nil {
		return ""
	}
	return *msg.MessageId
}
