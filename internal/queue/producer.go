// Package queue carries rendered emails from the auth service to the mail
// worker over asynq.
package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/uptraa/platform/internal/mail"
	"github.com/uptraa/platform/internal/queue/tasks"
	"github.com/uptraa/platform/pkg/database"
	"github.com/uptraa/platform/pkg/logger"
)

// MailQueue is the asynq queue mail tasks are placed on.
const MailQueue = "mail"

// ErrNotConnected is returned by Publish before Connect succeeds or after Close.
var ErrNotConnected = errors.New("mail queue producer is not connected")

// Producer enqueues send-mail tasks.
type Producer struct {
	opt asynq.RedisClientOpt

	mu     sync.RWMutex
	client *asynq.Client
}

func NewProducer(opt asynq.RedisClientOpt) *Producer {
	return &Producer{opt: opt}
}

// Connect checks the broker is reachable and opens the client.
func (p *Producer) Connect(ctx context.Context) error {
	rdb, err := database.OpenRedis(ctx, p.opt.Addr, p.opt.Password)
	if err != nil {
		return err
	}
	_ = rdb.Close()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client == nil {
		p.client = asynq.NewClient(p.opt)
	}
	logger.L().Info("mail queue producer connected", zap.String("addr", p.opt.Addr))
	return nil
}

// Connected reports whether Publish can be called.
func (p *Producer) Connected() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.client != nil
}

// Publish enqueues msg once. Failed deliveries are not retried.
func (p *Producer) Publish(ctx context.Context, msg mail.Message) error {
	p.mu.RLock()
	client := p.client
	p.mu.RUnlock()
	if client == nil {
		return ErrNotConnected
	}

	task, err := tasks.NewSendMailTask(msg)
	if err != nil {
		return err
	}
	info, err := client.EnqueueContext(ctx, task, asynq.Queue(MailQueue), asynq.MaxRetry(0))
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", tasks.TypeSendMail, err)
	}
	logger.L().Info("mail task enqueued", zap.String("task_id", info.ID), zap.String("queue", info.Queue))
	return nil
}

func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client == nil {
		return nil
	}
	err := p.client.Close()
	p.client = nil
	return err
}
