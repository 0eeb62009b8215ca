package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/uptraa/platform/internal/queue/tasks"
	"github.com/uptraa/platform/pkg/database"
	"github.com/uptraa/platform/pkg/logger"
	"github.com/uptraa/platform/pkg/utils"
)

// ErrGaveUp is returned by Run when the broker stayed unreachable through every retry.
var ErrGaveUp = errors.New("mail consumer gave up connecting")

// StartupBackoff waits 1, 2, 4, 8 and 16 seconds between connection attempts.
var StartupBackoff = utils.Backoff{MaxRetries: 5, Delay: time.Second}

// Consumer runs the send-mail worker.
type Consumer struct {
	opt         asynq.RedisClientOpt
	handler     asynq.Handler
	concurrency int
	backoff     utils.Backoff

	ping  func(ctx context.Context) error
	sleep func(ctx context.Context, d time.Duration) error
	serve func(ctx context.Context) error
}

func NewConsumer(opt asynq.RedisClientOpt, handler asynq.Handler, concurrency int) *Consumer {
	c := &Consumer{opt: opt, handler: handler, concurrency: concurrency, backoff: StartupBackoff}
	c.ping = c.pingRedis
	c.sleep = sleepCtx
	c.serve = c.runServer
	return c
}

// Run connects with backoff and then processes tasks until ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.connect(ctx); err != nil {
		return err
	}
	return c.serve(ctx)
}

func (c *Consumer) connect(ctx context.Context) error {
	attempts := c.backoff.MaxRetries + 1
	for attempt := 0; ; attempt++ {
		err := c.ping(ctx)
		if err == nil {
			return nil
		}
		logger.L().Error("failed to start mail consumer",
			zap.Int("attempt", attempt+1), zap.Int("max_attempts", attempts), zap.Error(err))
		if attempt >= c.backoff.MaxRetries {
			logger.L().Error("max retries reached, mail consumer disabled")
			return fmt.Errorf("%w: %v", ErrGaveUp, err)
		}
		if err := c.sleep(ctx, c.backoff.NextDelay(attempt)); err != nil {
			return err
		}
	}
}

func (c *Consumer) pingRedis(ctx context.Context) error {
	rdb, err := database.OpenRedis(ctx, c.opt.Addr, c.opt.Password)
	if err != nil {
		return err
	}
	return rdb.Close()
}

func (c *Consumer) runServer(ctx context.Context) error {
	srv := asynq.NewServer(c.opt, asynq.Config{
		Concurrency: c.concurrency,
		Queues:      map[string]int{MailQueue: 1},
		Logger:      logger.L().Sugar(),
	})

	mux := asynq.NewServeMux()
	mux.Handle(tasks.TypeSendMail, c.handler)

	if err := srv.Start(mux); err != nil {
		return fmt.Errorf("start mail consumer: %w", err)
	}
	logger.L().Info("mail consumer started", zap.String("task", tasks.TypeSendMail), zap.Int("concurrency", c.concurrency))

	<-ctx.Done()
	// Allow in-flight tasks to finish gracefully
	srv.Shutdown()
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
