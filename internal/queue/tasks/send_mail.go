package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/uptraa/platform/internal/mail"
	"github.com/uptraa/platform/pkg/logger"
)

// TypeSendMail is the task type carrying a rendered email.
const TypeSendMail = "send-mail"

// NewSendMailTask serializes msg as {to, subject, html}.
func NewSendMailTask(msg mail.Message) (*asynq.Task, error) {
	pb, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal send-mail payload: %w", err)
	}
	return asynq.NewTask(TypeSendMail, pb), nil
}

// SendMailHandler delivers queued emails. Failures are logged and dropped so
// the worker moves on to the next message.
type SendMailHandler struct {
	sender mail.Sender
}

func NewSendMailHandler(sender mail.Sender) *SendMailHandler {
	return &SendMailHandler{sender: sender}
}

func (h *SendMailHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var msg mail.Message
	if err := json.Unmarshal(t.Payload(), &msg); err != nil {
		logger.L().Error("invalid send-mail payload", zap.Error(err))
		return nil
	}

	if err := h.sender.Send(ctx, msg); err != nil {
		logger.L().Error("failed to send email", zap.String("to", msg.To), zap.Error(err))
		return nil
	}

	logger.L().Info("email sent", zap.String("to", msg.To))
	return nil
}
