package emitters

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sbilibin2017/gw-operation-ledger/internal/logger"
	"github.com/sbilibin2017/gw-operation-ledger/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter abstracts the Kafka writer used for publishing ledger events.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaEventEmitter publishes ledger events, one writer per topic.
// Publishing is fire-and-forget: failures are logged and never reach the caller.
type KafkaEventEmitter struct {
	operations KafkaWriter
	userLimits KafkaWriter
	now        func() time.Time
}

// NewKafkaEventEmitter creates a new KafkaEventEmitter. Either writer may be nil.
func NewKafkaEventEmitter(operations, userLimits KafkaWriter) *KafkaEventEmitter {
	return &KafkaEventEmitter{
		operations: operations,
		userLimits: userLimits,
		now:        time.Now,
	}
}

// PendingOperation announces the operations produced by one creation request.
// Messages are keyed by the debited wallet, or the credited one when there is no owner,
// so events of one wallet stay ordered.
func (e *KafkaEventEmitter) PendingOperation(ctx context.Context, owner, beneficiary *models.Operation) {
	var key string
	switch {
	case owner != nil && owner.OwnerWalletID != nil:
		key = owner.OwnerWalletID.String()
	case beneficiary != nil && beneficiary.BeneficiaryWalletID != nil:
		key = beneficiary.BeneficiaryWalletID.String()
	case owner != nil:
		key = owner.ID.String()
	case beneficiary != nil:
		key = beneficiary.ID.String()
	default:
		return
	}

	e.publish(ctx, e.operations, key, models.OperationEvent{
		Type:                 models.EventPendingOperation,
		OwnerOperation:       owner,
		BeneficiaryOperation: beneficiary,
		OccurredAt:           e.now().UTC(),
	})
}

// CreatedUserLimit announces a user limit cloned from the compliance defaults.
func (e *KafkaEventEmitter) CreatedUserLimit(ctx context.Context, l *models.UserLimit) {
	if l == nil {
		return
	}

	e.publish(ctx, e.userLimits, l.ID.String(), models.UserLimitEvent{
		Type:       models.EventCreatedUserLimit,
		UserLimit:  l,
		OccurredAt: e.now().UTC(),
	})
}

// Close closes both writers.
func (e *KafkaEventEmitter) Close() error {
	var firstErr error
	for _, w := range []KafkaWriter{e.operations, e.userLimits} {
		if w == nil {
			continue
		}
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (e *KafkaEventEmitter) publish(ctx context.Context, w KafkaWriter, key string, event any) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "key", key)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "key", key, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "key", key, "error", err)
		return
	}
	logger.Log.Infow("Event published to Kafka", "key", key)
}
