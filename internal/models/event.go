package models

import "time"

// Event types published to Kafka.
const (
	EventPendingOperation = "pending_operation"
	EventCreatedUserLimit = "created_user_limit"
)

// OperationEvent announces freshly created pending operations. Either side may be nil.
type OperationEvent struct {
	Type                 string     `json:"type"`
	OwnerOperation       *Operation `json:"owner_operation"`
	BeneficiaryOperation *Operation `json:"beneficiary_operation"`
	OccurredAt           time.Time  `json:"occurred_at"`
}

// UserLimitEvent announces a user limit cloned from the compliance defaults.
type UserLimitEvent struct {
	Type       string     `json:"type"`
	UserLimit  *UserLimit `json:"user_limit"`
	OccurredAt time.Time  `json:"occurred_at"`
}
