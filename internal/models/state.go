package models

// State is the activation state of reference data and wallets.
type State string

const (
	StateActive   State = "ACTIVE"
	StateInactive State = "INACTIVE"
)

// OperationState is the lifecycle state of an operation.
type OperationState string

const (
	OperationStatePending  OperationState = "PENDING"
	OperationStateAccepted OperationState = "ACCEPTED"
	OperationStateReverted OperationState = "REVERTED"
)

// LimitCountedStates are the operation states that consume a user limit.
var LimitCountedStates = []OperationState{OperationStatePending, OperationStateAccepted}

// Participants tells which sides an operation of a transaction type requires.
// The same values are used by LimitType.Check to tell which sides consume a limit.
type Participants string

const (
	ParticipantsOwner       Participants = "OWNER"
	ParticipantsBeneficiary Participants = "BENEFICIARY"
	ParticipantsBoth        Participants = "BOTH"
)

// Includes reports whether side is covered by p.
func (p Participants) Includes(side Participants) bool {
	return p == ParticipantsBoth || p == side
}

// PeriodStart selects how limit periods are measured.
type PeriodStart string

const (
	// PeriodStartDate counts usage since the start of the current calendar day/month/year.
	PeriodStartDate PeriodStart = "DATE"
	// PeriodStartInterval counts usage over trailing 24h/30d/365d windows.
	PeriodStartInterval PeriodStart = "INTERVAL"
)

// Analysis tags attached to operations that consumed a limit.
const (
	TagDateLimitIncluded            = "DATE_LIMIT_INCLUDED"
	TagDailyIntervalLimitIncluded   = "DAILY_INTERVAL_LIMIT_INCLUDED"
	TagMonthlyIntervalLimitIncluded = "MONTHLY_INTERVAL_LIMIT_INCLUDED"
	TagYearlyIntervalLimitIncluded  = "YEARLY_INTERVAL_LIMIT_INCLUDED"
)
