// Package staking holds the typed responses of the delegation queries.
package staking

// Summary is the response of the "delegatorSummary" call.
type Summary struct {
	TotalDelegated      string `json:"total_delegated"`
	TotalPendingRewards string `json:"total_pending_rewards"`
	DelegationCount     int    `json:"delegation_count"`
	TotalEarnedRewards  string `json:"total_earned_rewards"`
}

// Delegation is one active delegation to a validator, from "delegations".
type Delegation struct {
	ValidatorAddress string `json:"validator_address"`
	Amount           string `json:"amount"`
	PendingRewards   string `json:"pending_rewards"`
	Status           string `json:"status"`
	DelegatedAt      int64  `json:"delegated_at"`
	LastClaimedAt    *int64 `json:"last_claimed_at,omitempty"`
}

// RewardEventType tags a reward history entry.
type RewardEventType string

const (
	RewardAccrued     RewardEventType = "Accrued"
	RewardClaimed     RewardEventType = "Claimed"
	RewardDelegated   RewardEventType = "Delegated"
	RewardUndelegated RewardEventType = "Undelegated"
)

// RewardEvent is one entry of the rewards history.
type RewardEvent struct {
	EventType        RewardEventType `json:"event_type"`
	ValidatorAddress string          `json:"validator_address"`
	Amount           string          `json:"amount"`
	Timestamp        int64           `json:"timestamp"`
	TxHash           string          `json:"tx_hash,omitempty"`
}

// Rewards is the response of the "delegatorRewards" call.
type Rewards struct {
	TotalClaimed string        `json:"total_claimed"`
	TotalPending string        `json:"total_pending"`
	History      []RewardEvent `json:"history"`
}
