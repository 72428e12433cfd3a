package models

import "time"

// GateStatus is the stored state of a (category, level) gate.
type GateStatus string

const (
	GateLocked     GateStatus = "locked"
	GateInProgress GateStatus = "in-progress"
	GatePassed     GateStatus = "passed"
)

// NodeState is the derived, UI-facing view of a skill-tree node.
type NodeState string

const (
	NodeLocked     NodeState = "locked"
	NodeOpen       NodeState = "open"
	NodeInProgress NodeState = "in-progress"
	NodePassed     NodeState = "passed"
)

// GateProgress tracks consecutive clean sessions toward clearing the gate
// of one (category, level). Exactly one live record exists per pair the
// user has ever touched.
type GateProgress struct {
	Category          Category   `json:"category"`
	Level             int        `json:"level"`
	Status            GateStatus `json:"status"`
	ConsecutivePasses int        `json:"consecutive_passes"`
	LastSessionDate   *time.Time `json:"last_session_date,omitempty"`
}
