package models

// MetricKind tags which metric an exercise target is measured in.
type MetricKind string

const (
	MetricReps MetricKind = "reps"
	MetricHold MetricKind = "hold"
)

// Metric is the per-set target of a criterion: either a rep count or a
// hold duration in seconds, never both.
type Metric struct {
	Kind  MetricKind `json:"kind"`
	Value int        `json:"value"`
}

// ExerciseCriterion is one required exercise within a gate.
type ExerciseCriterion struct {
	ExerciseID string `json:"exercise_id"`
	TargetSets int    `json:"target_sets"`
	Target     Metric `json:"target"`
}

// GateCriteria holds the requirements to clear the gate of one
// (category, level) pair. Externally supplied and immutable; a missing
// entry means "no gate defined" for that level, not an error.
type GateCriteria struct {
	Category                  Category            `json:"category"`
	Level                     int                 `json:"level"`
	RequiredConsecutivePasses int                 `json:"required_consecutive_passes"`
	Exercises                 []ExerciseCriterion `json:"exercises"`
}

//
// For TOML parsing only
//

type GatesImportTOML struct {
	Gates []GateTOML `toml:"gate"`
}

type GateTOML struct {
	Category       string          `toml:"category"`
	Level          int             `toml:"level"`
	RequiredPasses int             `toml:"required_passes"`
	Exercises      []CriterionTOML `toml:"exercise"`
}

type CriterionTOML struct {
	Exercise    string `toml:"exercise"`
	Sets        int    `toml:"sets"`
	Reps        int    `toml:"reps,omitempty"`
	HoldSeconds int    `toml:"hold_seconds,omitempty"`
}
