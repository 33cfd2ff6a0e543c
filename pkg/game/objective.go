package game

import "fmt"

type ObjectiveKind string

const (
	ObjectiveKill         ObjectiveKind = "kill"
	ObjectiveCollectIntel ObjectiveKind = "collect_intel"
)

// TargetState tracks a kill target's fate.
type TargetState string

const (
	TargetAlive      TargetState = "alive"
	TargetEliminated TargetState = "eliminated"
	TargetEscaped    TargetState = "escaped"
)

// Objective is a mission goal generated from world content: one Kill per
// target person, one CollectIntel per intel item.
type Objective struct {
	Kind        ObjectiveKind `json:"kind"`
	Name        string        `json:"name"`
	Completed   bool          `json:"completed"`
	TargetState TargetState   `json:"target_state,omitempty"`
}

// InfoString is the short form written into clue items.
func (o Objective) InfoString() string {
	if o.Kind == ObjectiveKill {
		return "Kill " + o.Name
	}
	return "Intel " + o.Name
}

func (o Objective) String() string {
	if o.Kind == ObjectiveKill {
		return fmt.Sprintf("Kill: %s %s", o.Name, o.TargetState)
	}
	if o.Completed {
		return fmt.Sprintf("CollectIntel: %s Completed", o.Name)
	}
	return "CollectIntel: " + o.Name
}
