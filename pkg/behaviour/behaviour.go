// Package behaviour defines the behaviour-tree snapshot model shared by the
// feed, the dotcode projection, and the CLI.
//
// A snapshot is a flat, ordered collection of [Behaviour] records with
// parent/child relations expressed through ChildIDs. Ownership is already
// resolved upstream; this package does not compute topology. ChildIDs are
// not required to form a tree: cycles and shared children are representable,
// and a child id may reference a record absent from the snapshot (a dangling
// reference, surfaced by consumers that need to resolve it).
package behaviour

import (
	"time"

	"github.com/google/uuid"
)

// Type identifies the composite role of a behaviour within the tree.
type Type int32

// Behaviour types. Unknown values are tolerated by all consumers and
// degrade to display defaults rather than erroring.
const (
	TypeBehaviour Type = iota // generic leaf or decorator
	TypeSequence              // runs children in order until one fails
	TypeSelector              // runs children in order until one succeeds
)

// String returns the human-readable type name, or "" for unknown values.
func (t Type) String() string {
	switch t {
	case TypeBehaviour:
		return "Behaviour"
	case TypeSequence:
		return "Sequence"
	case TypeSelector:
		return "Selector"
	default:
		return ""
	}
}

// Status is the runtime execution state of a behaviour.
type Status int32

// Behaviour statuses as reported by the tree runtime.
const (
	StatusInvalid Status = iota // not ticked yet, or reset
	StatusRunning
	StatusSuccess
	StatusFailure
)

// String returns the human-readable status name, or "" for unknown values.
func (s Status) String() string {
	switch s {
	case StatusInvalid:
		return "Invalid"
	case StatusRunning:
		return "Running"
	case StatusSuccess:
		return "Success"
	case StatusFailure:
		return "Failure"
	default:
		return ""
	}
}

// Behaviour is one node record in a tree snapshot. Records are read-only to
// consumers; a fresh snapshot replaces the previous one wholesale.
type Behaviour struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	ClassName string      `json:"class_name,omitempty"`
	Type      Type        `json:"type"`
	Status    Status      `json:"status"`
	Message   string      `json:"message,omitempty"`
	ChildIDs  []uuid.UUID `json:"child_ids,omitempty"`
}

// Tree is a timestamped snapshot of every behaviour in the tree, in the
// runtime's traversal order. An empty Behaviours slice means "no data yet"
// and is a valid snapshot, not an error.
type Tree struct {
	Stamp      time.Time   `json:"stamp"`
	Behaviours []Behaviour `json:"behaviours"`
}

// Root returns the first behaviour that no other behaviour lists as a
// child, or nil when the snapshot is empty. When the snapshot is a proper
// tree this is its root; for degenerate shapes it falls back to the first
// record.
func (t *Tree) Root() *Behaviour {
	if len(t.Behaviours) == 0 {
		return nil
	}
	owned := make(map[uuid.UUID]bool)
	for _, b := range t.Behaviours {
		for _, id := range b.ChildIDs {
			owned[id] = true
		}
	}
	for i := range t.Behaviours {
		if !owned[t.Behaviours[i].ID] {
			return &t.Behaviours[i]
		}
	}
	return &t.Behaviours[0]
}

// Lookup returns the behaviour with the given id, or nil if the snapshot
// does not contain it.
func (t *Tree) Lookup(id uuid.UUID) *Behaviour {
	for i := range t.Behaviours {
		if t.Behaviours[i].ID == id {
			return &t.Behaviours[i]
		}
	}
	return nil
}
