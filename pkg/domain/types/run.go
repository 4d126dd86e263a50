package types

import "github.com/google/uuid"

// RunID identifies a single invocation of the updater. It is attached to logs and exported rows.
type RunID string

func NewRunID() RunID {
	return RunID(uuid.Must(uuid.NewV7()).String())
}

func (x RunID) String() string {
	return string(x)
}
