package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SimulationRecord is an append-only history entry of one calculator run.
// Inputs are kept exactly as the caller sent them; Outputs is an empty
// object when the run failed.
type SimulationRecord struct {
	ID             uuid.UUID       `json:"id"`
	UserID         string          `json:"user_id"`
	SimulationType string          `json:"simulation_type"`
	Inputs         json.RawMessage `json:"inputs"`
	Outputs        json.RawMessage `json:"outputs"`
	CreatedAt      time.Time       `json:"created_at"`
}

var emptyObject = json.RawMessage(`{}`)

// NewSimulationRecord creates a history record with a fresh ID.
// Empty or null inputs and outputs are stored as {}.
func NewSimulationRecord(
	userID, simulationType string,
	inputs, outputs json.RawMessage,
	now time.Time,
) (*SimulationRecord, error) {
	r := &SimulationRecord{
		ID:             uuid.New(),
		UserID:         userID,
		SimulationType: simulationType,
		Inputs:         objectOrEmpty(inputs),
		Outputs:        objectOrEmpty(outputs),
		CreatedAt:      now.UTC(),
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks if the SimulationRecord has valid data.
func (r *SimulationRecord) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyUserID)
	}

	// The kind is stored even when it is not a supported calculator, but it
	// must be present.
	if r.SimulationType == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptySimulationType)
	}

	for _, payload := range []json.RawMessage{r.Inputs, r.Outputs} {
		if !json.Valid(payload) {
			return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidPayload)
		}
	}

	return nil
}

func objectOrEmpty(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return emptyObject
	}
	return trimmed
}
