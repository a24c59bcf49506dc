package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/domain/simulation"
	"github.com/phrazzld/finstart-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type simulationFixture struct {
	svc      *simulationServiceImpl
	history  *mocks.MockSimulationHistoryStore
	progress *mocks.MockProgressStore
}

func newSimulationFixture(t *testing.T) *simulationFixture {
	t.Helper()

	f := &simulationFixture{
		history:  &mocks.MockSimulationHistoryStore{},
		progress: &mocks.MockProgressStore{},
	}
	progressSvc := newTestProgressService(t, f.progress)

	svc, err := NewSimulationService(simulation.NewDefaultEngine(), f.history, progressSvc, nil)
	require.NoError(t, err)
	f.svc = svc.(*simulationServiceImpl)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func TestNewSimulationService_NilDependencies(t *testing.T) {
	t.Parallel()

	progress, err := NewProgressService(&mocks.MockProgressStore{}, nil)
	require.NoError(t, err)
	history := &mocks.MockSimulationHistoryStore{}

	_, err = NewSimulationService(nil, history, progress, nil)
	assert.Error(t, err)
	_, err = NewSimulationService(simulation.NewDefaultEngine(), nil, progress, nil)
	assert.Error(t, err)
	_, err = NewSimulationService(simulation.NewDefaultEngine(), history, nil, nil)
	assert.Error(t, err)
}

func TestSimulationService_Calculate(t *testing.T) {
	t.Parallel()

	f := newSimulationFixture(t)
	inputs := json.RawMessage(`{"principal": 100000, "rate": 10, "months": 12}`)

	result, err := f.svc.Calculate(context.Background(), "u1", "emi_calculator", inputs)
	require.NoError(t, err)

	emi, ok := result.(simulation.EMIResult)
	require.True(t, ok)
	assert.Equal(t, 8791.59, emi.EMI)

	records := f.history.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "u1", records[0].UserID)
	assert.Equal(t, "emi_calculator", records[0].SimulationType)
	assert.JSONEq(t, string(inputs), string(records[0].Inputs))
	assert.JSONEq(t,
		`{"emi": 8791.59, "total_payment": 105499.06, "total_interest": 5499.06, "principal": 100000}`,
		string(records[0].Outputs))
	assert.Equal(t, fixedNow, records[0].CreatedAt)

	assert.Equal(t, []mocks.ProgressCall{
		{Method: "AddCompletedSimulation", UserID: "u1", Value: "emi_calculator", At: fixedNow},
	}, f.progress.Calls())
}

func TestSimulationService_CalculateRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    string
		inputs  string
		wantErr error
	}{
		{"unknown kind", "lottery_odds", `{"tickets": 3}`, simulation.ErrInvalidKind},
		{"non-numeric input", "simple_interest", `{"principal": "lots"}`, simulation.ErrInvalidInput},
		{"non-positive frequency", "compound_interest", `{"principal": 1, "frequency": 0}`, simulation.ErrInvalidInput},
		{"overflow", "compound_interest", `{"principal": 1, "rate": 1000000, "time": 1000000}`, simulation.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newSimulationFixture(t)

			_, err := f.svc.Calculate(context.Background(), "u1", tt.kind, json.RawMessage(tt.inputs))
			assert.ErrorIs(t, err, tt.wantErr)

			records := f.history.Records()
			require.Len(t, records, 1, "rejected invocations are still logged")
			assert.Equal(t, tt.kind, records[0].SimulationType)
			assert.JSONEq(t, tt.inputs, string(records[0].Inputs))
			assert.JSONEq(t, `{}`, string(records[0].Outputs))

			assert.Empty(t, f.progress.Calls(), "rejected kinds are not marked completed")
		})
	}
}

func TestSimulationService_CalculateNullInputs(t *testing.T) {
	t.Parallel()

	f := newSimulationFixture(t)

	result, err := f.svc.Calculate(context.Background(), "u1", "sip_calculator", nil)
	require.NoError(t, err)
	assert.Equal(t, simulation.SIPResult{}, result)

	records := f.history.Records()
	require.Len(t, records, 1)
	assert.JSONEq(t, `{}`, string(records[0].Inputs))
}

func TestSimulationService_CalculateValidation(t *testing.T) {
	t.Parallel()

	f := newSimulationFixture(t)

	_, err := f.svc.Calculate(context.Background(), "", "sip_calculator", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyUserID)

	_, err = f.svc.Calculate(context.Background(), "u1", "", nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	assert.Empty(t, f.history.Records())
}

func TestSimulationService_CalculateHistoryFailure(t *testing.T) {
	t.Parallel()

	f := newSimulationFixture(t)
	boom := errors.New("disk full")
	f.history.AppendFn = func(context.Context, *domain.SimulationRecord) error { return boom }

	_, err := f.svc.Calculate(context.Background(), "u1", "simple_interest", json.RawMessage(`{"principal": 1}`))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, f.progress.Calls())
}

func TestSimulationService_CalculateProgressFailure(t *testing.T) {
	t.Parallel()

	f := newSimulationFixture(t)
	boom := errors.New("progress write failed")
	f.progress.AddCompletedSimulationFn = func(context.Context, string, string, time.Time) error { return boom }

	_, err := f.svc.Calculate(context.Background(), "u1", "simple_interest", json.RawMessage(`{"principal": 1}`))
	assert.ErrorIs(t, err, boom)
	assert.Len(t, f.history.Records(), 1)
}
