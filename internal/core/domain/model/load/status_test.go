package load_test

import (
	"testing"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status load.Status
		want   string
	}{
		{load.Posted, "POSTED"},
		{load.Matched, "MATCHED"},
		{load.Assigned, "ASSIGNED"},
		{load.InTransit, "IN_TRANSIT"},
		{load.Delivered, "DELIVERED"},
		{load.Closed, "CLOSED"},
		{load.Cancelled, "CANCELLED"},
		{load.Unknown, "UNKNOWN"},
		{load.Status(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range load.AllStatuses() {
		parsed, err := load.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	parsed, err := load.ParseStatus(" in_transit ")
	require.NoError(t, err)
	assert.Equal(t, load.InTransit, parsed)

	_, err = load.ParseStatus("SHIPPED")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = load.ParseStatus("UNKNOWN")
	require.Error(t, err)
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range load.AllStatuses() {
		require.NoError(t, s.Validate(), s.String())
	}
	require.Error(t, load.Unknown.Validate())
	require.Error(t, load.Status(-1).Validate())
	require.Error(t, load.Status(8).Validate())
}

func TestStatus_Next(t *testing.T) {
	edges := map[load.Status]map[load.Action]load.Status{
		load.Posted:    {load.Claim: load.Matched, load.Cancel: load.Cancelled},
		load.Matched:   {load.Confirm: load.Assigned, load.Cancel: load.Cancelled},
		load.Assigned:  {load.Pickup: load.InTransit},
		load.InTransit: {load.Deliver: load.Delivered},
		load.Delivered: {load.Close: load.Closed},
	}

	// Every (status, action) pair either follows a listed edge or is rejected.
	for _, from := range load.AllStatuses() {
		for _, action := range load.AllActions() {
			name := from.String() + "/" + action.String()
			to, err := from.Next(action)

			if want, ok := edges[from][action]; ok {
				require.NoError(t, err, name)
				assert.Equal(t, want, to, name)
				assert.True(t, from.CanApply(action), name)
				assert.Greater(t, int(to), int(from), name)
				continue
			}

			require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid, name)
			assert.Equal(t, load.Unknown, to, name)
			assert.False(t, from.CanApply(action), name)
		}
	}
}

func TestStatus_TerminalHasNoExit(t *testing.T) {
	for _, s := range []load.Status{load.Closed, load.Cancelled} {
		assert.True(t, s.IsTerminal())
		for _, action := range load.AllActions() {
			assert.False(t, s.CanApply(action), "%s/%s", s, action)
		}
	}
	for _, s := range []load.Status{load.Posted, load.Matched, load.Assigned, load.InTransit, load.Delivered} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_Groups(t *testing.T) {
	tests := []struct {
		status           load.Status
		requiresAssignee bool
		activeJob        bool
		completedTrip    bool
	}{
		{load.Posted, false, false, false},
		{load.Matched, true, true, false},
		{load.Assigned, true, true, false},
		{load.InTransit, true, true, false},
		{load.Delivered, true, false, true},
		{load.Closed, true, false, true},
		{load.Cancelled, false, false, false},
		{load.Unknown, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.requiresAssignee, tt.status.RequiresAssignee())
			assert.Equal(t, tt.activeJob, tt.status.IsActiveJob())
			assert.Equal(t, tt.completedTrip, tt.status.IsCompletedTrip())
		})
	}

	assert.ElementsMatch(t, []load.Status{load.Matched, load.Assigned, load.InTransit}, load.ActiveJobStatuses())
	assert.ElementsMatch(t, []load.Status{load.Delivered, load.Closed}, load.CompletedTripStatuses())
}

func TestAction_PartyAndRole(t *testing.T) {
	tests := []struct {
		action load.Action
		party  load.Party
		name   string
	}{
		{load.Claim, load.AnyTrucker, "claim"},
		{load.Confirm, load.Poster, "confirm"},
		{load.Pickup, load.Assignee, "pickup"},
		{load.Deliver, load.Assignee, "deliver"},
		{load.Close, load.Poster, "close"},
		{load.Cancel, load.Poster, "cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.party, tt.action.Party())
			assert.Equal(t, tt.name, tt.action.String())

			parsed, err := load.ParseAction(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.action, parsed)
		})
	}

	_, err := load.ParseAction("accept")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Error(t, load.ActionUnknown.Validate())
	assert.Equal(t, "unknown", load.ActionUnknown.String())
}
