package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidState(t *testing.T) {
	assert.True(t, ValidState(StateDraft))
	assert.True(t, ValidState(StatePublished))
	assert.True(t, ValidState(StateArchived))
	assert.False(t, ValidState(""))
	assert.False(t, ValidState("retired"))
	assert.False(t, ValidState("Draft"))
}

func TestOperationAllowed(t *testing.T) {
	cases := []struct {
		name  string
		op    operation
		state string
		want  bool
	}{
		{"edit draft", opContentEdit, StateDraft, true},
		{"edit published", opContentEdit, StatePublished, true},
		{"edit archived", opContentEdit, StateArchived, false},
		{"delete draft", opDelete, StateDraft, true},
		{"delete published", opDelete, StatePublished, true},
		{"delete archived", opDelete, StateArchived, false},
		{"change state from draft", opChangeState, StateDraft, true},
		{"change state from published", opChangeState, StatePublished, true},
		{"change state from archived", opChangeState, StateArchived, true},
		{"roster change on draft", opRosterChange, StateDraft, true},
		{"roster change on published", opRosterChange, StatePublished, true},
		{"roster change on archived", opRosterChange, StateArchived, true},
		{"unknown state", opContentEdit, "retired", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, operationAllowed(tc.op, tc.state))
		})
	}
}
