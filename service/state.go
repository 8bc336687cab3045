package service

// Recipe lifecycle states.
const (
	StateDraft     = "draft"
	StatePublished = "published"
	StateArchived  = "archived"
)

// ValidState reports whether s names a known lifecycle state.
func ValidState(s string) bool {
	switch s {
	case StateDraft, StatePublished, StateArchived:
		return true
	}
	return false
}

type operation int

const (
	opContentEdit operation = iota
	opDelete
	opChangeState
	opRosterChange
)

// allowedStates is the single place that encodes which lifecycle states
// permit which operations. Archived recipes accept no content edits or
// deletion; changeState is exempt so archived recipes can be unarchived.
// Roster changes carry no state restriction.
var allowedStates = map[operation]map[string]bool{
	opContentEdit: {
		StateDraft:     true,
		StatePublished: true,
	},
	opDelete: {
		StateDraft:     true,
		StatePublished: true,
	},
	opChangeState: {
		StateDraft:     true,
		StatePublished: true,
		StateArchived:  true,
	},
	opRosterChange: {
		StateDraft:     true,
		StatePublished: true,
		StateArchived:  true,
	},
}

func operationAllowed(op operation, state string) bool {
	return allowedStates[op][state]
}
