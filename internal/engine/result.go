package engine

// Result is the outcome of one resolved action. User-facing failures
// (missing object, blocked exit, unmet prerequisite) are failed
// Results with a themed message, never errors.
type Result struct {
	Success       bool
	Message       string
	RoomChanged   bool
	NewRoom       string
	Notifications []string
	Won           bool
	Lost          bool
	Quit          bool
}

func ok(msg string) *Result {
	return &Result{Success: true, Message: msg}
}

func fail(msg string) *Result {
	return &Result{Message: msg}
}
