package engine

import (
	"fmt"
	"strings"

	"github.com/veilbrook/go-haunt/internal/parser"
	"github.com/veilbrook/go-haunt/internal/session"
)

// disambiguate resolves the command's object against everything in
// scope. Zero or one match passes through (a later lookup fails
// naturally on zero); two or more stores a pending clarification on
// the session and asks the player which one they meant.
func (d *Dispatcher) disambiguate(cmd parser.Command, s *session.Session) *Result {
	if cmd.Object == "" || isCollective(cmd.Object) {
		return nil
	}

	matches := d.matchesInScope(s, cmd.Object)
	if len(matches) < 2 {
		return nil
	}

	s.Pending = &session.Clarification{
		Verb:        cmd.Verb,
		ObjectName:  cmd.Object,
		Matches:     matches,
		Target:      cmd.Target,
		Preposition: cmd.Preposition,
	}

	names := make([]string, len(matches))
	for i, id := range matches {
		names[i] = d.world.DisplayName(id, s.SanityLevel)
	}
	return fail(clarifyPrompt(names))
}

// clarifyPrompt builds the "which do you mean" question, joining the
// candidates comma-separated with a trailing "or".
func clarifyPrompt(names []string) string {
	switch len(names) {
	case 0:
		return "You don't see anything like that here."
	case 1:
		return fmt.Sprintf("Which do you mean: %s?", names[0])
	case 2:
		return fmt.Sprintf("Which do you mean: %s or %s?", names[0], names[1])
	default:
		return fmt.Sprintf("Which do you mean: %s, or %s?",
			strings.Join(names[:len(names)-1], ", "), names[len(names)-1])
	}
}
