package engine

import (
	"strings"

	"github.com/veilbrook/go-haunt/internal/parser"
	"github.com/veilbrook/go-haunt/internal/session"
)

// isCollective reports whether an object spec refers to multiple
// entities ("all", "everything", "all except lamp").
func isCollective(object string) bool {
	return object == "all" || object == "everything" ||
		strings.HasPrefix(object, "all except ") ||
		strings.HasPrefix(object, "everything except ")
}

// expandMulti turns a collective object spec into the concrete ids it
// covers: every takeable entity currently visible in the room, minus
// any "except" exclusion. DROP expands over the inventory instead.
func (d *Dispatcher) expandMulti(verb, object string, s *session.Session) []string {
	var except string
	if _, after, found := strings.Cut(object, " except "); found {
		except = after
	}

	var pool []string
	if verb == parser.VerbDrop {
		pool = s.Inventory
	} else {
		pool = d.roomScope(s)
	}

	var ids []string
	for _, id := range pool {
		ent, err := d.world.Entity(id)
		if err != nil || !ent.Takeable {
			continue
		}
		if except != "" && ent.Matches(except) {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// handleMulti applies the single-object handler for verb to each id
// in order, concatenating the individual messages. The combined
// result succeeds iff at least one application did.
func (d *Dispatcher) handleMulti(verb string, ids []string, s *session.Session, target string) *Result {
	if len(ids) == 0 {
		return fail("There's nothing here to " + strings.ToLower(verb) + ".")
	}

	combined := &Result{}
	var lines []string
	for _, id := range ids {
		cmd := parser.Command{Verb: verb, Object: id, Target: target}
		r := d.invoke(cmd, s)
		name := d.world.DisplayName(id, s.SanityLevel)
		lines = append(lines, name+": "+r.Message)
		if r.Success {
			combined.Success = true
		}
		combined.Notifications = append(combined.Notifications, r.Notifications...)
		combined.Won = combined.Won || r.Won
	}
	combined.Message = strings.Join(lines, "\n")
	return combined
}
