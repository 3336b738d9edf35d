package engine

import (
	"github.com/veilbrook/go-haunt/internal/parser"
	"github.com/veilbrook/go-haunt/internal/session"
	"github.com/veilbrook/go-haunt/internal/world"
)

// verbRule is one row of the table-driven prerequisite check: the
// state a verb requires before it may run against a container.
type verbRule struct {
	check func(st *session.EntityState) bool
	msg   string
}

var containerRules = map[string]verbRule{
	parser.VerbUnlock: {
		check: func(st *session.EntityState) bool { return st.Locked },
		msg:   "It's not locked.",
	},
	parser.VerbLock: {
		check: func(st *session.EntityState) bool { return !st.Locked },
		msg:   "It's already locked.",
	},
	parser.VerbOpen: {
		check: func(st *session.EntityState) bool { return !st.Open && !st.Locked },
		msg:   "", // distinguished below
	},
	parser.VerbClose: {
		check: func(st *session.EntityState) bool { return st.Open },
		msg:   "It's not open.",
	},
}

// checkPrerequisites returns nil when the verb may proceed against
// the entity, or a failed Result naming what's in the way.
func (d *Dispatcher) checkPrerequisites(verb, id string, s *session.Session) *Result {
	ent, err := d.world.Entity(id)
	if err != nil {
		return nil // missing template degrades later, not here
	}

	if ent.Container != nil {
		if rule, ok := containerRules[verb]; ok && !rule.check(s.Entity(id)) {
			if verb == parser.VerbOpen {
				if s.Entity(id).Locked {
					return fail("It's locked.")
				}
				return fail("It's already open.")
			}
			return fail(rule.msg)
		}
	}

	return d.checkDeclared(ent.Prereqs, s)
}

// checkDeclared validates author-declared prerequisites (required
// session flags and inventory) against the session.
func (d *Dispatcher) checkDeclared(p *world.Prerequisites, s *session.Session) *Result {
	if p == nil {
		return nil
	}

	for flag, want := range p.Flags {
		if s.Flags[flag] != want {
			return fail(prereqFailure(p))
		}
	}
	for _, itemId := range p.Inventory {
		if !s.Carrying(itemId) {
			return fail(prereqFailure(p))
		}
	}
	return nil
}

func prereqFailure(p *world.Prerequisites) string {
	if p.FailureMessage != "" {
		return p.FailureMessage
	}
	return "Something prevents you."
}
