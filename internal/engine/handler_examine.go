package engine

import (
	"github.com/veilbrook/go-haunt/internal/parser"
	"github.com/veilbrook/go-haunt/internal/session"
)

func (d *Dispatcher) handleExamine(cmd parser.Command, s *session.Session) *Result {
	if cmd.Object == "" {
		return fail("Examine what?")
	}

	ent, err := d.world.Entity(cmd.Object)
	if err != nil {
		// Dangling id in authored data; all we have is the id itself.
		return ok("It's a " + cmd.Object + ". Nothing more can be said about it.")
	}

	name := ent.DisplayName(d.spooky(s))
	if ent.Description == "" {
		return ok("You see nothing special about the " + name + ".")
	}

	msg := ent.Description
	if ent.Container != nil {
		st := s.Entity(cmd.Object)
		switch {
		case st.Open && len(st.Contents) > 0:
			msg += "\nThe " + name + " is open. Inside you see: " + d.nameList(st.Contents, s) + "."
		case st.Open:
			msg += "\nThe " + name + " is open, and empty."
		default:
			msg += "\nThe " + name + " is closed."
		}
	}
	return ok(msg)
}

func (d *Dispatcher) handleRead(cmd parser.Command, s *session.Session) *Result {
	if cmd.Object == "" {
		return fail("Read what?")
	}

	ent, err := d.world.Entity(cmd.Object)
	if err != nil {
		return fail("There's nothing written on the " + cmd.Object + ".")
	}
	if ent.Text == "" {
		return fail("There's nothing written on the " + ent.DisplayName(d.spooky(s)) + ".")
	}
	return ok(ent.Text)
}

// nameList renders a list of entity ids as display names.
func (d *Dispatcher) nameList(ids []string, s *session.Session) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		out += d.displayName(id, s)
	}
	return out
}
