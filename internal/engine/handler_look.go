package engine

import (
	"strings"

	"github.com/veilbrook/go-haunt/internal/parser"
	"github.com/veilbrook/go-haunt/internal/session"
	"github.com/veilbrook/go-haunt/internal/world"
)

func (d *Dispatcher) handleLook(cmd parser.Command, s *session.Session) *Result {
	// "look lantern" reads as examine.
	if cmd.Object != "" {
		return d.invoke(parser.Command{Verb: parser.VerbExamine, Object: cmd.Object}, s)
	}
	return ok(d.describeRoom(s))
}

// describeRoom renders the current room for the session's sanity
// level, with a trailing line for anything visibly lying about.
func (d *Dispatcher) describeRoom(s *session.Session) string {
	if d.inDark(s) {
		return "It is pitch black here. You can't see a thing."
	}

	desc, err := d.world.RoomDescription(s.Room, s.SanityLevel)
	if err != nil {
		// Bad room reference; show the raw id rather than nothing.
		return "You are in " + s.Room + "."
	}

	if visible := d.VisibleObjects(s); len(visible) > 0 {
		desc += "\nYou can see: " + strings.Join(visible, ", ") + "."
	}
	return desc
}

// VisibleObjects lists the display names of everything visibly lying
// in the current room. Scenery is woven into the description instead,
// and darkness hides everything.
func (d *Dispatcher) VisibleObjects(s *session.Session) []string {
	if d.inDark(s) {
		return nil
	}

	var visible []string
	for _, id := range s.ItemsIn(s.Room) {
		ent, err := d.world.Entity(id)
		if err != nil {
			visible = append(visible, id)
			continue
		}
		if ent.Type() != world.EntityTypeScenery {
			visible = append(visible, ent.DisplayName(d.spooky(s)))
		}
	}
	return visible
}
