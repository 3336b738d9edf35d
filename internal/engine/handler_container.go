package engine

import (
	"github.com/veilbrook/go-haunt/internal/parser"
	"github.com/veilbrook/go-haunt/internal/session"
)

// Container verbs. State-order prerequisites (already open, still
// locked, and so on) are enforced by the prerequisite table before
// these run; handlers only apply the transition.

func (d *Dispatcher) handleOpen(cmd parser.Command, s *session.Session) *Result {
	if cmd.Object == "" {
		return fail("Open what?")
	}
	id := cmd.Object
	name := d.displayName(id, s)

	ent, err := d.world.Entity(id)
	if err != nil || ent.Container == nil {
		return fail("The " + name + " doesn't open.")
	}

	st := s.Entity(id)
	st.Open = true

	if len(st.Contents) > 0 {
		return ok("Opening the " + name + " reveals: " + d.nameList(st.Contents, s) + ".")
	}
	return ok("Opened.")
}

func (d *Dispatcher) handleClose(cmd parser.Command, s *session.Session) *Result {
	if cmd.Object == "" {
		return fail("Close what?")
	}
	id := cmd.Object

	ent, err := d.world.Entity(id)
	if err != nil || ent.Container == nil {
		return fail("The " + d.displayName(id, s) + " doesn't close.")
	}

	s.Entity(id).Open = false
	return ok("Closed.")
}

func (d *Dispatcher) handleLock(cmd parser.Command, s *session.Session) *Result {
	return d.turnKey(cmd, s, true)
}

func (d *Dispatcher) handleUnlock(cmd parser.Command, s *session.Session) *Result {
	return d.turnKey(cmd, s, false)
}

func (d *Dispatcher) turnKey(cmd parser.Command, s *session.Session, locking bool) *Result {
	if cmd.Object == "" {
		if locking {
			return fail("Lock what?")
		}
		return fail("Unlock what?")
	}
	id := cmd.Object
	name := d.displayName(id, s)

	ent, err := d.world.Entity(id)
	if err != nil || ent.Container == nil {
		return fail("The " + name + " has no lock.")
	}

	if keyId := ent.Container.KeyId; keyId != "" {
		if !d.holdsKey(cmd, s, keyId) {
			return fail("You have nothing that fits the " + name + ".")
		}
	}

	st := s.Entity(id)
	if locking && st.Open {
		return fail("You'll have to close the " + name + " first.")
	}

	st.Locked = locking
	if locking {
		return ok("Locked.")
	}
	return ok("Unlocked.")
}

// holdsKey checks the named instrument (if any) against the required
// key, falling back to anything suitable in the inventory.
func (d *Dispatcher) holdsKey(cmd parser.Command, s *session.Session, keyId string) bool {
	if cmd.Instrument != "" {
		key, err := d.world.Entity(keyId)
		if err != nil {
			return false
		}
		return (key.Matches(cmd.Instrument) || cmd.Instrument == keyId) && s.Carrying(keyId)
	}
	return s.Carrying(keyId)
}
