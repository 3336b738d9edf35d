package engine

import (
	"fmt"

	"github.com/veilbrook/go-haunt/internal/parser"
	"github.com/veilbrook/go-haunt/internal/sanity"
	"github.com/veilbrook/go-haunt/internal/session"
)

func (d *Dispatcher) handleInventory(cmd parser.Command, s *session.Session) *Result {
	if len(s.Inventory) == 0 {
		return ok("You are empty-handed.")
	}
	return ok("You are carrying: " + d.nameList(s.Inventory, s) + ".")
}

func (d *Dispatcher) handleClimb(cmd parser.Command, s *session.Session) *Result {
	// Bare directions became GO in the parser; what's left is an
	// entity, climbing which means taking the room's up exit.
	if cmd.Object == "" {
		return fail("Climb what?")
	}
	id := cmd.Object
	name := d.displayName(id, s)

	ent, err := d.world.Entity(id)
	if err != nil || !ent.Climbable {
		return fail("You can't climb the " + name + ".")
	}

	room, err := d.world.Room(s.Room)
	if err != nil {
		return fail("There's nowhere to climb to.")
	}
	exit, exists := room.Exits["up"]
	if !exists {
		return fail("The " + name + " leads nowhere you could follow.")
	}
	return d.enterRoom(s, exit.RoomId)
}

func (d *Dispatcher) handleRest(cmd parser.Command, s *session.Session) *Result {
	room, err := d.world.Room(s.Room)
	if err == nil && room.SafeRoom {
		sanity.ApplyGain(s, sanity.RestRecovery)
		return ok("You rest for a while. The quiet here does you good.")
	}
	return ok("You rest uneasily. This is no place to linger.")
}

func (d *Dispatcher) handleLight(cmd parser.Command, s *session.Session) *Result {
	if cmd.Object == "" {
		return fail("Light what?")
	}
	id := cmd.Object
	name := d.displayName(id, s)

	ent, err := d.world.Entity(id)
	if err != nil || (!ent.Flammable && !ent.LightSource) {
		return fail("The " + name + " won't take a flame.")
	}

	st := s.Entity(id)
	if st.Lit {
		return fail("The " + name + " is already burning.")
	}
	st.Lit = true
	return ok("The " + name + " flares to life.")
}

func (d *Dispatcher) handleExtinguish(cmd parser.Command, s *session.Session) *Result {
	if cmd.Object == "" {
		return fail("Extinguish what?")
	}
	id := cmd.Object
	name := d.displayName(id, s)

	st := s.Entity(id)
	if !st.Lit {
		return fail("The " + name + " isn't lit.")
	}
	st.Lit = false
	return ok("The " + name + " gutters out.")
}

func (d *Dispatcher) handleScore(cmd parser.Command, s *session.Session) *Result {
	return ok(fmt.Sprintf("Your score is %d, in %d moves.", s.Score, s.Moves))
}

func (d *Dispatcher) handleQuit(cmd parser.Command, s *session.Session) *Result {
	r := ok("The house lets you go. For now.")
	r.Quit = true
	return r
}

func (d *Dispatcher) handleUnknown(cmd parser.Command, s *session.Session) *Result {
	return fail("That sentence has no meaning here.")
}
