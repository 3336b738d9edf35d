package engine

import (
	"github.com/veilbrook/go-haunt/internal/parser"
	"github.com/veilbrook/go-haunt/internal/session"
	"github.com/veilbrook/go-haunt/internal/world"
)

// Vehicle state machine. Inflatables move deflated -> inflated and
// can be punctured back out of service; rigid vehicles are always
// ready. Boarding, launching and repair all key off the per-session
// vehicle state, never the template.

func (d *Dispatcher) handleBoard(cmd parser.Command, s *session.Session) *Result {
	if cmd.Object == "" {
		return fail("Board what?")
	}
	id := cmd.Object
	name := d.displayName(id, s)

	ent, err := d.world.Entity(id)
	if err != nil || ent.Type() != world.EntityTypeVehicle {
		return fail("You can't climb into the " + name + ".")
	}

	if s.Vehicle != "" {
		return fail("You're already in the " + d.displayName(s.Vehicle, s) + ".")
	}

	st := s.Entity(id)
	if ent.Vehicle.Inflatable {
		switch st.VehicleState {
		case world.VehicleStateDeflated:
			return fail("The " + name + " lies flat. It needs inflating first.")
		case world.VehicleStatePunctured:
			return fail("The " + name + " won't hold air, let alone you.")
		}

		// A sharp item in the pack tears the fabric before any
		// boarding happens: the vehicle is punctured and the player is
		// ejected, not boarded.
		if sharpId := d.carriedSharp(s); sharpId != "" {
			st.VehicleState = world.VehicleStatePunctured
			return fail("As you climb in, the " + d.displayName(sharpId, s) +
				" tears through the fabric. The " + name + " collapses with a despairing hiss, punctured.")
		}
	}

	s.Vehicle = id
	return ok("You climb aboard the " + name + ".")
}

func (d *Dispatcher) handleDisembark(cmd parser.Command, s *session.Session) *Result {
	if s.Vehicle == "" {
		return fail("You're not in anything.")
	}

	name := d.displayName(s.Vehicle, s)
	if cmd.Object != "" {
		ent, err := d.world.Entity(s.Vehicle)
		if err != nil || !ent.Matches(cmd.Object) {
			return fail("You're not in the " + cmd.Object + ".")
		}
	}

	s.Vehicle = ""
	return ok("You climb out of the " + name + ".")
}

func (d *Dispatcher) handleLaunch(cmd parser.Command, s *session.Session) *Result {
	if s.Vehicle == "" {
		return fail("You'd need to be aboard something first.")
	}
	id := s.Vehicle
	name := d.displayName(id, s)

	ent, err := d.world.Entity(id)
	if err != nil || ent.Vehicle == nil {
		return fail("The " + name + " isn't going anywhere.")
	}

	st := s.Entity(id)
	if ent.Vehicle.Inflatable && st.VehicleState != world.VehicleStateInflated {
		return fail("The " + name + " is in no state to carry you.")
	}
	dest := ent.Vehicle.LaunchTo
	if dest == "" {
		return fail("There's nowhere to launch the " + name + " from here.")
	}

	// Player and vehicle travel together: the vehicle id moves from
	// the origin room's items to the destination's.
	origin := s.Room
	s.RemoveFromRoom(origin, id)
	s.AddToRoom(dest, id)

	res := d.enterRoom(s, dest)
	res.Message = "The " + name + " carries you onward.\n" + res.Message
	return res
}

func (d *Dispatcher) handleFix(cmd parser.Command, s *session.Session) *Result {
	if cmd.Object == "" {
		return fail("Fix what?")
	}
	id := cmd.Object
	name := d.displayName(id, s)

	ent, err := d.world.Entity(id)
	if err != nil || ent.Vehicle == nil {
		return fail("The " + name + " is beyond your repair.")
	}

	st := s.Entity(id)
	if st.VehicleState != world.VehicleStatePunctured {
		return fail("The " + name + " doesn't need fixing.")
	}

	sealantId := d.carriedSealant(s)
	if sealantId == "" {
		return fail("You have nothing to patch the " + name + " with.")
	}

	st.VehicleState = world.VehicleStateInflated
	return ok("You work the " + d.displayName(sealantId, s) +
		" over the tear. The " + name + " holds air again.")
}

func (d *Dispatcher) handleInflate(cmd parser.Command, s *session.Session) *Result {
	if cmd.Object == "" {
		return fail("Inflate what?")
	}
	id := cmd.Object
	name := d.displayName(id, s)

	ent, err := d.world.Entity(id)
	if err != nil || ent.Vehicle == nil || !ent.Vehicle.Inflatable {
		return fail("The " + name + " can't be inflated.")
	}

	st := s.Entity(id)
	switch st.VehicleState {
	case world.VehicleStateInflated:
		return fail("It's already inflated.")
	case world.VehicleStatePunctured:
		return fail("Air hisses straight back out of the tear.")
	}

	st.VehicleState = world.VehicleStateInflated
	return ok("The " + name + " swells taut.")
}

// carriedSharp returns the first sharp item in the inventory, or "".
func (d *Dispatcher) carriedSharp(s *session.Session) string {
	for _, id := range s.Inventory {
		if ent, err := d.world.Entity(id); err == nil && ent.Sharp {
			return id
		}
	}
	return ""
}

// carriedSealant returns the first sealant item in the inventory, or "".
func (d *Dispatcher) carriedSealant(s *session.Session) string {
	for _, id := range s.Inventory {
		if ent, err := d.world.Entity(id); err == nil && ent.Sealant {
			return id
		}
	}
	return ""
}
