package engine

import (
	"github.com/veilbrook/go-haunt/internal/parser"
	"github.com/veilbrook/go-haunt/internal/session"
	"github.com/veilbrook/go-haunt/internal/world"
)

func (d *Dispatcher) handleTake(cmd parser.Command, s *session.Session) *Result {
	if cmd.Object == "" {
		return fail("Take what?")
	}
	id := cmd.Object
	name := d.displayName(id, s)

	if s.Carrying(id) {
		return fail("You're already carrying the " + name + ".")
	}

	ent, err := d.world.Entity(id)
	if err == nil && !ent.Takeable {
		return fail("The " + name + " stays stubbornly where it is.")
	}

	if !s.MoveToInventory(id) {
		return fail("I don't see a " + name + " here.")
	}

	result := ok("Taken.")
	if ent != nil && ent.Treasure {
		d.scoreTreasure(id, ent, s, result)
	}
	return result
}

// scoreTreasure credits a treasure's value the first time it is ever
// picked up, and marks the game won when every treasure has been
// credited.
func (d *Dispatcher) scoreTreasure(id string, ent *world.Entity, s *session.Session, r *Result) {
	flag := "scored_" + id
	if s.Flags[flag] {
		return
	}
	s.Flags[flag] = true
	s.Score += ent.TreasureValue

	r.Notifications = append(r.Notifications, "Your score has gone up.")
	if total := d.world.TotalTreasure(); total > 0 && s.Score >= total {
		s.Won = true
		r.Won = true
		r.Notifications = append(r.Notifications,
			"Every treasure of the house is yours. Its hold over you breaks.")
	}
}

func (d *Dispatcher) handleDrop(cmd parser.Command, s *session.Session) *Result {
	if cmd.Object == "" {
		return fail("Drop what?")
	}
	id := cmd.Object
	name := d.displayName(id, s)

	if !s.DropToRoom(id) {
		return fail("You're not carrying the " + name + ".")
	}
	return ok("Dropped.")
}

func (d *Dispatcher) handlePut(cmd parser.Command, s *session.Session) *Result {
	if cmd.Object == "" {
		return fail("Put what?")
	}
	if cmd.Target == "" {
		return fail("Put it where?")
	}

	id := cmd.Object
	if !s.Carrying(id) {
		return fail("You're not carrying the " + d.displayName(id, s) + ".")
	}

	targetId, res := d.resolveOne(s, cmd.Target)
	if res != nil {
		return res
	}
	target, err := d.world.Entity(targetId)
	targetName := d.displayName(targetId, s)
	if err != nil || target.Container == nil {
		return fail("You can't put anything in the " + targetName + ".")
	}

	st := s.Entity(targetId)
	if !st.Open {
		return fail("The " + targetName + " is closed.")
	}
	if cap := target.Container.Capacity; cap > 0 && len(st.Contents) >= cap {
		return fail("There's no room left in the " + targetName + ".")
	}

	s.PutInContainer(id, targetId)
	return ok("You put the " + d.displayName(id, s) + " in the " + targetName + ".")
}
