package engine

import (
	"fmt"

	"github.com/veilbrook/go-haunt/internal/parser"
	"github.com/veilbrook/go-haunt/internal/sanity"
	"github.com/veilbrook/go-haunt/internal/session"
)

func (d *Dispatcher) handleGo(cmd parser.Command, s *session.Session) *Result {
	if cmd.Direction == "" {
		return fail("Which way?")
	}

	room, err := d.world.Room(s.Room)
	if err != nil {
		return fail("You are somewhere the house has no name for.")
	}

	exit, exists := room.Exits[cmd.Direction]
	if !exists {
		return fail(fmt.Sprintf("You can't go %s from here.", cmd.Direction))
	}

	for _, flag := range exit.FlagsRequired {
		if !s.Flags[flag] {
			if exit.BlockedMessage != "" {
				return fail(exit.BlockedMessage)
			}
			return fail(fmt.Sprintf("Something bars the way %s.", cmd.Direction))
		}
	}

	return d.enterRoom(s, exit.RoomId)
}

// enterRoom performs the shared room-entry transition: relocate,
// record the visit, bump the move counter, and run the sanity hook
// for the destination's ambient effect.
func (d *Dispatcher) enterRoom(s *session.Session, dest string) *Result {
	s.Room = dest
	s.Visited[dest] = true
	s.Moves++

	var notes []string
	if room, err := d.world.Room(dest); err == nil {
		switch {
		case room.SanityEffect < 0:
			notes = sanity.ApplyLoss(s, -room.SanityEffect, room.Name)
		case room.SanityEffect > 0:
			sanity.ApplyGain(s, room.SanityEffect)
		}
	}

	return &Result{
		Success:       true,
		Message:       d.describeRoom(s),
		RoomChanged:   true,
		NewRoom:       dest,
		Notifications: notes,
	}
}
