package world

import (
	"errors"
	"fmt"

	errlist "github.com/pixil98/go-errors"
	"github.com/veilbrook/go-haunt/internal/sanity"
	"github.com/veilbrook/go-haunt/internal/storage"
)

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrEntityNotFound = errors.New("entity not found")
)

// World is the static game world: room and entity templates loaded
// once at startup. It is read-only after construction; everything a
// turn mutates lives on the session.
type World struct {
	rooms    storage.Storer[*Room]
	entities storage.Storer[*Entity]
	start    string

	totalTreasure int
}

// NewWorld builds a World over the given stores and cross-checks
// every reference (exits, room items, container contents, NPC carried
// sets, vehicle destinations). A dangling reference fails startup.
func NewWorld(rooms storage.Storer[*Room], entities storage.Storer[*Entity], startRoom string) (*World, error) {
	w := &World{
		rooms:    rooms,
		entities: entities,
		start:    startRoom,
	}

	if _, ok := rooms.Lookup(startRoom); !ok {
		return nil, fmt.Errorf("start room %q: %w", startRoom, ErrRoomNotFound)
	}

	el := errlist.NewErrorList()
	for id, room := range rooms.GetAll() {
		for dir, exit := range room.Exits {
			if _, ok := rooms.Lookup(exit.RoomId); !ok {
				el.Add(fmt.Errorf("room %s: exit %s: %w: %s", id, dir, ErrRoomNotFound, exit.RoomId))
			}
		}
		for _, itemId := range room.Items {
			if _, ok := entities.Lookup(itemId); !ok {
				el.Add(fmt.Errorf("room %s: item: %w: %s", id, ErrEntityNotFound, itemId))
			}
		}
	}
	for id, ent := range entities.GetAll() {
		if ent.Container != nil {
			for _, c := range ent.Container.Contents {
				if _, ok := entities.Lookup(c); !ok {
					el.Add(fmt.Errorf("entity %s: contents: %w: %s", id, ErrEntityNotFound, c))
				}
			}
		}
		for _, c := range ent.Carried {
			if _, ok := entities.Lookup(c); !ok {
				el.Add(fmt.Errorf("entity %s: carried: %w: %s", id, ErrEntityNotFound, c))
			}
		}
		if ent.Vehicle != nil && ent.Vehicle.LaunchTo != "" {
			if _, ok := rooms.Lookup(ent.Vehicle.LaunchTo); !ok {
				el.Add(fmt.Errorf("entity %s: launch_to: %w: %s", id, ErrRoomNotFound, ent.Vehicle.LaunchTo))
			}
		}
		if ent.Treasure {
			w.totalTreasure += ent.TreasureValue
		}
	}
	if err := el.Err(); err != nil {
		return nil, err
	}

	return w, nil
}

// StartRoom is where new sessions begin.
func (w *World) StartRoom() string {
	return w.start
}

// Room returns the template for a room id, or ErrRoomNotFound.
func (w *World) Room(id string) (*Room, error) {
	room, ok := w.rooms.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	return room, nil
}

// Entity returns the template for an entity id, or ErrEntityNotFound.
func (w *World) Entity(id string) (*Entity, error) {
	ent, ok := w.entities.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, id)
	}
	return ent, nil
}

// Rooms returns all room templates keyed by id.
func (w *World) Rooms() map[string]*Room {
	return w.rooms.GetAll()
}

// Entities returns all entity templates keyed by id.
func (w *World) Entities() map[string]*Entity {
	return w.entities.GetAll()
}

// TotalTreasure is the combined value of every treasure in the world;
// reaching it wins the game.
func (w *World) TotalTreasure() int {
	return w.totalTreasure
}

// DisplayName resolves an entity id to its display name for the given
// sanity level, degrading to the raw id when the template is missing
// so a bad reference never kills a turn.
func (w *World) DisplayName(id string, level int) string {
	ent, err := w.Entity(id)
	if err != nil {
		return id
	}
	return ent.DisplayName(sanity.Threshold(level) >= sanity.BandUnreliable)
}

// RoomDescription returns the room's description banded by sanity:
// the base text while the player holds together, the spooky variant
// once they slip below the disturbed band, and a distorted framing of
// the spooky variant in the garbled band.
func (w *World) RoomDescription(id string, level int) (string, error) {
	room, err := w.Room(id)
	if err != nil {
		return "", err
	}

	desc := room.Description
	if room.SpookyDescription != "" && sanity.Threshold(level) >= sanity.BandUnreliable {
		desc = room.SpookyDescription
	}
	if sanity.Threshold(level) == sanity.BandGarbled {
		desc = "The words of the world run together like wet ink. " + desc
	}
	return desc, nil
}
