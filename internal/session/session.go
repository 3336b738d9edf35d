// Package session holds all per-player mutable state. World templates
// are shared across sessions, so every mutable attribute of the world
// (container contents, locks, room item layouts, vehicle states) is
// materialized into a per-session overlay at creation and never read
// back from the template afterward.
package session

import (
	"slices"

	"github.com/veilbrook/go-haunt/internal/world"
)

// EntityState is the mutable per-session state of one world entity.
type EntityState struct {
	Open         bool     `json:"is_open,omitempty"`
	Locked       bool     `json:"is_locked,omitempty"`
	Lit          bool     `json:"is_lit,omitempty"`
	VehicleState string   `json:"vehicle_state,omitempty"`
	Contents     []string `json:"contents,omitempty"`
	Carried      []string `json:"carried,omitempty"`
}

// Clarification is a pending disambiguation prompt: the command that
// was ambiguous and the candidate entity ids it matched.
type Clarification struct {
	Verb        string   `json:"verb"`
	ObjectName  string   `json:"object_name"`
	Matches     []string `json:"matches"`
	Target      string   `json:"target,omitempty"`
	Preposition string   `json:"preposition,omitempty"`
}

// Session is the complete mutable state for one player.
type Session struct {
	Id          string
	Room        string
	Inventory   []string
	Flags       map[string]bool
	SanityLevel int
	Moves       int
	TurnCount   int
	Visited     map[string]bool
	Vehicle     string
	Pending     *Clarification
	Score       int
	Won         bool

	// Entities is the per-session entity state overlay; RoomItems the
	// per-session item layout of every room.
	Entities  map[string]*EntityState
	RoomItems map[string][]string
}

// New creates a fresh session at the world's starting room, with the
// full mutable-state overlay copied out of the templates.
func New(id string, w *world.World) *Session {
	s := &Session{
		Id:          id,
		Room:        w.StartRoom(),
		Flags:       map[string]bool{},
		SanityLevel: 100,
		Visited:     map[string]bool{w.StartRoom(): true},
		Entities:    map[string]*EntityState{},
		RoomItems:   map[string][]string{},
	}

	for eid, ent := range w.Entities() {
		s.Entities[eid] = seedState(ent)
	}
	for rid, room := range w.Rooms() {
		s.RoomItems[rid] = slices.Clone(room.Items)
	}

	return s
}

func seedState(ent *world.Entity) *EntityState {
	st := &EntityState{}
	if ent.Container != nil {
		st.Open = ent.Container.Open
		st.Locked = ent.Container.Locked
		st.Contents = slices.Clone(ent.Container.Contents)
	}
	if ent.Vehicle != nil {
		st.VehicleState = ent.Vehicle.State
		if st.VehicleState == "" {
			st.VehicleState = world.VehicleStateReady
		}
	}
	if len(ent.Carried) > 0 {
		st.Carried = slices.Clone(ent.Carried)
	}
	return st
}

// Sanity satisfies sanity.Meter.
func (s *Session) Sanity() int {
	return s.SanityLevel
}

// SetSanity satisfies sanity.Meter.
func (s *Session) SetSanity(level int) {
	s.SanityLevel = level
}

// Entity returns the overlay state for an entity id, creating a zero
// state on first touch so a late-authored entity never panics a turn.
func (s *Session) Entity(id string) *EntityState {
	if st, ok := s.Entities[id]; ok {
		return st
	}
	st := &EntityState{}
	s.Entities[id] = st
	return st
}

// ItemsIn returns the session's item layout for a room.
func (s *Session) ItemsIn(roomId string) []string {
	return s.RoomItems[roomId]
}

// Carrying reports whether the item is in the session inventory.
func (s *Session) Carrying(id string) bool {
	return slices.Contains(s.Inventory, id)
}

// MoveToInventory moves an item into the inventory, out of the current
// room, an open container in it, or an open container already carried.
// Items move between owners, never copy; returns false when the item
// isn't in an owned list.
func (s *Session) MoveToInventory(id string) bool {
	if removeId(&s.RoomItems, s.Room, id) {
		s.Inventory = append(s.Inventory, id)
		return true
	}
	holders := append(slices.Clone(s.ItemsIn(s.Room)), s.Inventory...)
	for _, holder := range holders {
		st := s.Entity(holder)
		if st.Open && slices.Contains(st.Contents, id) {
			st.Contents = without(st.Contents, id)
			s.Inventory = append(s.Inventory, id)
			return true
		}
	}
	return false
}

// DropToRoom moves an item from the inventory into the current room.
func (s *Session) DropToRoom(id string) bool {
	if !s.Carrying(id) {
		return false
	}
	s.Inventory = without(s.Inventory, id)
	s.RoomItems[s.Room] = append(s.RoomItems[s.Room], id)
	return true
}

// PutInContainer moves an item from the inventory into a container's
// contents.
func (s *Session) PutInContainer(id, containerId string) bool {
	if !s.Carrying(id) {
		return false
	}
	s.Inventory = without(s.Inventory, id)
	st := s.Entity(containerId)
	st.Contents = append(st.Contents, id)
	return true
}

// RemoveFromRoom takes an item id out of a room's layout (vehicle
// launches move the vehicle itself this way).
func (s *Session) RemoveFromRoom(roomId, id string) bool {
	return removeId(&s.RoomItems, roomId, id)
}

// AddToRoom appends an item id to a room's layout.
func (s *Session) AddToRoom(roomId, id string) {
	s.RoomItems[roomId] = append(s.RoomItems[roomId], id)
}

func removeId(layout *map[string][]string, roomId, id string) bool {
	items := (*layout)[roomId]
	if !slices.Contains(items, id) {
		return false
	}
	(*layout)[roomId] = without(items, id)
	return true
}

func without(list []string, id string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
