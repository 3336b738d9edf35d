package engine

import (
	"testing"

	"github.com/veilbrook/go-haunt/internal/parser"
	"github.com/veilbrook/go-haunt/internal/session"
	"github.com/veilbrook/go-haunt/internal/storage"
	"github.com/veilbrook/go-haunt/internal/world"
)

type memStore[T storage.ValidatingSpec] struct {
	records map[string]T
}

func (m *memStore[T]) Save(id string, v T) error {
	m.records[id] = v
	return nil
}

func (m *memStore[T]) Lookup(id string) (T, bool) {
	v, ok := m.records[id]
	return v, ok
}

func (m *memStore[T]) GetAll() map[string]T {
	return m.records
}

// buildTestWorld assembles the fixture estate every engine test runs
// against: a house with a mailbox puzzle, a climbable tree, a dark
// cellar, a locked chest, an inflatable raft, and two treasures.
func buildTestWorld(t *testing.T) *world.World {
	t.Helper()

	rooms := &memStore[*world.Room]{records: map[string]*world.Room{
		"west_of_house": {
			Name:              "West of House",
			Description:       "You are standing in an overgrown garden west of a shuttered house.",
			SpookyDescription: "The garden writhes. The house watches you through boarded eyes.",
			Items:             []string{"mailbox", "lantern"},
			Exits: map[string]world.Exit{
				"north": {RoomId: "clearing"},
				"east":  {RoomId: "riverbank"},
				"south": {RoomId: "chapel"},
				"west":  {RoomId: "crypt"},
				"down":  {RoomId: "cellar"},
				"up": {
					RoomId:         "treetop",
					FlagsRequired:  []string{"rope_tied"},
					BlockedMessage: "The rope dangles far out of reach.",
				},
			},
		},
		"clearing": {
			Name:        "Clearing",
			Description: "A small clearing ringed by dead oaks.",
			Items:       []string{"tree", "brass-key", "iron-key", "goblet"},
			Exits: map[string]world.Exit{
				"south": {RoomId: "west_of_house"},
				"up":    {RoomId: "treetop"},
			},
		},
		"treetop": {
			Name:        "Treetop",
			Description: "You cling to a fork high in the old oak.",
			Items:       []string{"satchel"},
			Exits: map[string]world.Exit{
				"down": {RoomId: "clearing"},
			},
		},
		"cellar": {
			Name:        "Cellar",
			Description: "A low stone cellar, thick with the smell of earth.",
			Dark:        true,
			Items:       []string{"coin"},
			Exits: map[string]world.Exit{
				"up": {RoomId: "west_of_house"},
			},
		},
		"riverbank": {
			Name:        "Riverbank",
			Description: "Black water slides past a muddy bank.",
			Items:       []string{"raft", "knife", "patch-kit"},
			Exits: map[string]world.Exit{
				"west": {RoomId: "west_of_house"},
			},
		},
		"island": {
			Name:        "Island",
			Description: "A bare island in the middle of the river.",
		},
		"chapel": {
			Name:        "Chapel",
			Description: "A quiet chapel. Something here still holds.",
			SafeRoom:    true,
			Items:       []string{"chest"},
			Exits: map[string]world.Exit{
				"north": {RoomId: "west_of_house"},
			},
		},
		"crypt": {
			Name:         "Crypt",
			Description:  "Stacked coffins line the walls.",
			SanityEffect: -40,
			Items:        []string{"gargoyle"},
			Exits: map[string]world.Exit{
				"east": {RoomId: "west_of_house"},
			},
		},
	}}

	ents := &memStore[*world.Entity]{records: map[string]*world.Entity{
		"mailbox": {
			Name:        "mailbox",
			TypeStr:     "container",
			Description: "A small wooden mailbox on a leaning post.",
			Container:   &world.ContainerSpec{Contents: []string{"advertisement"}},
		},
		"advertisement": {
			Name:     "advertisement",
			Aliases:  []string{"leaflet", "ad"},
			TypeStr:  "item",
			Takeable: true,
			Text:     "WELCOME TO THE HOUSE. No one has finished the tour.",
		},
		"lantern": {
			Name:        "brass lantern",
			SpookyName:  "cold brass lantern",
			TypeStr:     "item",
			Takeable:    true,
			LightSource: true,
		},
		"brass-key": {
			Name:     "brass key",
			TypeStr:  "item",
			Takeable: true,
		},
		"iron-key": {
			Name:     "iron key",
			TypeStr:  "item",
			Takeable: true,
		},
		"satchel": {
			Name:     "leather satchel",
			TypeStr:  "container",
			Takeable: true,
			Container: &world.ContainerSpec{
				Open:     true,
				Contents: []string{"locket"},
			},
		},
		"locket": {
			Name:     "silver locket",
			TypeStr:  "item",
			Takeable: true,
		},
		"chest": {
			Name:        "oak chest",
			TypeStr:     "container",
			Description: "A heavy oak chest bound in iron.",
			Container: &world.ContainerSpec{
				Locked:   true,
				KeyId:    "brass-key",
				Contents: []string{"crown"},
			},
		},
		"crown": {
			Name:          "tarnished crown",
			TypeStr:       "item",
			Takeable:      true,
			Treasure:      true,
			TreasureValue: 10,
		},
		"goblet": {
			Name:          "silver goblet",
			TypeStr:       "item",
			Takeable:      true,
			Treasure:      true,
			TreasureValue: 5,
		},
		"coin": {
			Name:     "coin",
			TypeStr:  "item",
			Takeable: true,
		},
		"tree": {
			Name:      "old oak",
			Aliases:   []string{"tree"},
			TypeStr:   "scenery",
			Climbable: true,
		},
		"raft": {
			Name:    "rubber raft",
			TypeStr: "vehicle",
			Vehicle: &world.VehicleSpec{
				Inflatable: true,
				State:      world.VehicleStateDeflated,
				LaunchTo:   "island",
			},
		},
		"knife": {
			Name:     "rusty knife",
			TypeStr:  "item",
			Takeable: true,
			Sharp:    true,
		},
		"patch-kit": {
			Name:     "patch kit",
			Aliases:  []string{"sealant"},
			TypeStr:  "item",
			Takeable: true,
			Sealant:  true,
		},
		"gargoyle": {
			Name:        "stone gargoyle",
			TypeStr:     "scenery",
			Description: "A squat gargoyle hunched over the lintel.",
			Interactions: []world.Interaction{
				{
					Verb:     "EXAMINE",
					Response: "The {{.Name}} grins wider than it did a moment ago.",
					Set: &world.StateChange{
						GrantFlag:   "noticed_gargoyle",
						SanityDelta: -5,
					},
				},
			},
		},
	}}

	w, err := world.NewWorld(rooms, ents, "west_of_house")
	if err != nil {
		t.Fatalf("building fixture world: %v", err)
	}
	return w
}

// newTestGame builds the fixture world, its dispatcher, and a fresh
// session parked at the start room.
func newTestGame(t *testing.T) (*Dispatcher, *session.Session) {
	t.Helper()

	w := buildTestWorld(t)
	return NewDispatcher(w), session.New("test", w)
}

// do parses and dispatches one line of input.
func do(t *testing.T, d *Dispatcher, s *session.Session, input string) *Result {
	t.Helper()
	return d.Dispatch(parser.Parse(input), s)
}
