package world

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
	"github.com/veilbrook/go-haunt/internal/storage"
)

// EntityType defines the category of an entity.
type EntityType int

const (
	EntityTypeUnknown EntityType = iota
	EntityTypeScenery
	EntityTypeItem
	EntityTypeContainer
	EntityTypeVehicle
	EntityTypeNPC
)

// ContainerSpec is the authored starting state of a container entity.
type ContainerSpec struct {
	Open     bool     `json:"is_open,omitempty"`
	Locked   bool     `json:"is_locked,omitempty"`
	KeyId    string   `json:"key_id,omitempty"`
	Capacity int      `json:"capacity,omitempty"`
	Contents []string `json:"contents,omitempty"`
}

// Vehicle states. Rigid vehicles stay VehicleStateReady for life;
// inflatables move deflated -> inflated -> (punctured) -> inflated.
const (
	VehicleStateReady     = "ready"
	VehicleStateDeflated  = "deflated"
	VehicleStateInflated  = "inflated"
	VehicleStatePunctured = "punctured"
)

// VehicleSpec is the authored starting state of a vehicle entity.
type VehicleSpec struct {
	Inflatable bool   `json:"is_inflatable,omitempty"`
	State      string `json:"state,omitempty"`
	// LaunchTo is the room the vehicle travels to when launched.
	LaunchTo string `json:"launch_to,omitempty"`
}

// Prerequisites are author-declared conditions checked before a verb
// may act on the entity.
type Prerequisites struct {
	Flags          map[string]bool `json:"flags,omitempty"`
	Inventory      []string        `json:"inventory,omitempty"`
	FailureMessage string          `json:"failure_message,omitempty"`
}

// StateChange describes the mutation an interaction applies when it
// fires. Nil pointer fields leave that attribute alone.
type StateChange struct {
	Open         *bool  `json:"is_open,omitempty"`
	Locked       *bool  `json:"is_locked,omitempty"`
	Lit          *bool  `json:"is_lit,omitempty"`
	VehicleState string `json:"vehicle_state,omitempty"`
	GrantFlag    string `json:"grant_flag,omitempty"`
	SanityDelta  int    `json:"sanity_delta,omitempty"`
}

// Interaction is an authored per-verb response: an optional
// precondition, a response template, and an optional state change.
type Interaction struct {
	Verb     string         `json:"verb"`
	Requires *Prerequisites `json:"requires,omitempty"`
	Response string         `json:"response"`
	Set      *StateChange   `json:"set,omitempty"`
}

// Entity is an immutable template for anything interactable: scenery,
// items, containers, vehicles, and NPCs. All mutable state lives in
// the per-session overlay.
type Entity struct {
	Name string `json:"name"`
	// SpookyName is the display variant used once sanity drops below
	// the disturbed band.
	SpookyName  string   `json:"spooky_name,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description,omitempty"`
	TypeStr     string   `json:"type"`

	Takeable    bool `json:"is_takeable,omitempty"`
	Climbable   bool `json:"is_climbable,omitempty"`
	Flammable   bool `json:"is_flammable,omitempty"`
	Sharp       bool `json:"is_sharp,omitempty"`
	Sealant     bool `json:"is_sealant,omitempty"`
	LightSource bool `json:"is_light_source,omitempty"`

	// Text is what READ shows; empty means the entity is not readable.
	Text string `json:"text,omitempty"`

	Treasure      bool `json:"is_treasure,omitempty"`
	TreasureValue int  `json:"treasure_value,omitempty"`

	Container *ContainerSpec `json:"container,omitempty"`
	Vehicle   *VehicleSpec   `json:"vehicle,omitempty"`

	Prereqs      *Prerequisites `json:"prerequisites,omitempty"`
	Interactions []Interaction  `json:"interactions,omitempty"`

	// Carried is the starting carried set for NPC entities.
	Carried []string `json:"carried,omitempty"`

	storage.ExtensionState `json:"ext,omitempty"`
}

// Type returns the parsed EntityType from TypeStr.
func (e *Entity) Type() EntityType {
	switch strings.ToLower(e.TypeStr) {
	case "scenery":
		return EntityTypeScenery
	case "item":
		return EntityTypeItem
	case "container":
		return EntityTypeContainer
	case "vehicle":
		return EntityTypeVehicle
	case "npc":
		return EntityTypeNPC
	default:
		return EntityTypeUnknown
	}
}

// DisplayName returns the entity's name, or its spooky variant when
// one exists and the narrative has tipped over.
func (e *Entity) DisplayName(spooky bool) string {
	if spooky && e.SpookyName != "" {
		return e.SpookyName
	}
	return e.Name
}

// Matches reports whether the given player-typed name refers to this
// entity, by display name or alias, case-insensitively.
func (e *Entity) Matches(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	if strings.ToLower(e.Name) == name {
		return true
	}
	for _, alias := range e.Aliases {
		if strings.ToLower(alias) == name {
			return true
		}
	}
	// Allow matching on the final word of a multi-word name
	// ("lantern" for "brass lantern").
	words := strings.Fields(strings.ToLower(e.Name))
	return len(words) > 1 && words[len(words)-1] == name
}

// Validate satisfies storage.ValidatingSpec.
func (e *Entity) Validate() error {
	el := errors.NewErrorList()

	if e.Name == "" {
		el.Add(fmt.Errorf("entity name is required"))
	}
	if e.TypeStr == "" {
		el.Add(fmt.Errorf("entity type is required"))
	} else if e.Type() == EntityTypeUnknown {
		el.Add(fmt.Errorf("entity type %q is invalid", e.TypeStr))
	}

	if e.Container != nil && e.Type() != EntityTypeContainer {
		el.Add(fmt.Errorf("container spec on non-container type %q", e.TypeStr))
	}
	if e.Vehicle != nil && e.Type() != EntityTypeVehicle {
		el.Add(fmt.Errorf("vehicle spec on non-vehicle type %q", e.TypeStr))
	}
	if e.Type() == EntityTypeVehicle && e.Vehicle == nil {
		el.Add(fmt.Errorf("vehicle entity requires a vehicle spec"))
	}

	if e.Vehicle != nil {
		switch e.Vehicle.State {
		case "", VehicleStateReady, VehicleStateDeflated, VehicleStateInflated, VehicleStatePunctured:
		default:
			el.Add(fmt.Errorf("vehicle state %q is invalid", e.Vehicle.State))
		}
	}

	if e.Treasure && e.TreasureValue <= 0 {
		el.Add(fmt.Errorf("treasure entity requires a positive treasure_value"))
	}

	for i, in := range e.Interactions {
		if in.Verb == "" {
			el.Add(fmt.Errorf("interaction %d: verb is required", i))
		}
		if in.Response == "" {
			el.Add(fmt.Errorf("interaction %d: response is required", i))
		}
	}

	return el.Err()
}
