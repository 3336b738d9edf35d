package world

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/veilbrook/go-haunt/internal/storage"
)

// Exit defines a destination for movement out of a room. An exit may
// be gated on session flags; walking it without them fails with the
// blocked message.
type Exit struct {
	RoomId         string   `json:"room_id"`
	FlagsRequired  []string `json:"flags_required,omitempty"`
	BlockedMessage string   `json:"blocked_message,omitempty"`
}

// Room is an immutable location template. The items list is the
// authored starting layout; per-session item movement happens in the
// session overlay, never here.
type Room struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	// SpookyDescription replaces Description once the player's grip on
	// reality slips below the disturbed band.
	SpookyDescription string          `json:"spooky_description,omitempty"`
	Exits             map[string]Exit `json:"exits,omitempty"`
	Items             []string        `json:"items,omitempty"`
	Dark              bool            `json:"is_dark,omitempty"`
	SanityEffect      int             `json:"sanity_effect,omitempty"`
	SafeRoom          bool            `json:"is_safe_room,omitempty"`

	storage.ExtensionState `json:"ext,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	if r.Description == "" {
		el.Add(fmt.Errorf("room description is required"))
	}

	for dir, exit := range r.Exits {
		if exit.RoomId == "" {
			el.Add(fmt.Errorf("exit %s: room_id is required", dir))
		}
	}

	return el.Err()
}
