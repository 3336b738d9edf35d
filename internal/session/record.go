package session

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Record is the persisted layout of a session. External producers are
// sloppy about key casing (CurrentRoom, currentRoom, current_room all
// occur in the wild), so unmarshalling canonicalizes every key before
// decoding. Marshalling always emits snake_case.
type Record struct {
	SessionId string                  `json:"session_id"`
	Room      string                  `json:"current_room"`
	Inventory []string                `json:"inventory,omitempty"`
	Flags     map[string]bool         `json:"flags,omitempty"`
	Sanity    int                     `json:"sanity"`
	Moves     int                     `json:"moves"`
	TurnCount int                     `json:"turn_count"`
	Visited   []string                `json:"rooms_visited,omitempty"`
	Vehicle   string                  `json:"current_vehicle,omitempty"`
	Pending   *Clarification          `json:"disambiguation_context,omitempty"`
	Score     int                     `json:"score"`
	Won       bool                    `json:"won"`
	Entities  map[string]*EntityState `json:"entity_state,omitempty"`
	RoomItems map[string][]string     `json:"room_items,omitempty"`
}

// wireKeys maps canonicalized external keys to the snake_case field
// names Record declares. Canonicalization lowercases and strips
// underscores, so one row covers every casing of a key.
var wireKeys = map[string]string{
	"sessionid":             "session_id",
	"currentroom":           "current_room",
	"room":                  "current_room",
	"inventory":             "inventory",
	"flags":                 "flags",
	"sanity":                "sanity",
	"moves":                 "moves",
	"turncount":             "turn_count",
	"roomsvisited":          "rooms_visited",
	"visited":               "rooms_visited",
	"currentvehicle":        "current_vehicle",
	"disambiguationcontext": "disambiguation_context",
	"score":                 "score",
	"won":                   "won",
	"entitystate":           "entity_state",
	"roomitems":             "room_items",
}

func canonicalKey(k string) string {
	return strings.ReplaceAll(strings.ToLower(k), "_", "")
}

// recordFields avoids recursing into Record.UnmarshalJSON.
type recordFields Record

func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	normalized := make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		key := k
		if canonical, ok := wireKeys[canonicalKey(k)]; ok {
			key = canonical
		}
		normalized[key] = v
	}

	buf, err := json.Marshal(normalized)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, (*recordFields)(r))
}

// Validate satisfies storage.ValidatingSpec.
func (r *Record) Validate() error {
	el := errors.NewErrorList()

	if r.SessionId == "" {
		el.Add(fmt.Errorf("session_id is required"))
	}
	if r.Room == "" {
		el.Add(fmt.Errorf("current_room is required"))
	}
	if r.Sanity < 0 || r.Sanity > 100 {
		el.Add(fmt.Errorf("sanity %d out of range [0,100]", r.Sanity))
	}

	return el.Err()
}

// toRecord flattens a live session into its persisted layout.
func toRecord(s *Session) *Record {
	visited := make([]string, 0, len(s.Visited))
	for id := range s.Visited {
		visited = append(visited, id)
	}

	return &Record{
		SessionId: s.Id,
		Room:      s.Room,
		Inventory: s.Inventory,
		Flags:     s.Flags,
		Sanity:    s.SanityLevel,
		Moves:     s.Moves,
		TurnCount: s.TurnCount,
		Visited:   visited,
		Vehicle:   s.Vehicle,
		Pending:   s.Pending,
		Score:     s.Score,
		Won:       s.Won,
		Entities:  s.Entities,
		RoomItems: s.RoomItems,
	}
}

// fromRecord inflates a persisted record back into a live session.
func fromRecord(r *Record) *Session {
	s := &Session{
		Id:          r.SessionId,
		Room:        r.Room,
		Inventory:   r.Inventory,
		Flags:       r.Flags,
		SanityLevel: r.Sanity,
		Moves:       r.Moves,
		TurnCount:   r.TurnCount,
		Visited:     map[string]bool{},
		Vehicle:     r.Vehicle,
		Pending:     r.Pending,
		Score:       r.Score,
		Won:         r.Won,
		Entities:    r.Entities,
		RoomItems:   r.RoomItems,
	}
	for _, id := range r.Visited {
		s.Visited[id] = true
	}
	if s.Flags == nil {
		s.Flags = map[string]bool{}
	}
	if s.Entities == nil {
		s.Entities = map[string]*EntityState{}
	}
	if s.RoomItems == nil {
		s.RoomItems = map[string][]string{}
	}
	return s
}
