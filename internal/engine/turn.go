package engine

import (
	"fmt"
	"sort"

	"github.com/veilbrook/go-haunt/internal/display"
	"github.com/veilbrook/go-haunt/internal/parser"
	"github.com/veilbrook/go-haunt/internal/session"
	"github.com/veilbrook/go-haunt/internal/world"
)

// Publisher delivers out-of-band notifications (threshold crossings,
// score changes) to whoever is watching a session's subject.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Engine is the turn entry point consumed by the transport layer: one
// session id plus one line of input in, one TurnResponse out. A turn
// is fully synchronous; the session is loaded before and persisted
// after every command.
type Engine struct {
	world      *world.World
	sessions   *session.Store
	dispatcher *Dispatcher
	pub        Publisher
}

func New(w *world.World, sessions *session.Store, pub Publisher) *Engine {
	return &Engine{
		world:      w,
		sessions:   sessions,
		dispatcher: NewDispatcher(w),
		pub:        pub,
	}
}

// TurnResponse is the full player-facing view after one turn.
type TurnResponse struct {
	Room             string   `json:"room"`
	Description      string   `json:"description"`
	Exits            []string `json:"exits"`
	VisibleObjects   []string `json:"visible_objects"`
	InventoryDisplay string   `json:"inventory_display"`
	Sanity           int      `json:"sanity"`
	Score            int      `json:"score"`
	Moves            int      `json:"moves"`
	Message          string   `json:"message"`
	Won              bool     `json:"won,omitempty"`
	Quit             bool     `json:"quit,omitempty"`
}

// NotificationSubject is where a session's out-of-band notifications
// are published.
func NotificationSubject(sessionId string) string {
	return "session-" + sessionId
}

// ExecuteTurn runs one command for a session, creating the session at
// the world's starting room if it doesn't exist yet. User-facing
// failures come back inside the response; an error means the turn
// itself could not be completed.
func (e *Engine) ExecuteTurn(sessionId, text string) (*TurnResponse, error) {
	if sessionId == "" {
		return nil, fmt.Errorf("session id is required")
	}

	s, found, err := e.sessions.Load(sessionId)
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", sessionId, err)
	}
	if !found {
		s = session.New(sessionId, e.world)
	}

	result := e.dispatcher.Dispatch(parser.Parse(text), s)

	if err := e.sessions.Save(s); err != nil {
		return nil, fmt.Errorf("saving session %s: %w", sessionId, err)
	}

	if e.pub != nil {
		for _, note := range result.Notifications {
			// Notification delivery is best effort; a slow observer
			// never fails a turn.
			_ = e.pub.Publish(NotificationSubject(sessionId), []byte(note))
		}
	}

	return e.respond(s, result), nil
}

func (e *Engine) respond(s *session.Session, r *Result) *TurnResponse {
	desc := e.dispatcher.describeRoom(s)

	resp := &TurnResponse{
		Room:             s.Room,
		VisibleObjects:   e.dispatcher.VisibleObjects(s),
		InventoryDisplay: e.inventoryDisplay(s),
		Sanity:           s.SanityLevel,
		Score:            s.Score,
		Moves:            s.Moves,
		Message:          display.Wrap(r.Message),
		Won:              s.Won,
		Quit:             r.Quit,
	}

	if room, err := e.world.Room(s.Room); err == nil {
		// Headline the room name, unless darkness hides even that.
		if !e.dispatcher.inDark(s) {
			desc = display.Title(room.Name) + "\n" + desc
		}
		for dir := range room.Exits {
			resp.Exits = append(resp.Exits, dir)
		}
		sort.Strings(resp.Exits)
	}
	resp.Description = desc

	return resp
}

func (e *Engine) inventoryDisplay(s *session.Session) string {
	if len(s.Inventory) == 0 {
		return "You are empty-handed."
	}
	return "You are carrying: " + e.dispatcher.nameList(s.Inventory, s) + "."
}
