package engine

import (
	"sort"
	"strings"

	"github.com/veilbrook/go-haunt/internal/session"
)

// scope computes what a session can currently reach: room items, the
// contents of open containers among them, and the inventory. Container
// contents are never copied anywhere on open; reachability is
// recomputed at every lookup, so closing a container hides what is
// still inside without touching its stored contents.

// inDark reports whether the session is in a dark room with no lit
// light source in hand.
func (d *Dispatcher) inDark(s *session.Session) bool {
	room, err := d.world.Room(s.Room)
	if err != nil || !room.Dark {
		return false
	}
	for _, id := range s.Inventory {
		ent, err := d.world.Entity(id)
		if err == nil && ent.LightSource && s.Entity(id).Lit {
			return false
		}
	}
	return true
}

// roomScope returns the reachable ids in the current room: its items
// plus the contents of any open container among them. Empty in the
// dark.
func (d *Dispatcher) roomScope(s *session.Session) []string {
	if d.inDark(s) {
		return nil
	}

	var ids []string
	for _, id := range s.ItemsIn(s.Room) {
		ids = append(ids, id)
		st := s.Entity(id)
		if st.Open {
			ids = append(ids, st.Contents...)
		}
	}
	return ids
}

// fullScope is the room scope plus the inventory and the contents of
// open containers carried in it.
func (d *Dispatcher) fullScope(s *session.Session) []string {
	ids := d.roomScope(s)
	for _, id := range s.Inventory {
		ids = append(ids, id)
		st := s.Entity(id)
		if st.Open {
			ids = append(ids, st.Contents...)
		}
	}
	return ids
}

// matchesInScope returns every reachable entity id whose name or
// alias matches the given player-typed name.
func (d *Dispatcher) matchesInScope(s *session.Session, name string) []string {
	var matches []string
	seen := map[string]bool{}
	for _, id := range d.fullScope(s) {
		if seen[id] {
			continue
		}
		seen[id] = true
		ent, err := d.world.Entity(id)
		if err != nil {
			// Dangling reference in authored data; fall back to
			// matching on the raw id rather than dropping the turn.
			if strings.EqualFold(id, name) {
				matches = append(matches, id)
			}
			continue
		}
		if ent.Matches(name) {
			matches = append(matches, id)
		}
	}
	return matches
}

// resolveOne resolves a player-typed name to exactly one reachable
// entity id, or a failed Result. Ambiguity is handled upstream by the
// disambiguation pass; two matches here take the first.
func (d *Dispatcher) resolveOne(s *session.Session, name string) (string, *Result) {
	if name == "" {
		return "", fail("What do you want to act on?")
	}
	// Exact id match first, so internally synthesized commands (multi
	// expansion, pending clarifications) bypass name matching.
	for _, id := range d.fullScope(s) {
		if id == name {
			return id, nil
		}
	}
	matches := d.matchesInScope(s, name)
	if len(matches) == 0 {
		if d.inDark(s) {
			return "", fail("It is pitch black here. You can't make anything out.")
		}
		return "", fail("I don't see a " + d.knownName(s, name) + " here.")
	}
	return matches[0], nil
}

// knownName prefers an entity's display name over the player's wording
// when the name matches something the world knows about, so an
// out-of-reach item is still named properly.
func (d *Dispatcher) knownName(s *session.Session, name string) string {
	ents := d.world.Entities()
	ids := make([]string, 0, len(ents))
	for id := range ents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if ents[id].Matches(name) {
			return ents[id].DisplayName(d.spooky(s))
		}
	}
	return name
}
