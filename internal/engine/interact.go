package engine

import (
	"strings"

	"github.com/veilbrook/go-haunt/internal/sanity"
	"github.com/veilbrook/go-haunt/internal/session"
	"github.com/veilbrook/go-haunt/internal/world"
)

// findInteraction returns the authored interaction for a canonical
// verb, if the entity declares one. Authored interactions override
// the built-in handler for that verb.
func findInteraction(ent *world.Entity, verb string) *world.Interaction {
	for i := range ent.Interactions {
		if strings.EqualFold(ent.Interactions[i].Verb, verb) {
			return &ent.Interactions[i]
		}
	}
	return nil
}

// runInteraction checks the interaction's precondition, expands its
// response, and applies its state change as one atomic transition.
func (d *Dispatcher) runInteraction(in *world.Interaction, id string, ent *world.Entity, s *session.Session) *Result {
	if r := d.checkDeclared(in.Requires, s); r != nil {
		return r
	}

	msg := expandResponse(in.Response, &responseData{
		Name:   ent.DisplayName(sanity.Threshold(s.SanityLevel) >= sanity.BandUnreliable),
		Room:   s.Room,
		Sanity: s.SanityLevel,
		Score:  s.Score,
	})

	result := ok(msg)
	if in.Set != nil {
		st := s.Entity(id)
		if in.Set.Open != nil {
			st.Open = *in.Set.Open
		}
		if in.Set.Locked != nil {
			st.Locked = *in.Set.Locked
		}
		if in.Set.Lit != nil {
			st.Lit = *in.Set.Lit
		}
		if in.Set.VehicleState != "" {
			st.VehicleState = in.Set.VehicleState
		}
		if in.Set.GrantFlag != "" {
			s.Flags[in.Set.GrantFlag] = true
		}
		if delta := in.Set.SanityDelta; delta != 0 {
			if delta < 0 {
				result.Notifications = append(result.Notifications,
					sanity.ApplyLoss(s, -delta, ent.Name)...)
			} else {
				sanity.ApplyGain(s, delta)
			}
		}
	}
	return result
}
