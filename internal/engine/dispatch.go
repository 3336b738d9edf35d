// Package engine resolves parsed commands against a session: it
// disambiguates object references, expands collective references,
// checks prerequisites, and routes each canonical verb to its
// handler. One turn is one synchronous pass through that pipeline.
package engine

import (
	"github.com/veilbrook/go-haunt/internal/parser"
	"github.com/veilbrook/go-haunt/internal/sanity"
	"github.com/veilbrook/go-haunt/internal/session"
	"github.com/veilbrook/go-haunt/internal/world"
)

type handlerFunc func(cmd parser.Command, s *session.Session) *Result

// Dispatcher routes canonical verbs to their handlers.
type Dispatcher struct {
	world    *world.World
	handlers map[string]handlerFunc
}

// objectVerbs are the verbs whose Object slot must resolve to a
// reachable entity before the handler runs.
var objectVerbs = map[string]bool{
	parser.VerbExamine:    true,
	parser.VerbRead:       true,
	parser.VerbTake:       true,
	parser.VerbDrop:       true,
	parser.VerbPut:        true,
	parser.VerbOpen:       true,
	parser.VerbClose:      true,
	parser.VerbLock:       true,
	parser.VerbUnlock:     true,
	parser.VerbBoard:      true,
	parser.VerbFix:        true,
	parser.VerbInflate:    true,
	parser.VerbClimb:      true,
	parser.VerbLight:      true,
	parser.VerbExtinguish: true,
}

// multiVerbs may take collective objects ("take all").
var multiVerbs = map[string]bool{
	parser.VerbTake: true,
	parser.VerbDrop: true,
}

func NewDispatcher(w *world.World) *Dispatcher {
	d := &Dispatcher{
		world:    w,
		handlers: map[string]handlerFunc{},
	}

	d.register(parser.VerbGo, d.handleGo)
	d.register(parser.VerbLook, d.handleLook)
	d.register(parser.VerbExamine, d.handleExamine)
	d.register(parser.VerbRead, d.handleRead)
	d.register(parser.VerbTake, d.handleTake)
	d.register(parser.VerbDrop, d.handleDrop)
	d.register(parser.VerbPut, d.handlePut)
	d.register(parser.VerbOpen, d.handleOpen)
	d.register(parser.VerbClose, d.handleClose)
	d.register(parser.VerbLock, d.handleLock)
	d.register(parser.VerbUnlock, d.handleUnlock)
	d.register(parser.VerbInventory, d.handleInventory)
	d.register(parser.VerbBoard, d.handleBoard)
	d.register(parser.VerbDisembark, d.handleDisembark)
	d.register(parser.VerbLaunch, d.handleLaunch)
	d.register(parser.VerbFix, d.handleFix)
	d.register(parser.VerbInflate, d.handleInflate)
	d.register(parser.VerbClimb, d.handleClimb)
	d.register(parser.VerbRest, d.handleRest)
	d.register(parser.VerbLight, d.handleLight)
	d.register(parser.VerbExtinguish, d.handleExtinguish)
	d.register(parser.VerbScore, d.handleScore)
	d.register(parser.VerbQuit, d.handleQuit)
	d.register(parser.VerbUnknown, d.handleUnknown)

	return d
}

func (d *Dispatcher) register(verb string, h handlerFunc) {
	d.handlers[verb] = h
}

// Dispatch resolves one command. A pending clarification from a
// previous ambiguous command is cleared whatever this command is; the
// source engine behaved that way and callers depend on it.
func (d *Dispatcher) Dispatch(cmd parser.Command, s *session.Session) *Result {
	s.Pending = nil

	if isCollective(cmd.Object) && multiVerbs[cmd.Verb] {
		ids := d.expandMulti(cmd.Verb, cmd.Object, s)
		r := d.handleMulti(cmd.Verb, ids, s, cmd.Target)
		if r.Success {
			s.TurnCount++
		}
		return r
	}

	if r := d.disambiguate(cmd, s); r != nil {
		return r
	}

	r := d.invoke(cmd, s)
	if r.Success {
		s.TurnCount++
	}
	return r
}

// invoke runs the single-object pipeline: resolve the object in
// scope, check prerequisites, let an authored interaction override
// the built-in handler, then run the handler. Handlers receive a
// resolved entity id in cmd.Object.
func (d *Dispatcher) invoke(cmd parser.Command, s *session.Session) *Result {
	h, registered := d.handlers[cmd.Verb]
	if !registered {
		return fail("I don't know how to do that.")
	}

	if cmd.Object != "" && objectVerbs[cmd.Verb] {
		id, res := d.resolveOne(s, cmd.Object)
		if res != nil {
			return res
		}
		if res := d.checkPrerequisites(cmd.Verb, id, s); res != nil {
			return res
		}
		if ent, err := d.world.Entity(id); err == nil {
			if in := findInteraction(ent, cmd.Verb); in != nil {
				return d.runInteraction(in, id, ent, s)
			}
		}
		cmd.Object = id
	}

	return h(cmd, s)
}

// displayName resolves an entity id for player-facing text, degrading
// to the raw id when the template is missing.
func (d *Dispatcher) displayName(id string, s *session.Session) string {
	return d.world.DisplayName(id, s.SanityLevel)
}

// spooky reports whether entity display should use spooky variants at
// the session's current sanity.
func (d *Dispatcher) spooky(s *session.Session) bool {
	return sanity.Threshold(s.SanityLevel) >= sanity.BandUnreliable
}
