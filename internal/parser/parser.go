// Package parser converts raw player input into canonical commands.
// It is intentionally dumb: a fixed verb/synonym/preposition grammar,
// no NLP. Parse is a total, pure function of its input string.
package parser

import "strings"

// Canonical verb tokens produced by Parse.
const (
	VerbGo         = "GO"
	VerbLook       = "LOOK"
	VerbExamine    = "EXAMINE"
	VerbRead       = "READ"
	VerbTake       = "TAKE"
	VerbDrop       = "DROP"
	VerbPut        = "PUT"
	VerbOpen       = "OPEN"
	VerbClose      = "CLOSE"
	VerbLock       = "LOCK"
	VerbUnlock     = "UNLOCK"
	VerbInventory  = "INVENTORY"
	VerbBoard      = "BOARD"
	VerbDisembark  = "DISEMBARK"
	VerbLaunch     = "LAUNCH"
	VerbFix        = "FIX"
	VerbInflate    = "INFLATE"
	VerbClimb      = "CLIMB"
	VerbRest       = "REST"
	VerbLight      = "LIGHT"
	VerbExtinguish = "EXTINGUISH"
	VerbScore      = "SCORE"
	VerbQuit       = "QUIT"
	VerbUnknown    = "UNKNOWN"
)

// Command is the canonical parse of one line of input. Pure value, no
// behavior.
type Command struct {
	Verb        string
	Object      string
	Target      string
	Instrument  string
	Direction   string
	Preposition string
}

// directions maps direction words and single-letter abbreviations to
// canonical directions.
var directions = map[string]string{
	"north": "north",
	"n":     "north",
	"south": "south",
	"s":     "south",
	"east":  "east",
	"e":     "east",
	"west":  "west",
	"w":     "west",
	"up":    "up",
	"u":     "up",
	"down":  "down",
	"d":     "down",
}

// synonyms maps surface verbs to canonical verbs.
var synonyms = map[string]string{
	"go":   VerbGo,
	"walk": VerbGo,
	"run":  VerbGo,
	"head": VerbGo,
	"move": VerbGo,

	"look": VerbLook,
	"l":    VerbLook,

	"examine": VerbExamine,
	"x":       VerbExamine,
	"inspect": VerbExamine,
	"lookat":  VerbExamine,
	"study":   VerbExamine,
	"check":   VerbExamine,

	"read": VerbRead,

	"take":   VerbTake,
	"get":    VerbTake,
	"grab":   VerbTake,
	"pick":   VerbTake,
	"pickup": VerbTake,

	"drop":    VerbDrop,
	"discard": VerbDrop,

	"put":    VerbPut,
	"place":  VerbPut,
	"insert": VerbPut,

	"open":   VerbOpen,
	"close":  VerbClose,
	"shut":   VerbClose,
	"lock":   VerbLock,
	"unlock": VerbUnlock,

	"inventory": VerbInventory,
	"inv":       VerbInventory,
	"i":         VerbInventory,

	"board":     VerbBoard,
	"ride":      VerbBoard,
	"mount":     VerbBoard,
	"disembark": VerbDisembark,
	"dismount":  VerbDisembark,
	"exit":      VerbDisembark,
	"launch":    VerbLaunch,
	"fix":       VerbFix,
	"repair":    VerbFix,
	"patch":     VerbFix,
	"inflate":   VerbInflate,
	"pump":      VerbInflate,

	"climb": VerbClimb,
	"scale": VerbClimb,

	"rest":  VerbRest,
	"wait":  VerbRest,
	"sleep": VerbRest,
	"z":     VerbRest,

	"light":      VerbLight,
	"ignite":     VerbLight,
	"extinguish": VerbExtinguish,
	"douse":      VerbExtinguish,
	"snuff":      VerbExtinguish,

	"score": VerbScore,
	"quit":  VerbQuit,
	"q":     VerbQuit,
}

// multiWordVerbs joins two-token verb phrases into a single surface
// verb before synonym resolution.
var multiWordVerbs = map[string]string{
	"pick up":  "pickup",
	"look at":  "lookat",
	"put down": "drop",
}

// prepositions split the object slot from the second slot. with/using
// fill the instrument; the rest fill the target.
var prepositions = map[string]bool{
	"with":   true,
	"using":  true,
	"in":     true,
	"into":   true,
	"inside": true,
	"on":     true,
	"onto":   true,
	"at":     true,
	"to":     true,
	"from":   true,
	"under":  true,
}

// articles are stripped wherever they appear before object tokens.
var articles = map[string]bool{
	"the":  true,
	"a":    true,
	"an":   true,
	"my":   true,
	"some": true,
}

// Parse converts a line of input into a canonical Command. It never
// fails; anything outside the grammar comes back with VerbUnknown.
func Parse(text string) Command {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(words) == 0 {
		return Command{Verb: VerbUnknown}
	}

	// Bare direction: "n", "down" -> GO.
	if len(words) == 1 {
		if dir, ok := directions[words[0]]; ok {
			return Command{Verb: VerbGo, Direction: dir}
		}
	}

	words = joinMultiWordVerbs(words)

	verb, ok := synonyms[words[0]]
	if !ok {
		return Command{Verb: VerbUnknown}
	}

	rest := stripArticles(words[1:])

	// GO and CLIMB treat a leading direction word as the direction.
	if len(rest) > 0 {
		if dir, ok := directions[rest[0]]; ok && (verb == VerbGo || verb == VerbClimb) {
			return Command{Verb: VerbGo, Direction: dir}
		}
	}

	cmd := Command{Verb: verb}

	object, prep, second := splitOnPreposition(rest)
	cmd.Object = object
	if prep != "" {
		cmd.Preposition = strings.ToUpper(prep)
		if prep == "with" || prep == "using" {
			cmd.Instrument = second
		} else {
			cmd.Target = second
		}
	}

	return cmd
}

func joinMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}
	phrase := words[0] + " " + words[1]
	if joined, ok := multiWordVerbs[phrase]; ok {
		return append([]string{joined}, words[2:]...)
	}
	return words
}

func stripArticles(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			out = append(out, w)
		}
	}
	return out
}

// splitOnPreposition breaks the tokens after the verb at the first
// preposition, re-joining multi-word names with single spaces. The
// preposition is only treated as a splitter when tokens exist on both
// sides, so "sit on" style trailing prepositions fold into the object.
func splitOnPreposition(words []string) (object, prep, second string) {
	for i, w := range words {
		if prepositions[w] && i > 0 && i < len(words)-1 {
			return strings.Join(words[:i], " "), w, strings.Join(words[i+1:], " ")
		}
	}
	return strings.Join(words, " "), "", ""
}
