package parser

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   Command
	}{
		"empty input": {
			input: "",
			exp:   Command{Verb: VerbUnknown},
		},
		"whitespace only": {
			input: "   \t  ",
			exp:   Command{Verb: VerbUnknown},
		},
		"simple verb object": {
			input: "take lantern",
			exp:   Command{Verb: VerbTake, Object: "lantern"},
		},
		"uppercase input": {
			input: "TAKE LANTERN",
			exp:   Command{Verb: VerbTake, Object: "lantern"},
		},
		"mixed case input": {
			input: "TaKe LaNtErN",
			exp:   Command{Verb: VerbTake, Object: "lantern"},
		},
		"article stripped": {
			input: "take the lantern",
			exp:   Command{Verb: VerbTake, Object: "lantern"},
		},
		"multiple articles stripped": {
			input: "put the coin in a box",
			exp:   Command{Verb: VerbPut, Object: "coin", Preposition: "IN", Target: "box"},
		},
		"synonym get": {
			input: "get lamp",
			exp:   Command{Verb: VerbTake, Object: "lamp"},
		},
		"synonym grab": {
			input: "grab lamp",
			exp:   Command{Verb: VerbTake, Object: "lamp"},
		},
		"multi-word verb pick up": {
			input: "pick up the sword",
			exp:   Command{Verb: VerbTake, Object: "sword"},
		},
		"multi-word verb look at": {
			input: "look at painting",
			exp:   Command{Verb: VerbExamine, Object: "painting"},
		},
		"multi-word verb put down": {
			input: "put down the lamp",
			exp:   Command{Verb: VerbDrop, Object: "lamp"},
		},
		"abbreviation x": {
			input: "x mirror",
			exp:   Command{Verb: VerbExamine, Object: "mirror"},
		},
		"abbreviation l": {
			input: "l",
			exp:   Command{Verb: VerbLook},
		},
		"abbreviation i": {
			input: "i",
			exp:   Command{Verb: VerbInventory},
		},
		"abbreviation q": {
			input: "q",
			exp:   Command{Verb: VerbQuit},
		},
		"bare direction north": {
			input: "north",
			exp:   Command{Verb: VerbGo, Direction: "north"},
		},
		"bare direction letter": {
			input: "n",
			exp:   Command{Verb: VerbGo, Direction: "north"},
		},
		"bare direction down": {
			input: "d",
			exp:   Command{Verb: VerbGo, Direction: "down"},
		},
		"go with direction": {
			input: "go west",
			exp:   Command{Verb: VerbGo, Direction: "west"},
		},
		"walk with abbreviated direction": {
			input: "walk u",
			exp:   Command{Verb: VerbGo, Direction: "up"},
		},
		"climb up becomes go": {
			input: "climb up",
			exp:   Command{Verb: VerbGo, Direction: "up"},
		},
		"climb object stays climb": {
			input: "climb tree",
			exp:   Command{Verb: VerbClimb, Object: "tree"},
		},
		"instrument with": {
			input: "unlock chest with key",
			exp:   Command{Verb: VerbUnlock, Object: "chest", Preposition: "WITH", Instrument: "key"},
		},
		"instrument using": {
			input: "unlock chest using rusty key",
			exp:   Command{Verb: VerbUnlock, Object: "chest", Preposition: "USING", Instrument: "rusty key"},
		},
		"target in": {
			input: "put coin in mailbox",
			exp:   Command{Verb: VerbPut, Object: "coin", Preposition: "IN", Target: "mailbox"},
		},
		"multi-word object and target": {
			input: "put brass lantern into wooden chest",
			exp:   Command{Verb: VerbPut, Object: "brass lantern", Preposition: "INTO", Target: "wooden chest"},
		},
		"trailing preposition folds into object": {
			input: "board raft on",
			exp:   Command{Verb: VerbBoard, Object: "raft on"},
		},
		"unknown verb": {
			input: "defenestrate the cat",
			exp:   Command{Verb: VerbUnknown},
		},
		"gibberish": {
			input: "xyzzy plugh",
			exp:   Command{Verb: VerbUnknown},
		},
		"collective object": {
			input: "take all",
			exp:   Command{Verb: VerbTake, Object: "all"},
		},
		"collective with exception": {
			input: "take all except knife",
			exp:   Command{Verb: VerbTake, Object: "all except knife"},
		},
		"rest synonym wait": {
			input: "wait",
			exp:   Command{Verb: VerbRest},
		},
		"inflate synonym pump": {
			input: "pump raft",
			exp:   Command{Verb: VerbInflate, Object: "raft"},
		},
		"fix synonym patch": {
			input: "patch the raft",
			exp:   Command{Verb: VerbFix, Object: "raft"},
		},
		"extra whitespace": {
			input: "  open    the   mailbox  ",
			exp:   Command{Verb: VerbOpen, Object: "mailbox"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Parse(tt.input)
			testutil.AssertEqual(t, "verb", got.Verb, tt.exp.Verb)
			testutil.AssertEqual(t, "object", got.Object, tt.exp.Object)
			testutil.AssertEqual(t, "target", got.Target, tt.exp.Target)
			testutil.AssertEqual(t, "instrument", got.Instrument, tt.exp.Instrument)
			testutil.AssertEqual(t, "direction", got.Direction, tt.exp.Direction)
			testutil.AssertEqual(t, "preposition", got.Preposition, tt.exp.Preposition)
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	inputs := []string{
		"take the brass lantern",
		"unlock chest with key",
		"n",
		"take all except knife",
		"nonsense input here",
	}

	for _, input := range inputs {
		first := Parse(input)
		for i := 0; i < 10; i++ {
			testutil.AssertEqual(t, input, Parse(input), first)
		}
	}
}
