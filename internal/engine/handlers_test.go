package engine

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/veilbrook/go-haunt/internal/world"
)

func TestContainer_ReachabilityIsComputedAtLookup(t *testing.T) {
	d, s := newTestGame(t)

	// The advertisement is out of reach while the mailbox is closed.
	r := do(t, d, s, "take advertisement")
	testutil.AssertEqual(t, "take closed", r.Success, false)

	r = do(t, d, s, "open mailbox")
	testutil.AssertEqual(t, "open", r.Success, true)
	if !strings.Contains(r.Message, "advertisement") {
		t.Errorf("opening message %q does not reveal contents", r.Message)
	}

	r = do(t, d, s, "take advertisement")
	testutil.AssertEqual(t, "take open", r.Success, true)

	// Closing the mailbox must not affect an item already taken out.
	r = do(t, d, s, "close mailbox")
	testutil.AssertEqual(t, "close", r.Success, true)

	r = do(t, d, s, "read advertisement")
	testutil.AssertEqual(t, "read after close", r.Success, true)
	if !strings.Contains(r.Message, "WELCOME TO THE HOUSE") {
		t.Errorf("unexpected read text %q", r.Message)
	}
}

func TestContainer_TakeFromCarriedContainer(t *testing.T) {
	d, s := newTestGame(t)
	do(t, d, s, "north")
	do(t, d, s, "up") // treetop

	r := do(t, d, s, "take satchel")
	testutil.AssertEqual(t, "take satchel", r.Success, true)

	// The locket rides along inside the open satchel and stays takeable.
	r = do(t, d, s, "take locket")
	testutil.AssertEqual(t, "take locket", r.Success, true)
	testutil.AssertEqual(t, "message", r.Message, "Taken.")
	testutil.AssertEqual(t, "carrying", s.Carrying("locket"), true)
	testutil.AssertEqual(t, "satchel emptied", len(s.Entity("satchel").Contents), 0)
}

func TestContainer_UnreachableItemNamedByTemplate(t *testing.T) {
	d, s := newTestGame(t)
	s.Room = "chapel"

	// The crown is sealed inside the locked chest, but the complaint
	// still uses its proper name.
	r := do(t, d, s, "take crown")
	testutil.AssertEqual(t, "success", r.Success, false)
	testutil.AssertEqual(t, "message", r.Message, "I don't see a tarnished crown here.")
}

func TestContainer_StateOrderRules(t *testing.T) {
	d, s := newTestGame(t)

	tests := []struct {
		input string
		exp   string
	}{
		{"close mailbox", "It's not open."},
		{"unlock mailbox", "It's not locked."},
		{"open mailbox", "Opening the mailbox reveals: advertisement."},
		{"open mailbox", "It's already open."},
		{"lock mailbox", "You'll have to close the mailbox first."},
		{"close mailbox", "Closed."},
	}

	for _, tt := range tests {
		r := do(t, d, s, tt.input)
		testutil.AssertEqual(t, tt.input, r.Message, tt.exp)
	}
}

func TestContainer_LockedChest(t *testing.T) {
	d, s := newTestGame(t)
	s.Room = "chapel"

	r := do(t, d, s, "open chest")
	testutil.AssertEqual(t, "open locked", r.Success, false)
	testutil.AssertEqual(t, "locked message", r.Message, "It's locked.")

	r = do(t, d, s, "unlock chest")
	testutil.AssertEqual(t, "unlock without key", r.Success, false)
	testutil.AssertEqual(t, "no key message", r.Message, "You have nothing that fits the oak chest.")

	s.Inventory = append(s.Inventory, "brass-key")
	r = do(t, d, s, "unlock chest with brass key")
	testutil.AssertEqual(t, "unlock with key", r.Success, true)
	testutil.AssertEqual(t, "unlocked", r.Message, "Unlocked.")

	r = do(t, d, s, "open chest")
	testutil.AssertEqual(t, "open unlocked", r.Success, true)

	r = do(t, d, s, "take crown")
	testutil.AssertEqual(t, "take crown", r.Success, true)
}

func TestContainer_Put(t *testing.T) {
	d, s := newTestGame(t)
	do(t, d, s, "open mailbox")
	do(t, d, s, "take advertisement")

	r := do(t, d, s, "put advertisement in mailbox")
	testutil.AssertEqual(t, "put", r.Success, true)
	testutil.AssertEqual(t, "carrying", s.Carrying("advertisement"), false)
	testutil.AssertEqual(t, "back inside", contains(s.Entity("mailbox").Contents, "advertisement"), true)

	do(t, d, s, "take advertisement")
	do(t, d, s, "close mailbox")
	r = do(t, d, s, "put advertisement in mailbox")
	testutil.AssertEqual(t, "put into closed", r.Success, false)
	testutil.AssertEqual(t, "closed message", r.Message, "The mailbox is closed.")
}

func TestDarkRoom(t *testing.T) {
	d, s := newTestGame(t)

	r := do(t, d, s, "down")
	testutil.AssertEqual(t, "entered", r.Success, true)
	testutil.AssertEqual(t, "pitch black", r.Message, "It is pitch black here. You can't see a thing.")

	r = do(t, d, s, "take coin")
	testutil.AssertEqual(t, "take in dark", r.Success, false)
	testutil.AssertEqual(t, "dark message", r.Message, "It is pitch black here. You can't make anything out.")

	// Carrying a lit lantern restores sight.
	do(t, d, s, "up")
	do(t, d, s, "take lantern")
	do(t, d, s, "light lantern")
	r = do(t, d, s, "down")
	testutil.AssertEqual(t, "entered lit", r.Success, true)
	if !strings.Contains(r.Message, "stone cellar") {
		t.Errorf("expected cellar description, got %q", r.Message)
	}

	r = do(t, d, s, "take coin")
	testutil.AssertEqual(t, "take with light", r.Success, true)

	// Extinguishing plunges the room back into dark.
	do(t, d, s, "extinguish lantern")
	r = do(t, d, s, "look")
	testutil.AssertEqual(t, "dark again", r.Message, "It is pitch black here. You can't see a thing.")
}

func TestVehicle_InflateBoardLaunch(t *testing.T) {
	d, s := newTestGame(t)
	do(t, d, s, "east") // riverbank

	r := do(t, d, s, "board raft")
	testutil.AssertEqual(t, "board deflated", r.Success, false)
	if !strings.Contains(r.Message, "inflating") {
		t.Errorf("unexpected message %q", r.Message)
	}

	r = do(t, d, s, "launch")
	testutil.AssertEqual(t, "launch unboarded", r.Success, false)

	r = do(t, d, s, "inflate raft")
	testutil.AssertEqual(t, "inflate", r.Success, true)
	testutil.AssertEqual(t, "state", s.Entity("raft").VehicleState, world.VehicleStateInflated)

	r = do(t, d, s, "inflate raft")
	testutil.AssertEqual(t, "inflate again", r.Success, false)
	testutil.AssertEqual(t, "already message", r.Message, "It's already inflated.")

	r = do(t, d, s, "board raft")
	testutil.AssertEqual(t, "board", r.Success, true)
	testutil.AssertEqual(t, "vehicle", s.Vehicle, "raft")

	movesBefore := s.Moves
	r = do(t, d, s, "launch")
	testutil.AssertEqual(t, "launch", r.Success, true)
	testutil.AssertEqual(t, "room", s.Room, "island")
	testutil.AssertEqual(t, "moves", s.Moves, movesBefore+1)
	// The raft travels with the player.
	testutil.AssertEqual(t, "raft moved", contains(s.ItemsIn("island"), "raft"), true)
	testutil.AssertEqual(t, "raft gone from bank", contains(s.ItemsIn("riverbank"), "raft"), false)

	r = do(t, d, s, "disembark")
	testutil.AssertEqual(t, "disembark", r.Success, true)
	testutil.AssertEqual(t, "vehicle cleared", s.Vehicle, "")
}

func TestVehicle_SharpItemPuncturesOnBoarding(t *testing.T) {
	d, s := newTestGame(t)
	do(t, d, s, "east")
	do(t, d, s, "take knife")
	do(t, d, s, "inflate raft")

	r := do(t, d, s, "board raft")
	testutil.AssertEqual(t, "success", r.Success, false)
	if !strings.Contains(r.Message, "punctured") {
		t.Errorf("message %q does not mention the puncture", r.Message)
	}
	testutil.AssertEqual(t, "not boarded", s.Vehicle, "")
	testutil.AssertEqual(t, "state", s.Entity("raft").VehicleState, world.VehicleStatePunctured)

	// A punctured raft neither boards nor inflates.
	r = do(t, d, s, "inflate raft")
	testutil.AssertEqual(t, "inflate punctured", r.Success, false)

	do(t, d, s, "drop knife")
	r = do(t, d, s, "board raft")
	testutil.AssertEqual(t, "board punctured", r.Success, false)
}

func TestVehicle_FixWithSealant(t *testing.T) {
	d, s := newTestGame(t)
	do(t, d, s, "east")
	do(t, d, s, "take knife")
	do(t, d, s, "inflate raft")
	do(t, d, s, "board raft") // punctures

	r := do(t, d, s, "fix raft")
	testutil.AssertEqual(t, "fix without sealant", r.Success, false)

	do(t, d, s, "take patch kit")
	r = do(t, d, s, "fix raft")
	testutil.AssertEqual(t, "fix", r.Success, true)
	testutil.AssertEqual(t, "state", s.Entity("raft").VehicleState, world.VehicleStateInflated)

	do(t, d, s, "drop knife")
	r = do(t, d, s, "board raft")
	testutil.AssertEqual(t, "board repaired", r.Success, true)
}

func TestTreasure_ScoringAndWin(t *testing.T) {
	d, s := newTestGame(t)
	do(t, d, s, "north")

	r := do(t, d, s, "take goblet")
	testutil.AssertEqual(t, "take", r.Success, true)
	testutil.AssertEqual(t, "score", s.Score, 5)
	testutil.AssertEqual(t, "not won yet", s.Won, false)
	testutil.AssertEqual(t, "notification", contains(r.Notifications, "Your score has gone up."), true)

	// Dropping and retaking never double-credits.
	do(t, d, s, "drop goblet")
	do(t, d, s, "take goblet")
	testutil.AssertEqual(t, "score unchanged", s.Score, 5)

	// Collect the last treasure and the house lets go.
	do(t, d, s, "take brass key")
	do(t, d, s, "south")
	do(t, d, s, "south") // chapel
	do(t, d, s, "unlock chest")
	do(t, d, s, "open chest")
	r = do(t, d, s, "take crown")
	testutil.AssertEqual(t, "take crown", r.Success, true)
	testutil.AssertEqual(t, "final score", s.Score, 15)
	testutil.AssertEqual(t, "won", s.Won, true)
	testutil.AssertEqual(t, "won result", r.Won, true)
}

func TestSanity_RoomEffectAndRecovery(t *testing.T) {
	d, s := newTestGame(t)

	r := do(t, d, s, "west") // crypt, sanity effect -40
	testutil.AssertEqual(t, "entered", r.Success, true)
	testutil.AssertEqual(t, "sanity", s.SanityLevel, 60)
	testutil.AssertEqual(t, "band crossing notified", len(r.Notifications), 1)

	// Resting outside a safe room restores nothing.
	do(t, d, s, "rest")
	testutil.AssertEqual(t, "rest in crypt", s.SanityLevel, 60)

	do(t, d, s, "east")
	do(t, d, s, "south") // chapel
	r = do(t, d, s, "rest")
	testutil.AssertEqual(t, "rest success", r.Success, true)
	testutil.AssertEqual(t, "recovered", s.SanityLevel, 70)
}

func TestSanity_SpookyDescriptions(t *testing.T) {
	d, s := newTestGame(t)

	r := do(t, d, s, "look")
	if !strings.Contains(r.Message, "overgrown garden") {
		t.Errorf("expected base description, got %q", r.Message)
	}

	s.SanityLevel = 40
	r = do(t, d, s, "look")
	if !strings.Contains(r.Message, "The garden writhes") {
		t.Errorf("expected spooky description, got %q", r.Message)
	}
	// Entity names shift with the narrative too.
	if !strings.Contains(r.Message, "cold brass lantern") {
		t.Errorf("expected spooky entity name, got %q", r.Message)
	}

	s.SanityLevel = 10
	r = do(t, d, s, "look")
	if !strings.Contains(r.Message, "wet ink") {
		t.Errorf("expected garbled framing, got %q", r.Message)
	}
}

func TestInventoryAndExamine(t *testing.T) {
	d, s := newTestGame(t)

	r := do(t, d, s, "inventory")
	testutil.AssertEqual(t, "empty", r.Message, "You are empty-handed.")

	do(t, d, s, "take lantern")
	r = do(t, d, s, "i")
	testutil.AssertEqual(t, "carrying", r.Message, "You are carrying: brass lantern.")

	r = do(t, d, s, "examine mailbox")
	testutil.AssertEqual(t, "examine", r.Success, true)
	if !strings.Contains(r.Message, "mailbox is closed") {
		t.Errorf("expected closed note, got %q", r.Message)
	}

	r = do(t, d, s, "read lantern")
	testutil.AssertEqual(t, "read unwritten", r.Success, false)
	testutil.AssertEqual(t, "read message", r.Message, "There's nothing written on the brass lantern.")
}

func TestQuit(t *testing.T) {
	d, s := newTestGame(t)

	r := do(t, d, s, "quit")
	testutil.AssertEqual(t, "success", r.Success, true)
	testutil.AssertEqual(t, "quit flag", r.Quit, true)
}
