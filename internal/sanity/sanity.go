// Package sanity tracks the bounded 0-100 psychological meter that
// gates the game's narrative bands. It mutates nothing but the meter
// itself; any relocation or similar severe effect is the dispatcher's
// concern.
package sanity

import "fmt"

const (
	Min = 0
	Max = 100

	// SevereFloor is the level below which severe narrative effects
	// become advisable.
	SevereFloor = 25

	// RestRecovery is how much one turn of rest in a safe room restores.
	RestRecovery = 10
)

// Band is one of the four fixed narrative bands.
type Band int

const (
	BandNormal     Band = iota // 100-75
	BandDisturbed              // 74-50
	BandUnreliable             // 49-25
	BandGarbled                // 24-0
)

func (b Band) String() string {
	switch b {
	case BandNormal:
		return "normal"
	case BandDisturbed:
		return "disturbed"
	case BandUnreliable:
		return "unreliable"
	case BandGarbled:
		return "garbled"
	default:
		return "unknown"
	}
}

// bandMessages are the threshold-crossing notifications, keyed by the
// band being entered.
var bandMessages = map[Band]string{
	BandNormal:     "Your thoughts settle back into something like order.",
	BandDisturbed:  "A creeping unease settles over you.",
	BandUnreliable: "The shadows at the edge of your vision refuse to stay still.",
	BandGarbled:    "Your grip on what is real has all but gone.",
}

// Meter is the slice of session state this package needs.
type Meter interface {
	Sanity() int
	SetSanity(int)
}

// Threshold returns the band a given sanity level falls in.
func Threshold(level int) Band {
	switch {
	case level >= 75:
		return BandNormal
	case level >= 50:
		return BandDisturbed
	case level >= 25:
		return BandUnreliable
	default:
		return BandGarbled
	}
}

// ShouldTriggerSevere reports whether the level is low enough that
// the dispatcher may layer severe effects. Advisory only.
func ShouldTriggerSevere(level int) bool {
	return level < SevereFloor
}

// ApplyLoss lowers the meter by amount, clamped at Min. Non-positive
// amounts are no-ops. Returns notifications for any band crossing.
func ApplyLoss(m Meter, amount int, reason string) []string {
	if amount <= 0 {
		return nil
	}

	before := m.Sanity()
	after := clamp(before - amount)
	m.SetSanity(after)

	var notes []string
	if bBefore, bAfter := Threshold(before), Threshold(after); bBefore != bAfter {
		notes = append(notes, fmt.Sprintf("%s (%s)", bandMessages[bAfter], reason))
		if ShouldTriggerSevere(after) && !ShouldTriggerSevere(before) {
			notes = append(notes, "You can no longer trust what the house shows you.")
		}
	}
	return notes
}

// ApplyGain raises the meter by amount, clamped at Max. Non-positive
// amounts are no-ops.
func ApplyGain(m Meter, amount int) {
	if amount <= 0 {
		return
	}
	m.SetSanity(clamp(m.Sanity() + amount))
}

func clamp(level int) int {
	if level < Min {
		return Min
	}
	if level > Max {
		return Max
	}
	return level
}
