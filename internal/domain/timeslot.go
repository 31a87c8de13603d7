package domain

// TimeSlot is a coarse time-of-day bucket used in place of an exact clock time.
type TimeSlot string

// Time slots in chronological order.
const (
	SlotEarlyMorning TimeSlot = "Early_Morning"
	SlotMorning      TimeSlot = "Morning"
	SlotAfternoon    TimeSlot = "Afternoon"
	SlotEvening      TimeSlot = "Evening"
	SlotNight        TimeSlot = "Night"
	SlotLateNight    TimeSlot = "Late_Night"
)

// TimeSlots lists every slot; the index of a slot is its ordinal.
var TimeSlots = []TimeSlot{
	SlotEarlyMorning,
	SlotMorning,
	SlotAfternoon,
	SlotEvening,
	SlotNight,
	SlotLateNight,
}

// HoursPerSlot approximates the width of one slot in hours.
const HoursPerSlot = 4

// Ordinal returns the position of the slot in the day, 0 through 5.
// Unknown slots return -1.
func (s TimeSlot) Ordinal() int {
	for i, slot := range TimeSlots {
		if slot == s {
			return i
		}
	}
	return -1
}

// IsValid reports whether s is one of the six defined slots.
func (s TimeSlot) IsValid() bool {
	return s.Ordinal() >= 0
}

// CyclicForwardDistance returns how many slots lie between from and to moving forward,
// wrapping past Late_Night for overnight flights. The result is in [0, 5].
func CyclicForwardDistance(from, to TimeSlot) int {
	n := len(TimeSlots)
	return ((to.Ordinal()-from.Ordinal())%n + n) % n
}

// SlotsToHours converts a slot distance into approximate hours.
func SlotsToHours(n int) int {
	return n * HoursPerSlot
}
