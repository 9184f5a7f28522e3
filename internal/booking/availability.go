package booking

// CanonicalSlots is the fixed ordered grid of hourly ticks used for
// availability display and conflict granularity, from campus opening to
// closing hour.
var CanonicalSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

// Slot is the per-tick verdict for a venue on a date.
type Slot struct {
	Time      string
	Available bool
	Booking   *Booking // the occupying booking, nil when available
}

// ComputeAvailability returns the slot grid for a venue on a date given the
// booking collection. It is a pure function: only APPROVED bookings occupy
// slots, PENDING and REJECTED requests never do. A full-day booking occupies
// every slot regardless of its declared start and end; otherwise a slot at
// time T is occupied when T falls in [start, end).
func ComputeAvailability(venueID, date string, bookings []*Booking) []Slot {
	slots := make([]Slot, 0, len(CanonicalSlots))
	for _, tick := range CanonicalSlots {
		var occupying *Booking
		for _, b := range bookings {
			if Occupies(b, venueID, date, tick) {
				occupying = b
				break
			}
		}
		slots = append(slots, Slot{
			Time:      tick,
			Available: occupying == nil,
			Booking:   occupying,
		})
	}
	return slots
}

// Occupies reports whether booking b blocks the slot at time tick for the
// given venue and date.
func Occupies(b *Booking, venueID, date, tick string) bool {
	if b.Status != StatusApproved || b.VenueID != venueID || b.Date != date {
		return false
	}
	if b.FullDay {
		return true
	}
	// Half-open interval: a slot equal to the end time is free.
	return tick >= b.StartTime && tick < b.EndTime
}

// Overlaps reports whether an existing booking's time range collides with the
// candidate range. A full-day booking on either side collides with anything
// on the same day; otherwise the ranges overlap when start < existing end and
// end > existing start.
func Overlaps(b *Booking, startTime, endTime string, fullDay bool) bool {
	if b.FullDay || fullDay {
		return true
	}
	return startTime < b.EndTime && endTime > b.StartTime
}
