package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotTimes(slots []Slot, available bool) []string {
	var times []string
	for _, s := range slots {
		if s.Available == available {
			times = append(times, s.Time)
		}
	}
	return times
}

func TestComputeAvailabilityNoBookings(t *testing.T) {
	slots := ComputeAvailability("v1", "2024-05-10", nil)

	require.Len(t, slots, len(CanonicalSlots))
	for i, s := range slots {
		assert.Equal(t, CanonicalSlots[i], s.Time)
		assert.True(t, s.Available)
		assert.Nil(t, s.Booking)
	}
}

func TestComputeAvailabilityHalfOpenInterval(t *testing.T) {
	bookings := []*Booking{
		{
			ID:        "b1",
			VenueID:   "v1",
			Date:      "2024-05-10",
			StartTime: "09:00",
			EndTime:   "11:00",
			Status:    StatusApproved,
		},
	}

	slots := ComputeAvailability("v1", "2024-05-10", bookings)

	// The slot equal to the end time is free.
	assert.Equal(t, []string{"09:00", "10:00"}, slotTimes(slots, false))

	for _, s := range slots {
		if !s.Available {
			require.NotNil(t, s.Booking)
			assert.Equal(t, "b1", s.Booking.ID)
		}
	}
}

func TestComputeAvailabilityOnlyApprovedBlocks(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   int // number of occupied slots
	}{
		{"pending never blocks", StatusPending, 0},
		{"rejected never blocks", StatusRejected, 0},
		{"approved blocks", StatusApproved, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := []*Booking{
				{
					VenueID:   "v1",
					Date:      "2024-05-10",
					StartTime: "14:00",
					EndTime:   "16:00",
					Status:    tt.status,
				},
			}

			slots := ComputeAvailability("v1", "2024-05-10", bookings)
			assert.Len(t, slotTimes(slots, false), tt.want)
		})
	}
}

func TestComputeAvailabilityFullDay(t *testing.T) {
	// A full-day booking occupies every slot, even hours outside its
	// declared start and end.
	bookings := []*Booking{
		{
			ID:        "b-day",
			VenueID:   "v1",
			Date:      "2024-05-10",
			StartTime: "10:00",
			EndTime:   "11:00",
			FullDay:   true,
			Status:    StatusApproved,
		},
	}

	slots := ComputeAvailability("v1", "2024-05-10", bookings)

	require.Len(t, slots, len(CanonicalSlots))
	for _, s := range slots {
		assert.False(t, s.Available, "slot %s should be occupied", s.Time)
		require.NotNil(t, s.Booking)
		assert.Equal(t, "b-day", s.Booking.ID)
	}
}

func TestComputeAvailabilityIgnoresOtherVenueAndDate(t *testing.T) {
	bookings := []*Booking{
		{VenueID: "v2", Date: "2024-05-10", StartTime: "09:00", EndTime: "18:00", Status: StatusApproved},
		{VenueID: "v1", Date: "2024-05-11", FullDay: true, Status: StatusApproved},
	}

	slots := ComputeAvailability("v1", "2024-05-10", bookings)
	assert.Empty(t, slotTimes(slots, false))
}

func TestComputeAvailabilityIsPure(t *testing.T) {
	bookings := []*Booking{
		{VenueID: "v1", Date: "2024-05-10", StartTime: "09:00", EndTime: "12:00", Status: StatusApproved},
		{VenueID: "v1", Date: "2024-05-10", StartTime: "15:00", EndTime: "16:00", Status: StatusPending},
	}

	first := ComputeAvailability("v1", "2024-05-10", bookings)
	second := ComputeAvailability("v1", "2024-05-10", bookings)
	assert.Equal(t, first, second)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		existing *Booking
		start    string
		end      string
		fullDay  bool
		want     bool
	}{
		{
			name:     "overlapping ranges",
			existing: &Booking{StartTime: "09:00", EndTime: "11:00"},
			start:    "10:00", end: "12:00",
			want: true,
		},
		{
			name:     "boundary adjacent is free",
			existing: &Booking{StartTime: "09:00", EndTime: "11:00"},
			start:    "11:00", end: "12:00",
			want: false,
		},
		{
			name:     "contained range",
			existing: &Booking{StartTime: "09:00", EndTime: "18:00"},
			start:    "10:00", end: "11:00",
			want: true,
		},
		{
			name:     "existing full day collides",
			existing: &Booking{StartTime: "10:00", EndTime: "11:00", FullDay: true},
			start:    "08:00", end: "09:00",
			want: true,
		},
		{
			name:     "candidate full day collides",
			existing: &Booking{StartTime: "09:00", EndTime: "10:00"},
			fullDay:  true,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.existing, tt.start, tt.end, tt.fullDay)
			assert.Equal(t, tt.want, got)
		})
	}
}
