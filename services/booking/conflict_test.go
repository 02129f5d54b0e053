package booking

import (
	"testing"

	"salonbook/models"

	"github.com/stretchr/testify/assert"
)

func TestOverlapsSymmetricAndHalfOpen(t *testing.T) {
	cases := []struct {
		a, b models.TimeSlot
		want bool
	}{
		{models.TimeSlot{Start: "09:00", End: "10:00"}, models.TimeSlot{Start: "09:30", End: "10:30"}, true},
		{models.TimeSlot{Start: "09:00", End: "10:00"}, models.TimeSlot{Start: "10:00", End: "11:00"}, false},
		{models.TimeSlot{Start: "09:00", End: "12:00"}, models.TimeSlot{Start: "10:00", End: "11:00"}, true},
		{models.TimeSlot{Start: "09:00", End: "09:30"}, models.TimeSlot{Start: "13:00", End: "14:00"}, false},
		{models.TimeSlot{Start: "09:00", End: "10:00"}, models.TimeSlot{Start: "09:00", End: "10:00"}, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Overlaps(tc.a, tc.b), "%v vs %v", tc.a, tc.b)
		assert.Equal(t, Overlaps(tc.a, tc.b), Overlaps(tc.b, tc.a), "symmetry %v vs %v", tc.a, tc.b)
	}
}

func TestFindConflictIgnoresCancelledAndExcluded(t *testing.T) {
	slot := models.TimeSlot{Start: "10:00", End: "11:00"}
	existing := []models.Booking{
		{ID: "a", TimeSlot: slot, Status: models.StatusCancelled},
		{ID: "b", TimeSlot: slot, Status: models.StatusConfirmed},
	}

	assert.Nil(t, FindConflict(slot, existing, "b"))
	c := FindConflict(slot, existing, "")
	if assert.NotNil(t, c) {
		assert.Equal(t, "b", c.ID)
	}
	assert.False(t, HasConflict(models.TimeSlot{Start: "11:00", End: "11:30"}, existing, ""))
}
