package booking

import (
	"testing"

	"salonbook/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeSlotsBoundary(t *testing.T) {
	schedule := models.DaySchedule{Open: "09:00", Close: "10:00"}

	assert.Equal(t, []string{"09:00"}, ComputeSlots(schedule, nil, 60, 30, nil))
	assert.Empty(t, ComputeSlots(schedule, nil, 61, 30, nil))
}

func TestComputeSlotsSkipsBusy(t *testing.T) {
	schedule := models.DaySchedule{Open: "09:00", Close: "12:00"}
	busy := []models.TimeSlot{{Start: "10:00", End: "11:00"}}

	got := ComputeSlots(schedule, busy, 30, 30, nil)
	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, got)
}

func TestComputeSlotsNowIsStrict(t *testing.T) {
	schedule := models.DaySchedule{Open: "09:00", Close: "11:00"}
	now := 600 // 10:00

	got := ComputeSlots(schedule, nil, 30, 30, &now)
	assert.Equal(t, []string{"10:00", "10:30"}, got)
}

func TestComputeSlotsClosedOrInvalid(t *testing.T) {
	assert.Empty(t, ComputeSlots(models.DaySchedule{Open: "09:00", Close: "18:00", IsClosed: true}, nil, 30, 30, nil))
	assert.Empty(t, ComputeSlots(models.DaySchedule{Open: "09:00", Close: "18:00"}, nil, 0, 30, nil))
	assert.Len(t, ComputeSlots(models.DaySchedule{Open: "09:00", Close: "10:00"}, nil, 30, 0, nil), 2)
}

func TestEffectiveSchedule(t *testing.T) {
	salon := models.DaySchedule{Open: "09:00", Close: "18:00"}

	got := EffectiveSchedule(salon, models.DaySchedule{Open: "12:00", Close: "20:00"})
	assert.Equal(t, models.DaySchedule{Open: "12:00", Close: "18:00"}, got)

	assert.True(t, EffectiveSchedule(salon, models.DaySchedule{IsClosed: true}).IsClosed)
	assert.True(t, EffectiveSchedule(salon, models.DaySchedule{Open: "18:00", Close: "20:00"}).IsClosed)
}
