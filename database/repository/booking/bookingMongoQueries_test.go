package bookingRepo

import (
	"testing"
	"time"

	"salonbook/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildFilterEmpty(t *testing.T) {
	assert.Empty(t, buildFilter(Filter{}))
}

func TestBuildFilterScopesAndDates(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(48 * time.Hour)

	f := buildFilter(Filter{
		UserID:          "u1",
		SalonIDs:        []string{"s1", "s2"},
		DateFrom:        &from,
		DateTo:          &to,
		ExcludeStatuses: []models.BookingStatus{models.StatusCancelled},
	})

	assert.Equal(t, "u1", f["userId"])
	assert.Equal(t, bson.M{"$in": []string{"s1", "s2"}}, f["salonId"])
	assert.Equal(t, bson.M{"$gte": from, "$lt": to}, f["date"])
	assert.Equal(t, bson.M{"$nin": []models.BookingStatus{models.StatusCancelled}}, f["status"])
	assert.NotContains(t, f, "staffId")
}

func TestBuildFilterPast(t *testing.T) {
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	f := buildFilter(Filter{PastAsOf: &today})

	or, ok := f["$or"].(bson.A)
	if assert.True(t, ok) {
		assert.Len(t, or, 2)
		assert.Equal(t, bson.M{"date": bson.M{"$lt": today}}, or[0])
	}
}

func TestSortOrder(t *testing.T) {
	assert.Equal(t, 1, sortOrder(Filter{})[0].Value)
	assert.Equal(t, -1, sortOrder(Filter{Descending: true})[1].Value)
}

func TestOverlapFilterExcludesSelf(t *testing.T) {
	b := &models.Booking{
		ID:       "b1",
		StaffID:  "st1",
		Date:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot: models.TimeSlot{Start: "10:00", End: "10:30"},
	}
	f := overlapFilter(b)
	assert.Equal(t, bson.M{"$ne": "b1"}, f["id"])
	assert.Equal(t, bson.M{"$lt": "10:30"}, f["timeSlot.start"])
	assert.Equal(t, bson.M{"$gt": "10:00"}, f["timeSlot.end"])
}

func TestHoldsTime(t *testing.T) {
	assert.False(t, HoldsTime(models.StatusCancelled))
	for _, s := range ActiveStatuses {
		assert.True(t, HoldsTime(s))
	}
}
