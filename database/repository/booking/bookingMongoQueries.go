package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildFilter translates a Filter into a Mongo query document.
func buildFilter(f Filter) bson.M {
	filter := bson.M{}
	if f.UserID != "" {
		filter["userId"] = f.UserID
	}
	if len(f.SalonIDs) > 0 {
		filter["salonId"] = bson.M{"$in": f.SalonIDs}
	}
	if len(f.StaffIDs) > 0 {
		filter["staffId"] = bson.M{"$in": f.StaffIDs}
	}

	dateCond := bson.M{}
	if f.DateFrom != nil {
		dateCond["$gte"] = *f.DateFrom
	}
	if f.DateTo != nil {
		dateCond["$lt"] = *f.DateTo
	}
	if len(dateCond) > 0 {
		filter["date"] = dateCond
	}

	statusCond := bson.M{}
	if len(f.Statuses) > 0 {
		statusCond["$in"] = f.Statuses
	}
	if len(f.ExcludeStatuses) > 0 {
		statusCond["$nin"] = f.ExcludeStatuses
	}
	if len(statusCond) > 0 {
		filter["status"] = statusCond
	}

	if f.PastAsOf != nil {
		filter["$or"] = bson.A{
			bson.M{"date": bson.M{"$lt": *f.PastAsOf}},
			bson.M{"status": bson.M{"$in": TerminalStatuses}},
		}
	}
	return filter
}

func sortOrder(f Filter) bson.D {
	dir := 1
	if f.Descending {
		dir = -1
	}
	return bson.D{{Key: "date", Value: dir}, {Key: "timeSlot.start", Value: dir}}
}

// List returns bookings matching f.
func (repo *MongoBookingRepo) List(ctx context.Context, f Filter) ([]models.Booking, error) {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(sortOrder(f))
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cursor, err := repo.bookingColl.Find(ctx, buildFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
