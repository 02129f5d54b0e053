package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"salonbook/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (repo *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One time-holding booking per staff start time. Requires MongoDB 6.0+ for $in
		// inside a partial filter.
		{
			Keys:    bson.D{{Key: "staffId", Value: 1}, {Key: "date", Value: 1}, {Key: "timeSlot.start", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_staff_slot").
				SetPartialFilterExpression(bson.M{"status": bson.M{"$in": ActiveStatuses}}),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("user_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "salonId", Value: 1}, {Key: "date", Value: 1}, {Key: "timeSlot.start", Value: 1}},
			Options: options.Index().SetName("salon_date_start_idx"),
		},
	}

	if _, err := repo.bookingColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
