package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// overlapFilter matches the staff member's time-holding bookings that overlap booking's slot.
func overlapFilter(booking *models.Booking) bson.M {
	return bson.M{
		"id":             bson.M{"$ne": booking.ID},
		"staffId":        booking.StaffID,
		"date":           dayRange(booking.Date),
		"status":         bson.M{"$ne": models.StatusCancelled},
		"timeSlot.start": bson.M{"$lt": booking.TimeSlot.End},
		"timeSlot.end":   bson.M{"$gt": booking.TimeSlot.Start},
	}
}

// Create inserts a booking inside a transaction that re-checks the staff slot.
func (repo *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	return repo.writeTransactionally(ctx, booking, func(sc mongo.SessionContext) error {
		_, err := repo.bookingColl.InsertOne(sc, booking)
		return err
	})
}

// Update replaces a booking inside a transaction that re-checks the staff slot.
func (repo *MongoBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	return repo.writeTransactionally(ctx, booking, func(sc mongo.SessionContext) error {
		res, err := repo.bookingColl.ReplaceOne(sc, bson.M{"id": booking.ID}, booking)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking with id %s not found", booking.ID)
		}
		return nil
	})
}

func (repo *MongoBookingRepo) writeTransactionally(ctx context.Context, booking *models.Booking, write func(sc mongo.SessionContext) error) error {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	sess, err := repo.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if HoldsTime(booking.Status) {
			n, err := repo.bookingColl.CountDocuments(sc, overlapFilter(booking))
			if err != nil {
				return fmt.Errorf("overlap check failed: %w", err)
			}
			if n > 0 {
				return ErrSlotTaken
			}
		}
		if err := write(sc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("booking write failed: %w", err)
		}
		return nil
	}

	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
	if errors.Is(err, ErrSlotTaken) {
		return ErrSlotTaken
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}
