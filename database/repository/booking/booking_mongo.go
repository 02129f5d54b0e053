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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	client      *mongo.Client
	bookingColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo(client *mongo.Client, db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{
		client:      client,
		bookingColl: db.Collection("bookings"),
	}
}

// GetByID retrieves a booking document by ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// FindByStaffAndDate returns a staff member's bookings for one day.
func (repo *MongoBookingRepo) FindByStaffAndDate(ctx context.Context, staffID string, date time.Time, exclude []models.BookingStatus) ([]models.Booking, error) {
	return repo.findDay(ctx, bson.M{"staffId": staffID}, date, exclude)
}

// FindByUserAndDate returns a customer's bookings for one day.
func (repo *MongoBookingRepo) FindByUserAndDate(ctx context.Context, userID string, date time.Time, exclude []models.BookingStatus) ([]models.Booking, error) {
	return repo.findDay(ctx, bson.M{"userId": userID}, date, exclude)
}

func (repo *MongoBookingRepo) findDay(ctx context.Context, filter bson.M, date time.Time, exclude []models.BookingStatus) ([]models.Booking, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	filter["date"] = dayRange(date)
	if len(exclude) > 0 {
		filter["status"] = bson.M{"$nin": exclude}
	}

	cursor, err := repo.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func dayRange(date time.Time) bson.M {
	return bson.M{"$gte": date, "$lt": date.Add(24 * time.Hour)}
}
