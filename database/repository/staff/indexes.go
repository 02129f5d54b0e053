package staffRepo

import (
	"context"
	"fmt"
	"time"

	"salonbook/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the staff collection.
func (r *MongoStaffRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_id")},
		{Keys: bson.D{{Key: "salonId", Value: 1}, {Key: "userId", Value: 1}}, Options: options.Index().SetName("salon_user_idx")},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetName("user_idx")},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create staff indexes: %w", err)
	}
	return nil
}
