package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// pageFilter builds the strictly-greater-than cursor filter shared by all
// three collections. An empty afterID starts from the beginning.
func pageFilter(afterID string) (bson.M, error) {
	if afterID == "" {
		return bson.M{}, nil
	}
	oid, err := primitive.ObjectIDFromHex(afterID)
	if err != nil {
		return nil, fmt.Errorf("invalid page cursor %q: %w", afterID, err)
	}
	return bson.M{"_id": bson.M{"$gt": oid}}, nil
}

// pageOptions orders by identifier ascending so cursors stay monotonic.
func pageOptions(limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(limit)
}

// mergeFields merges the given fields into an existing record.
func mergeFields(ctx context.Context, coll *mongo.Collection, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", id, err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}); err != nil {
		return fmt.Errorf("update %s: %w", coll.Name(), err)
	}
	return nil
}
