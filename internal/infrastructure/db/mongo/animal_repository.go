package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawtracks/training-system/internal/core/domain"
)

const animalsCollection = "animals"

type AnimalRepository struct {
	coll *mongo.Collection
}

func NewAnimalRepository(db *mongo.Database) *AnimalRepository {
	return &AnimalRepository{coll: db.Collection(animalsCollection)}
}

type animalDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	HoursTrained   float64            `bson:"hoursTrained"`
	Owner          string             `bson:"owner"`
	DateOfBirth    *time.Time         `bson:"dateOfBirth,omitempty"`
	ProfilePicture string             `bson:"profilePicture,omitempty"`
}

func (d animalDoc) toDomain() *domain.Animal {
	return &domain.Animal{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		HoursTrained:   d.HoursTrained,
		Owner:          d.Owner,
		DateOfBirth:    d.DateOfBirth,
		ProfilePicture: d.ProfilePicture,
	}
}

func (r *AnimalRepository) Insert(ctx context.Context, animal *domain.Animal) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := animalDoc{
		Name:           animal.Name,
		HoursTrained:   animal.HoursTrained,
		Owner:          animal.Owner,
		DateOfBirth:    animal.DateOfBirth,
		ProfilePicture: animal.ProfilePicture,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert animal: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AnimalRepository) FindByID(ctx context.Context, id string) (*domain.Animal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAnimalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc animalDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("find animal: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AnimalRepository) List(ctx context.Context, limit int64, afterID string) ([]*domain.Animal, error) {
	filter, err := pageFilter(afterID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, pageOptions(limit))
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	defer cur.Close(ctx)

	var animals []*domain.Animal
	for cur.Next(ctx) {
		var doc animalDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode animal: %w", err)
		}
		animals = append(animals, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	return animals, nil
}

func (r *AnimalRepository) SetHoursTrained(ctx context.Context, id string, hours float64) error {
	return mergeFields(ctx, r.coll, id, bson.M{"hoursTrained": hours})
}

func (r *AnimalRepository) SetProfilePicture(ctx context.Context, id, url string) error {
	return mergeFields(ctx, r.coll, id, bson.M{"profilePicture": url})
}

// EnsureIndexes creates the owner lookup index.
func (r *AnimalRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}},
	})
	return err
}
