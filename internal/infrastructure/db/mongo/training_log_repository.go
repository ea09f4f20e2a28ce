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

const trainingLogsCollection = "trainingLogs"

type TrainingLogRepository struct {
	coll *mongo.Collection
}

func NewTrainingLogRepository(db *mongo.Database) *TrainingLogRepository {
	return &TrainingLogRepository{coll: db.Collection(trainingLogsCollection)}
}

type trainingLogDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Date             time.Time          `bson:"date"`
	Description      string             `bson:"description"`
	Hours            float64            `bson:"hours"`
	Animal           string             `bson:"animal"`
	User             string             `bson:"user"`
	TrainingLogVideo string             `bson:"trainingLogVideo,omitempty"`
}

func (d trainingLogDoc) toDomain() *domain.TrainingLog {
	return &domain.TrainingLog{
		ID:               d.ID.Hex(),
		Date:             d.Date,
		Description:      d.Description,
		Hours:            d.Hours,
		Animal:           d.Animal,
		User:             d.User,
		TrainingLogVideo: d.TrainingLogVideo,
	}
}

func (r *TrainingLogRepository) Insert(ctx context.Context, log *domain.TrainingLog) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := trainingLogDoc{
		Date:             log.Date,
		Description:      log.Description,
		Hours:            log.Hours,
		Animal:           log.Animal,
		User:             log.User,
		TrainingLogVideo: log.TrainingLogVideo,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert training log: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *TrainingLogRepository) FindByID(ctx context.Context, id string) (*domain.TrainingLog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTrainingLogNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc trainingLogDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTrainingLogNotFound
		}
		return nil, fmt.Errorf("find training log: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TrainingLogRepository) List(ctx context.Context, limit int64, afterID string) ([]*domain.TrainingLog, error) {
	filter, err := pageFilter(afterID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, pageOptions(limit))
	if err != nil {
		return nil, fmt.Errorf("list training logs: %w", err)
	}
	defer cur.Close(ctx)

	var logs []*domain.TrainingLog
	for cur.Next(ctx) {
		var doc trainingLogDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode training log: %w", err)
		}
		logs = append(logs, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list training logs: %w", err)
	}
	return logs, nil
}

func (r *TrainingLogRepository) SetVideo(ctx context.Context, id, url string) error {
	return mergeFields(ctx, r.coll, id, bson.M{"trainingLogVideo": url})
}
