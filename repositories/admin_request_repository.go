package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobera/jobportal_backend/config"
	"github.com/jobera/jobportal_backend/models"
)

// AdminRequestRepository is the request-ledger capability set the workflow needs.
type AdminRequestRepository interface {
	Insert(ctx context.Context, request *models.AdminRequest) (*models.AdminRequest, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminRequest, error)
	FindPendingByUser(ctx context.Context, userID primitive.ObjectID) (*models.AdminRequest, error)
	MarkReviewed(ctx context.Context, id primitive.ObjectID, status string, reviewer primitive.ObjectID, reviewedAt time.Time, message string) error
	List(ctx context.Context, status string) ([]models.AdminRequest, error)
}

type MongoAdminRequestRepository struct {
	collection *mongo.Collection
}

func NewAdminRequestRepository(db *mongo.Client) *MongoAdminRequestRepository {
	return &MongoAdminRequestRepository{
		collection: config.GetCollection(db, "adminRequests"),
	}
}

func (r *MongoAdminRequestRepository) Insert(ctx context.Context, request *models.AdminRequest) (*models.AdminRequest, error) {
	result, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		request.ID = oid
	}
	return request, nil
}

func (r *MongoAdminRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminRequest, error) {
	var request models.AdminRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *MongoAdminRequestRepository) FindPendingByUser(ctx context.Context, userID primitive.ObjectID) (*models.AdminRequest, error) {
	var request models.AdminRequest
	filter := bson.M{"user": userID, "status": models.RequestStatusPending}
	err := r.collection.FindOne(ctx, filter).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// MarkReviewed moves a request into a terminal state with the reviewer's
// identity, timestamp and message. The pending filter makes the write a
// no-op when the request was processed concurrently.
func (r *MongoAdminRequestRepository) MarkReviewed(ctx context.Context, id primitive.ObjectID, status string, reviewer primitive.ObjectID, reviewedAt time.Time, message string) error {
	filter := bson.M{"_id": id, "status": models.RequestStatusPending}
	update := bson.M{
		"$set": bson.M{
			"status":        status,
			"reviewedBy":    reviewer,
			"reviewedAt":    reviewedAt,
			"reviewMessage": message,
			"updatedAt":     reviewedAt,
		},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns requests newest-first, optionally filtered by exact status.
func (r *MongoAdminRequestRepository) List(ctx context.Context, status string) ([]models.AdminRequest, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.AdminRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
