package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobera/jobportal_backend/config"
	"github.com/jobera/jobportal_backend/models"
)

// UserRepository is the user-directory capability set the workflow needs.
type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Promote(ctx context.Context, userID, companyID primitive.ObjectID) error
	SetAdminRequestedAt(ctx context.Context, userID primitive.ObjectID, at *time.Time) error
}

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Client) *MongoUserRepository {
	return &MongoUserRepository{
		collection: config.GetCollection(db, "users"),
	}
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Promote grants the user admin privileges and binds them to the company.
func (r *MongoUserRepository) Promote(ctx context.Context, userID, companyID primitive.ObjectID) error {
	update := bson.M{
		"$set": bson.M{
			"role":          models.RoleAdmin,
			"adminApproved": true,
			"company":       companyID,
			"updatedAt":     time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetAdminRequestedAt stamps or clears the user's pending-request marker.
func (r *MongoUserRepository) SetAdminRequestedAt(ctx context.Context, userID primitive.ObjectID, at *time.Time) error {
	var update bson.M
	if at != nil {
		update = bson.M{"$set": bson.M{"adminRequestedAt": *at, "updatedAt": time.Now()}}
	} else {
		update = bson.M{
			"$unset": bson.M{"adminRequestedAt": ""},
			"$set":   bson.M{"updatedAt": time.Now()},
		}
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
