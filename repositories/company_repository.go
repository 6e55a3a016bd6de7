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

// CompanyRepository is the company-registry capability set the workflow needs.
type CompanyRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error)
	SetAdmin(ctx context.Context, companyID, userID primitive.ObjectID) error
}

type MongoCompanyRepository struct {
	collection *mongo.Collection
}

func NewCompanyRepository(db *mongo.Client) *MongoCompanyRepository {
	return &MongoCompanyRepository{
		collection: config.GetCollection(db, "companies"),
	}
}

func (r *MongoCompanyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	var company models.Company
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// SetAdmin points the company's admin reference at the promoted user.
func (r *MongoCompanyRepository) SetAdmin(ctx context.Context, companyID, userID primitive.ObjectID) error {
	update := bson.M{
		"$set": bson.M{
			"admin":     userID,
			"updatedAt": time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": companyID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
