package settings

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CompanyMongoRepository struct {
	Collection *mongo.Collection
}

func NewCompanyMongoRepository(db *mongo.Client, dbName string) CompanyRepository {
	return &CompanyMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCompanies),
	}
}

func (r *CompanyMongoRepository) FindByID(ctx context.Context, companyID string) (*models.Company, error) {
	objectID, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var company models.Company
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &company, nil
}

func (r *CompanyMongoRepository) UpdateProfile(ctx context.Context, companyID, name, phone, description, logoURL string) error {
	objectID, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}

	fields := bson.M{
		"name":        name,
		"phone":       phone,
		"description": description,
		"updatedAt":   time.Now(),
	}
	if logoURL != "" {
		fields["logoUrl"] = logoURL
	}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrCompanyNotFound(mongo.ErrNoDocuments)
	}
	return nil
}

func (r *CompanyMongoRepository) UpdateSchedule(ctx context.Context, companyID string, schedule *models.CompanySchedule) error {
	objectID, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}

	update := bson.M{
		"$set": bson.M{
			"schedule":  schedule,
			"updatedAt": time.Now(),
		},
	}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrCompanyNotFound(mongo.ErrNoDocuments)
	}
	return nil
}
