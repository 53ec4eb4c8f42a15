package schedule

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

type ScheduleMongoRepository struct {
	Collection *mongo.Collection
}

func NewScheduleMongoRepository(db *mongo.Client, dbName string) ScheduleRepository {
	return &ScheduleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCompanies),
	}
}

func (r *ScheduleMongoRepository) GetCompanySchedule(ctx context.Context, companyID string) (*models.CompanySchedule, error) {
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
	return &company.Schedule, nil
}

// ReplaceWorkingHours swaps the whole weekly schedule in one update, so a
// reader never sees a half-applied week.
func (r *ScheduleMongoRepository) ReplaceWorkingHours(ctx context.Context, companyID string, workingHours []models.DailyWorkingHour) error {
	objectID, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}

	update := bson.M{
		"$set": bson.M{
			"schedule.workingHours": workingHours,
			"updatedAt":             time.Now(),
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
