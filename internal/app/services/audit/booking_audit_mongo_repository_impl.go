package audit

import (
	"context"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bookingAuditCollection = "booking_audits"

type BookingAuditMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingAuditMongoRepository(db *mongo.Client, dbName string) contracts.BookingAuditRepository {
	return &BookingAuditMongoRepository{
		Collection: db.Database(dbName).Collection(bookingAuditCollection),
	}
}

func (repo *BookingAuditMongoRepository) Insert(ctx context.Context, auditRecord *models.BookingAudit) error {
	_, err := repo.Collection.InsertOne(ctx, auditRecord)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *BookingAuditMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID int64) (*models.BookingAudit, error) {
	var auditRecord models.BookingAudit
	err := repo.Collection.FindOne(ctx, bson.M{"appointment_id": appointmentID}).Decode(&auditRecord)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &auditRecord, nil
}

func (repo *BookingAuditMongoRepository) FindRecent(ctx context.Context, limit int64) ([]models.BookingAudit, error) {
	var auditRecords []models.BookingAudit
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &auditRecords)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return auditRecords, nil
}
