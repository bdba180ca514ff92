package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"hrms.service/internal/core/model"
)

const attendanceCollection = "attendance"

// MongoAttendanceRepository is the concrete ledger implementation for
// a MongoDB collection.
type MongoAttendanceRepository struct {
	col *mongo.Collection
}

// NewAttendanceRepository creates a new instance bound to the
// attendance collection of the given database.
func NewAttendanceRepository(db *mongo.Database) *MongoAttendanceRepository {
	return &MongoAttendanceRepository{col: db.Collection(attendanceCollection)}
}

// EnsureIndexes creates the unique compound index that guarantees at
// most one record per (employee_id, date), plus a sort index for the
// recent-activity query. Safe to call on every startup.
func (r *MongoAttendanceRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "marked_at", Value: -1}},
		},
	})
	return err
}

// Upsert writes the mark for (employee_id, date) as a single atomic
// operation: the status and marked_at are updated in place when a
// record exists, otherwise a new record is created from rec. The
// returned bool is true when a record was created.
func (r *MongoAttendanceRepository) Upsert(ctx context.Context, rec model.AttendanceRecord) (model.AttendanceRecord, bool, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employee_id", rec.EmployeeID))

	filter := bson.M{"employee_id": rec.EmployeeID, "date": rec.Date}
	update := bson.M{
		"$set": bson.M{
			"status":    rec.Status,
			"marked_at": rec.MarkedAt,
		},
		"$setOnInsert": bson.M{
			"id":          rec.ID,
			"employee_id": rec.EmployeeID,
			"date":        rec.Date,
		},
	}

	res, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return model.AttendanceRecord{}, false, err
	}
	created := res.UpsertedCount > 0

	var stored model.AttendanceRecord
	if err := r.col.FindOne(ctx, filter).Decode(&stored); err != nil {
		return model.AttendanceRecord{}, false, err
	}
	return stored, created, nil
}

// List returns ledger records, optionally filtered to one employee,
// capped at MaxAttendanceResults. No ordering is guaranteed.
func (r *MongoAttendanceRepository) List(ctx context.Context, employeeID string) ([]model.AttendanceRecord, error) {
	query := bson.M{}
	if employeeID != "" {
		query["employee_id"] = employeeID
	}
	return r.find(ctx, query, options.Find().SetLimit(MaxAttendanceResults))
}

// ListByDate returns all records for a single date, capped at
// MaxAttendanceResults.
func (r *MongoAttendanceRepository) ListByDate(ctx context.Context, date string) ([]model.AttendanceRecord, error) {
	return r.find(ctx, bson.M{"date": date}, options.Find().SetLimit(MaxAttendanceResults))
}

// Recent returns the most recently written records, newest first.
func (r *MongoAttendanceRepository) Recent(ctx context.Context, limit int) ([]model.AttendanceRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "marked_at", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

// DeleteByEmployeeID removes every record for one employee and
// returns how many were deleted. Used by the directory's cascade.
func (r *MongoAttendanceRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employee_id", employeeID))

	res, err := r.col.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MongoAttendanceRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]model.AttendanceRecord, error) {
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	records := []model.AttendanceRecord{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
