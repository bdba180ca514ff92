package repository

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"hrms.service/internal/core/model"
)

const employeeCollection = "employees"

// MongoEmployeeRepository is the concrete directory implementation for
// a MongoDB collection.
type MongoEmployeeRepository struct {
	col *mongo.Collection
}

// NewEmployeeRepository creates a new instance bound to the employees
// collection of the given database.
func NewEmployeeRepository(db *mongo.Database) *MongoEmployeeRepository {
	return &MongoEmployeeRepository{col: db.Collection(employeeCollection)}
}

// EnsureIndexes creates the unique indexes that back the directory's
// business-key invariants. Safe to call on every startup.
func (r *MongoEmployeeRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

// Insert persists a new employee. A unique-index collision is mapped
// to ErrDuplicateKey.
func (r *MongoEmployeeRepository) Insert(ctx context.Context, emp model.Employee) error {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employee_id", emp.EmployeeID))

	_, err := r.col.InsertOne(ctx, emp)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

// FindByEmployeeID returns the employee with the given business key,
// or nil when none exists.
func (r *MongoEmployeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employee_id", employeeID))

	return r.findOne(ctx, bson.M{"employee_id": employeeID})
}

// FindByEmail returns the employee with the given email, or nil when
// none exists.
func (r *MongoEmployeeRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoEmployeeRepository) findOne(ctx context.Context, filter bson.M) (*model.Employee, error) {
	var emp model.Employee
	err := r.col.FindOne(ctx, filter).Decode(&emp)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// FindByEmployeeIDs batch-fetches all employees whose business key is
// in the given set with a single query.
func (r *MongoEmployeeRepository) FindByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]model.Employee, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"employee_id": bson.M{"$in": employeeIDs}})
	if err != nil {
		return nil, err
	}

	var employees []model.Employee
	if err := cur.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// List returns employees matching the filter, capped at
// MaxEmployeeResults. No ordering is guaranteed.
func (r *MongoEmployeeRepository) List(ctx context.Context, filter EmployeeFilter) ([]model.Employee, error) {
	query := bson.M{}

	if filter.Department != "" && !strings.EqualFold(filter.Department, "all") {
		query["department"] = filter.Department
	}

	if filter.Search != "" {
		// Substring match, so the caller's input is quoted rather
		// than interpreted as a regular expression.
		search := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"full_name": search},
			bson.M{"email": search},
			bson.M{"employee_id": search},
		}
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetLimit(MaxEmployeeResults))
	if err != nil {
		return nil, err
	}

	employees := []model.Employee{}
	if err := cur.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// Delete removes the employee with the given business key and reports
// whether a record was actually removed.
func (r *MongoEmployeeRepository) Delete(ctx context.Context, employeeID string) (bool, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employee_id", employeeID))

	res, err := r.col.DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Count returns the total number of directory records.
func (r *MongoEmployeeRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// CountByDepartment groups all employees by department server-side.
func (r *MongoEmployeeRepository) CountByDepartment(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$department",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var groups []struct {
		Department string `bson:"_id"`
		Count      int64  `bson:"count"`
	}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}

	breakdown := make(map[string]int64, len(groups))
	for _, g := range groups {
		breakdown[g.Department] = g.Count
	}
	return breakdown, nil
}
