package repositories

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/models"
)

// MongoUserRepository is a MongoDB implementation of UserRepository.
// It relies on the unique indexes created at startup to make inserts
// race-safe.
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a repository over the users collection.
func NewMongoUserRepository(client *mongo.Client, database string) *MongoUserRepository {
	return &MongoUserRepository{
		collection: client.Database(database).Collection("users"),
	}
}

// Create inserts a new user document. A duplicate-key error from the
// unique indexes is translated to the matching sentinel error.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return duplicateKeyError(err)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail looks a user up by email.
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetByMobile looks a user up by mobile number.
func (r *MongoUserRepository) GetByMobile(ctx context.Context, mobileNo string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"mobileNo": mobileNo})
}

// GetByID looks a user up by hex id.
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// Update replaces the mutable fields of an existing user document.
func (r *MongoUserRepository) Update(ctx context.Context, user *models.User) error {
	update := bson.M{"$set": bson.M{
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
		"mobileNo":  user.MobileNo,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if mongo.IsDuplicateKeyError(err) {
		return duplicateKeyError(err)
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EmailInUse reports whether another user already holds this email.
func (r *MongoUserRepository) EmailInUse(ctx context.Context, email, excludeID string) (bool, error) {
	return r.inUse(ctx, "email", email, excludeID)
}

// MobileInUse reports whether another user already holds this mobile number.
func (r *MongoUserRepository) MobileInUse(ctx context.Context, mobileNo, excludeID string) (bool, error) {
	return r.inUse(ctx, "mobileNo", mobileNo, excludeID)
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) inUse(ctx context.Context, field, value, excludeID string) (bool, error) {
	filter := bson.M{field: value}
	if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
		filter["_id"] = bson.M{"$ne": oid}
	}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check %s uniqueness: %w", field, err)
	}
	return count > 0, nil
}

// duplicateKeyError maps a Mongo duplicate-key error to the sentinel
// for whichever unique index rejected the write.
func duplicateKeyError(err error) error {
	if strings.Contains(err.Error(), "uniq_mobileNo") {
		return ErrDuplicateMobile
	}
	return ErrDuplicateEmail
}
