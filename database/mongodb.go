package database

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var DB *mongo.Database

// ErrUserNotFound is returned by UserRole when no user document
// exists for the given email.
var ErrUserNotFound = errors.New("user not found")

func ConnectDB() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoURI := os.Getenv("MONGODB_URI")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return err
	}

	// Ping the database
	err = client.Ping(ctx, nil)
	if err != nil {
		return err
	}

	DB = client.Database("trendNestDB")

	if err := ensureIndexes(ctx); err != nil {
		return err
	}

	log.Println("🗄️ Connected to MongoDB!")
	return nil
}

// ensureIndexes creates the unique index on users.email. Duplicate
// sign-ins race otherwise; the index makes the second insert fail with
// a duplicate-key error the handler turns into the soft response.
func ensureIndexes(ctx context.Context) error {
	_, err := DB.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func Users() *mongo.Collection    { return DB.Collection("users") }
func Products() *mongo.Collection { return DB.Collection("products") }
func Reviews() *mongo.Collection  { return DB.Collection("reviews") }
func Votes() *mongo.Collection    { return DB.Collection("votes") }
func Reports() *mongo.Collection  { return DB.Collection("reports") }
func Coupons() *mongo.Collection  { return DB.Collection("coupons") }
func Payments() *mongo.Collection { return DB.Collection("payments") }

// UserRole fetches the stored role for an email. The role gate calls
// this on every role-checked request; a user document with no role
// field comes back as the empty string.
func UserRole(ctx context.Context, email string) (string, error) {
	var doc struct {
		Role string `bson:"role"`
	}
	err := Users().FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return doc.Role, nil
}
