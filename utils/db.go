package utils

import (
	"context"
	"log"
	"time"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB connects to MongoDB using the configured URI and verifies
// the connection with a ping.
func ConnectDB() *mongo.Client {
	uri := viper.GetString("MONGO_URI")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal(err)
	}

	log.Println("Connected to MongoDB")
	return client
}

// EnsureUserIndexes creates unique indexes on email and mobileNo.
// The registration flow still runs its own lookups to produce the
// client's expected status codes, but the indexes make sure two
// concurrent registrations can never both insert.
func EnsureUserIndexes(client *mongo.Client, database string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := client.Database(database).Collection("users")
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			Keys:    bson.D{{Key: "mobileNo", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_mobileNo"),
		},
	})
	return err
}
