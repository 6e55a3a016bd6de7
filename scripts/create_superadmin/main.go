// Seeds the superadmin account. Safe to run repeatedly: an existing account
// with the given email is promoted instead of duplicated.
//
// Usage:
//
//	SUPERADMIN_EMAIL=... SUPERADMIN_PASSWORD=... go run ./scripts/create_superadmin
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobera/jobportal_backend/config"
	"github.com/jobera/jobportal_backend/models"
	"github.com/jobera/jobportal_backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	email := os.Getenv("SUPERADMIN_EMAIL")
	password := os.Getenv("SUPERADMIN_PASSWORD")
	name := os.Getenv("SUPERADMIN_NAME")
	if name == "" {
		name = "Super Admin"
	}
	if email == "" || password == "" {
		log.Fatal("SUPERADMIN_EMAIL and SUPERADMIN_PASSWORD are required")
	}

	client := config.ConnectDB()
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(client, "users")

	var existing models.User
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		if existing.Role == models.RoleSuperadmin {
			log.Printf("Superadmin %s already exists, nothing to do", email)
			return
		}
		_, err = collection.UpdateOne(ctx,
			bson.M{"_id": existing.ID},
			bson.M{"$set": bson.M{"role": models.RoleSuperadmin, "updatedAt": time.Now()}},
		)
		if err != nil {
			log.Fatalf("Failed to promote existing user: %v", err)
		}
		log.Printf("Existing user %s promoted to superadmin", email)
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Fatalf("Failed to check existing users: %v", err)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	now := time.Now()
	superadmin := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		Role:      models.RoleSuperadmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := collection.InsertOne(ctx, superadmin); err != nil {
		log.Fatalf("Failed to create superadmin: %v", err)
	}

	log.Printf("Superadmin %s created", email)
}
