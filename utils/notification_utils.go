package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/gomail.v2"

	"github.com/jobera/jobportal_backend/config"
	"github.com/jobera/jobportal_backend/models"
)

// SaveNotification saves a notification to the database
func SaveNotification(db *mongo.Client, userID primitive.ObjectID, title, message, notifType string, data interface{}) error {
	collection := config.GetCollection(db, "notifications")

	notification := models.Notification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		Data:      data,
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	_, err := collection.InsertOne(context.Background(), notification)
	return err
}

// SendEmail delivers a plain-text email through the configured SMTP server
func SendEmail(to, subject, body string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	smtpPort := 2525
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		fmt.Sscanf(portStr, "%d", &smtpPort)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}

// NotifyAdminRequestDecision informs the requester by email and in-app
// notification that their admin request was approved or rejected. Delivery
// is best effort; failures are logged and never fail the review call.
func NotifyAdminRequestDecision(db *mongo.Client, request *models.AdminRequest) {
	var user models.User
	err := config.GetCollection(db, "users").FindOne(context.Background(), bson.M{"_id": request.User}).Decode(&user)
	if err != nil {
		log.Printf("Failed to find requester for decision notification: %v", err)
		return
	}

	var subject, body string
	if request.Status == models.RequestStatusApproved {
		subject = "Admin Request Approved"
		body = fmt.Sprintf("Dear %s,\n\nYour admin request has been approved. You now have admin access for your company.\n\nBest regards,\nJob Portal Team", user.Name)
	} else {
		subject = "Admin Request Rejected"
		body = fmt.Sprintf("Dear %s,\n\nYour admin request has been rejected.\nReason: %s\n\nYou may submit a new request at any time.\n\nBest regards,\nJob Portal Team", user.Name, request.ReviewMessage)
	}

	if err := SendEmail(user.Email, subject, body); err != nil {
		log.Printf("Failed to send decision email to %s: %v", user.Email, err)
	}

	notifMsg := fmt.Sprintf("Your admin request has been %s.", request.Status)
	if err := SaveNotification(db, user.ID, subject, notifMsg, "admin_request_decision", map[string]interface{}{
		"requestId": request.ID.Hex(),
		"status":    request.Status,
	}); err != nil {
		log.Printf("Failed to save decision notification: %v", err)
	}
}
