package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is the local mirror of a deadline task, kept so the reminder worker
// can track which deadlines were already notified.
type Task struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	Date      time.Time          `bson:"date"`
	Notified  bool               `bson:"notified"`
	CreatedAt time.Time          `bson:"createdAt"`
}
