package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Schedule is a persisted schedule record. Auto-scheduled records are never
// mutated by the scheduling engine after creation.
type Schedule struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Content         string             `bson:"content"`
	Date            time.Time          `bson:"date"`
	EndDate         *time.Time         `bson:"endDate,omitempty"`
	CalendarEventID *string            `bson:"calendarEventId,omitempty"`
	Auto            bool               `bson:"auto"`
	CreatedAt       time.Time          `bson:"createdAt"`
}
