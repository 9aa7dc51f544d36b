package notice

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notice statuses. A notice is always in exactly one of these; any status
// may move to any other, including itself.
const (
	StatusDraft       = "Draft"
	StatusPublished   = "Published"
	StatusUnpublished = "Unpublished"
)

// IsValidStatus reports whether s is one of the three persisted statuses.
func IsValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusUnpublished
}

// RecipientDetails identifies the employee an individual-targeted notice
// is addressed to.
type RecipientDetails struct {
	EmployeeID string `bson:"employee_id,omitempty" json:"employeeId,omitempty"`
	Name       string `bson:"name,omitempty" json:"name,omitempty"`
	Position   string `bson:"position,omitempty" json:"position,omitempty"`
}

// Notice is the persisted record representing one announcement.
type Notice struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	TargetAudience   string             `bson:"target_audience" json:"targetAudience"`
	RecipientDetails *RecipientDetails  `bson:"recipient_details,omitempty" json:"recipientDetails,omitempty"`
	NoticeType       []string           `bson:"notice_type" json:"noticeType"`
	PublishDate      time.Time          `bson:"publish_date" json:"publishDate"`
	Body             string             `bson:"body" json:"body"`
	Attachments      []string           `bson:"attachments" json:"attachments"`
	Status           string             `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Payload carries the caller-supplied notice fields for create and update.
// PublishDate is accepted as either a bare date (2006-01-02) or RFC 3339.
type Payload struct {
	Title            string            `json:"title" validate:"required"`
	TargetAudience   string            `json:"targetAudience" validate:"required"`
	RecipientDetails *RecipientDetails `json:"recipientDetails"`
	NoticeType       []string          `json:"noticeType" validate:"required,min=1"`
	PublishDate      string            `json:"publishDate" validate:"required"`
	Body             string            `json:"body" validate:"required"`
	Attachments      []string          `json:"attachments"`
	Status           string            `json:"status"`
}
