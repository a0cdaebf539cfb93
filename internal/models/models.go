package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// Report statuses. A report starts as pending and moves to
// action_taken or resolved through the admin action endpoint.
const (
	ReportPending     = "pending"
	ReportActionTaken = "action_taken"
	ReportResolved    = "resolved"
)

type Comment struct {
	Text       string    `json:"comment" bson:"comment"`
	AuthorName string    `json:"authorName" bson:"authorName"`
	AuthorID   string    `json:"authorId" bson:"authorId"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

type Post struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	AuthorImage     string             `json:"authorImage" bson:"authorImage"`
	AuthorName      string             `json:"authorName" bson:"authorName"`
	AuthorEmail     string             `json:"authorEmail" bson:"authorEmail"`
	PostTitle       string             `json:"postTitle" bson:"postTitle"`
	PostDescription string             `json:"postDescription" bson:"postDescription"`
	Tag             string             `json:"tag" bson:"tag"`
	UpVote          int                `json:"upVote" bson:"upVote"`
	DownVote        int                `json:"downVote" bson:"downVote"`
	Comments        []Comment          `json:"comments" bson:"comments"`
	Status          string             `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`

	// Derived from the embedded comments, never stored.
	CommentCount int `json:"commentCount" bson:"-"`
}

type User struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UID        string             `json:"uid" bson:"uid"`
	Email      string             `json:"email" bson:"email"`
	Name       string             `json:"name" bson:"name"`
	Role       string             `json:"role" bson:"role"`
	Membership string             `json:"membership" bson:"membership"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	LastLogin  time.Time          `json:"lastLogin" bson:"lastLogin"`
}

type Announcement struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	AuthorName  string             `json:"authorName" bson:"authorName"`
	AuthorImage string             `json:"authorImage" bson:"authorImage"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

type ReportAction struct {
	Type string    `json:"type" bson:"type"`
	At   time.Time `json:"at" bson:"at"`
}

type Report struct {
	ID                primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ReporterUID       string             `json:"reporterUid" bson:"reporterUid"`
	ReporterEmail     string             `json:"reporterEmail" bson:"reporterEmail"`
	ReportedUserUID   string             `json:"reportedUserUid" bson:"reportedUserUid"`
	ReportedUserEmail string             `json:"reportedUserEmail" bson:"reportedUserEmail"`
	ContentID         string             `json:"contentId" bson:"contentId"`
	ContentSnippet    string             `json:"contentSnippet" bson:"contentSnippet"`
	Reason            string             `json:"reason" bson:"reason"`
	Status            string             `json:"status" bson:"status"`
	Actions           []ReportAction     `json:"actions" bson:"actions"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
}
