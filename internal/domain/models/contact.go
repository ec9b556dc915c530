// internal/domain/models/contact.go
package models

import "time"

// ContactSubmission is the payload the contact form posts to the API.
// The validate tags are shared by the site form and the API endpoint.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required,max=200" label:"Name"`
	Email   string `json:"email" validate:"required,email,max=254" label:"Email"`
	Phone   string `json:"phone" validate:"max=50" label:"Phone"`
	Subject string `json:"subject" validate:"required,max=300" label:"Subject"`
	Message string `json:"message" validate:"required" label:"Message"`
}

// ContactStatus tracks how far a stored message has been handled.
type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

// ContactMessage is a stored contact form submission.
type ContactMessage struct {
	ID        int64         `bson:"_id" json:"id"`
	Reference string        `bson:"reference" json:"-"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Phone     string        `bson:"phone" json:"phone"`
	Subject   string        `bson:"subject" json:"subject"`
	Message   string        `bson:"message" json:"message"`
	Status    ContactStatus `bson:"status" json:"-"`
	ClientIP  string        `bson:"client_ip_hash,omitempty" json:"-"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"-"`
}
