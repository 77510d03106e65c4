package mailer

import (
	"fmt"
	"strings"
	"time"
)

// ContactJob is the JSON payload put on the RabbitMQ queue when a visitor
// submits the contact form. The worker turns it into an email to the inbox.
type ContactJob struct {
	ContactID int64     `json:"contact_id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Subject builds the notification subject line.
func (j ContactJob) Subject() string {
	from := j.Name
	if from == "" {
		from = "a visitor"
	}
	return "New contact message from " + from
}

// Text renders a plain-text body for the notification email.
func (j ContactJob) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Contact message #%d\n", j.ContactID)
	if j.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", j.Name)
	}
	if j.Email != "" {
		fmt.Fprintf(&b, "Reply-to: %s\n", j.Email)
	}
	fmt.Fprintf(&b, "Received: %s\n\n", j.CreatedAt.UTC().Format(time.RFC1123))
	b.WriteString(j.Message)
	b.WriteString("\n")
	return b.String()
}
