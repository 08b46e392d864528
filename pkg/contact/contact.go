package contact

import "time"

// Submission is a stored contact form message.
type Submission struct {
	Id             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Category       string    `json:"category"`
	PreferredReply string    `json:"preferredReply"`
	Subject        string    `json:"subject"`
	Message        string    `json:"message"`
	SubmittedAt    time.Time `json:"submittedAt"`
}
