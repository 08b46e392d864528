package event_bus

import "time"

const (
	BookmarkAdded         EventType = "bookmark.added"
	BookmarkRemoved       EventType = "bookmark.removed"
	ContactSubmitted      EventType = "contact.submitted"
	FeedbackSubmitted     EventType = "feedback.submitted"
	RegistrationSubmitted EventType = "registration.submitted"
)

type BookmarkChanged struct {
	SessionId string
	EventId   string
}

type ContactMessage struct {
	Id       string
	Email    string
	Category string
	Subject  string
}

type FeedbackEntry struct {
	Id      string
	EventId string
	Rating  int
}

type EventRegistration struct {
	Id        string
	EventId   string
	EventDate time.Time
	Email     string
}
