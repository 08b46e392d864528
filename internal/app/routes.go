package app

import (
	"github.com/aptechtayyab/msgalpha-campusconnect/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Event catalog
	r.HandleFunc("/api/events", deps.EventHandler.ListEvents).Methods("GET")
	r.HandleFunc("/api/events/upcoming", deps.EventHandler.Upcoming).Methods("GET")
	r.HandleFunc("/api/events/next", deps.EventHandler.NextEvent).Methods("GET")
	r.HandleFunc("/api/events/facets", deps.EventHandler.GetFacets).Methods("GET")
	r.HandleFunc("/api/events/{eventId}", deps.EventHandler.GetEvent).Methods("GET")

	// Bookmarks
	r.HandleFunc("/api/bookmarks", deps.BookmarkHandler.ListBookmarks).Methods("GET")
	r.HandleFunc("/api/bookmarks", deps.BookmarkHandler.ClearBookmarks).Methods("DELETE")
	r.HandleFunc("/api/bookmarks/{eventId}", deps.BookmarkHandler.AddBookmark).Methods("PUT")
	r.HandleFunc("/api/bookmarks/{eventId}", deps.BookmarkHandler.RemoveBookmark).Methods("DELETE")
	r.HandleFunc("/api/bookmarks/{eventId}/toggle", deps.BookmarkHandler.ToggleBookmark).Methods("POST")

	// Calendar
	r.HandleFunc("/api/calendar/table", deps.CalendarHandler.GetTable).Methods("GET")
	r.HandleFunc("/api/calendar/{year}", deps.CalendarHandler.GetYear).Methods("GET")
	r.HandleFunc("/api/calendar/{year}/{month}", deps.CalendarHandler.GetGrid).Methods("GET")

	// Gallery
	r.HandleFunc("/api/gallery", deps.GalleryHandler.Browse).Methods("GET")
	r.HandleFunc("/api/gallery/options", deps.GalleryHandler.GetOptions).Methods("GET")

	// Static content
	r.HandleFunc("/api/banners", deps.ContentHandler.GetBanners).Methods("GET")
	r.HandleFunc("/api/sponsors", deps.ContentHandler.GetSponsors).Methods("GET")
	r.HandleFunc("/api/testimonials", deps.ContentHandler.GetTestimonials).Methods("GET")
	r.HandleFunc("/api/news", deps.ContentHandler.ListNews).Methods("GET")
	r.HandleFunc("/api/news/{articleId}", deps.ContentHandler.GetArticle).Methods("GET")
	r.HandleFunc("/api/coordinators", deps.ContentHandler.GetDirectory).Methods("GET")
	r.HandleFunc("/api/faqs", deps.ContentHandler.GetFAQs).Methods("GET")
	r.HandleFunc("/api/onboarding", deps.ContentHandler.GetOnboarding).Methods("GET")

	// Profile
	r.HandleFunc("/api/profile", deps.ProfileHandler.GetProfile).Methods("GET")
	r.HandleFunc("/api/profile", deps.ProfileHandler.UpdateProfile).Methods("PUT")
	r.HandleFunc("/api/profile/onboarding", deps.ProfileHandler.GetOnboardingState).Methods("GET")
	r.HandleFunc("/api/profile/onboarding", deps.ProfileHandler.MarkOnboardingSeen).Methods("POST")

	// Forms
	r.HandleFunc("/api/contact", deps.ContactHandler.SubmitMessage).Methods("POST")
	r.HandleFunc("/api/contact/categories", deps.ContactHandler.GetCategories).Methods("GET")
	r.HandleFunc("/api/feedback", deps.FeedbackHandler.SubmitFeedback).Methods("POST")
	r.HandleFunc("/api/feedback/events", deps.FeedbackHandler.GetRecentEvents).Methods("GET")
	r.HandleFunc("/api/registration", deps.RegistrationHandler.SubmitRegistration).Methods("POST")
	r.HandleFunc("/api/registration/events", deps.RegistrationHandler.GetOpenEvents).Methods("GET")

	// Stats
	r.HandleFunc("/api/stats", deps.StatsHandler.GetStats).Methods("GET")
	r.HandleFunc("/api/stats/csv", deps.StatsHandler.ExportCsv).Methods("GET")
}
