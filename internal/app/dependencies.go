package app

import (
	"time"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/config"
	"github.com/aptechtayyab/msgalpha-campusconnect/internal/event_bus"
	"github.com/aptechtayyab/msgalpha-campusconnect/internal/session"
	"github.com/aptechtayyab/msgalpha-campusconnect/internal/utils"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/bookmark"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/calendar"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/contact"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/content"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/event"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/feedback"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/gallery"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/profile"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/registration"
	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/stats"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus     *event_bus.EventBus
	SessionStore *session.Store

	EventRepo    *event.EventRepositoryImpl
	EventService event.EventService
	EventHandler *event.EventHandler

	BookmarkService *bookmark.BookmarkServiceImpl
	BookmarkHandler *bookmark.BookmarkHandler

	CalendarService *calendar.CalendarServiceImpl
	CalendarHandler *calendar.CalendarHandler

	GalleryService *gallery.GalleryServiceImpl
	GalleryHandler *gallery.GalleryHandler

	ContentRepo    *content.ContentRepositoryImpl
	ContentService content.ContentService
	BannerRotator  *content.Rotator
	ContentHandler *content.ContentHandler

	ProfileService profile.ProfileService
	ProfileHandler *profile.ProfileHandler

	ContactRepo    contact.ContactRepository
	ContactService contact.ContactService
	ContactHandler *contact.ContactHandler

	FeedbackService *feedback.FeedbackServiceImpl
	FeedbackHandler *feedback.FeedbackHandler

	RegistrationService *registration.RegistrationServiceImpl
	RegistrationHandler *registration.RegistrationHandler

	StatsService     *stats.StatsServiceImpl
	CsvStatsRenderer *stats.CsvStatsRendererImpl
	StatsHandler     *stats.StatsHandler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Clock = utils.SystemClock{}
	deps.EventBus = event_bus.NewEventBus()
	deps.SessionStore = session.NewStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)

	eventRepo, err := event.NewEventRepo(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}
	deps.EventRepo = eventRepo
	normalizer := event.Normalizer{Placeholder: cfg.Data.PlaceholderImage}
	deps.EventService = event.NewEventService(deps.EventRepo, normalizer)
	deps.EventHandler = event.NewEventHandler(deps.EventService)

	deps.BookmarkService = bookmark.NewBookmarkService(deps.SessionStore, deps.EventService, deps.EventBus)
	deps.BookmarkHandler = bookmark.NewBookmarkHandler(deps.BookmarkService)

	deps.CalendarService = calendar.NewCalendarService(deps.EventRepo, normalizer, cfg.Data.Dir)
	deps.CalendarHandler = calendar.NewCalendarHandler(deps.CalendarService)

	deps.GalleryService = gallery.NewGalleryService(deps.EventRepo, normalizer)
	deps.GalleryHandler = gallery.NewGalleryHandler(deps.GalleryService)

	contentRepo, err := content.NewContentRepo(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}
	deps.ContentRepo = contentRepo
	deps.ContentService = content.NewContentService(deps.ContentRepo)
	deps.BannerRotator = content.NewRotator(deps.ContentRepo, time.Duration(cfg.Banners.RotationSeconds)*time.Second)
	deps.ContentHandler = content.NewContentHandler(deps.ContentService, deps.BannerRotator)

	deps.ProfileService = profile.NewProfileService(deps.SessionStore, deps.ContentService)
	deps.ProfileHandler = profile.NewProfileHandler(deps.ProfileService)

	deps.ContactRepo = contact.NewContactRepo()
	deps.ContactService = contact.NewContactService(deps.ContactRepo, deps.EventBus)
	deps.ContactHandler = contact.NewContactHandler(deps.ContactService)

	deps.FeedbackService = feedback.NewFeedbackService(deps.EventService, deps.EventBus)
	deps.FeedbackHandler = feedback.NewFeedbackHandler(deps.FeedbackService)

	deps.RegistrationService = registration.NewRegistrationService(deps.EventService, deps.EventBus)
	deps.RegistrationHandler = registration.NewRegistrationHandler(deps.RegistrationService)

	deps.StatsService = stats.NewStatsService(deps.EventRepo, normalizer)
	deps.CsvStatsRenderer = stats.NewCsvStatsRenderer()
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService, deps.CsvStatsRenderer)

	return deps, nil
}
