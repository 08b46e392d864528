package content

import (
	"context"
	"sync"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/data"
	log "github.com/sirupsen/logrus"
)

type ContentRepository interface {
	Banners(ctx context.Context) []Banner
	Sponsors(ctx context.Context) []Sponsor
	Testimonials(ctx context.Context) []Testimonial
	Articles(ctx context.Context) []Article
	Directory(ctx context.Context) Directory
	FAQs(ctx context.Context) []FAQ
	Onboarding(ctx context.Context) OnboardingConfig
	Reload() error
}

// ContentRepositoryImpl loads the supplementary data files. Every file is
// optional; a missing one leaves its collection empty, and a malformed
// banners file is treated the same way since banners are fire-and-forget.
type ContentRepositoryImpl struct {
	dir string

	mu           sync.RWMutex
	banners      []Banner
	sponsors     []Sponsor
	testimonials []Testimonial
	articles     []Article
	directory    Directory
	faqs         []FAQ
	onboarding   OnboardingConfig
}

func NewContentRepo(dir string) (*ContentRepositoryImpl, error) {
	r := &ContentRepositoryImpl{dir: dir}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ContentRepositoryImpl) Reload() error {
	var banners []Banner
	if _, err := data.LoadJSON(r.dir, "banners.json", &banners); err != nil {
		// Banners degrade silently: the hero just has nothing to rotate.
		log.Warnf("ignoring unreadable banners.json: %v", err)
		banners = nil
	}

	var sponsors []Sponsor
	if _, err := data.LoadJSON(r.dir, "sponsors.json", &sponsors); err != nil {
		return err
	}
	var testimonials []Testimonial
	if _, err := data.LoadJSON(r.dir, "testimonials.json", &testimonials); err != nil {
		return err
	}
	var articles []Article
	if _, err := data.LoadJSON(r.dir, "news.json", &articles); err != nil {
		return err
	}
	var directory Directory
	if _, err := data.LoadJSON(r.dir, "coordinators.json", &directory); err != nil {
		return err
	}
	var faqs []FAQ
	if _, err := data.LoadJSON(r.dir, "faqs.json", &faqs); err != nil {
		return err
	}
	onboarding := OnboardingConfig{
		Headline: "Welcome to CampusConnect",
		Subtitle: "Tell us who you are to personalise your visit.",
		Roles: []Role{
			{Id: "student", Label: "Student"},
			{Id: "staff", Label: "Staff"},
			{Id: "guest", Label: "Guest"},
		},
	}
	if _, err := data.LoadJSON(r.dir, "onboarding.json", &onboarding); err != nil {
		return err
	}

	r.mu.Lock()
	r.banners = banners
	r.sponsors = sponsors
	r.testimonials = testimonials
	r.articles = articles
	r.directory = directory
	r.faqs = faqs
	r.onboarding = onboarding
	r.mu.Unlock()
	return nil
}

func (r *ContentRepositoryImpl) Banners(ctx context.Context) []Banner {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.banners
}

func (r *ContentRepositoryImpl) Sponsors(ctx context.Context) []Sponsor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sponsors
}

func (r *ContentRepositoryImpl) Testimonials(ctx context.Context) []Testimonial {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.testimonials
}

func (r *ContentRepositoryImpl) Articles(ctx context.Context) []Article {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.articles
}

func (r *ContentRepositoryImpl) Directory(ctx context.Context) Directory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.directory
}

func (r *ContentRepositoryImpl) FAQs(ctx context.Context) []FAQ {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.faqs
}

func (r *ContentRepositoryImpl) Onboarding(ctx context.Context) OnboardingConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.onboarding
}
