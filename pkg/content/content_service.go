package content

import (
	"context"
	"errors"
)

var ErrArticleNotFound = errors.New("article not found")

const testimonialPageSize = 3

// TestimonialPage is one page of the rotating testimonial carousel.
type TestimonialPage struct {
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
	Items []Testimonial `json:"items"`
}

// ArticleDetail is a single news article plus the related articles teaser.
type ArticleDetail struct {
	Article Article   `json:"article"`
	Related []Article `json:"related"`
}

type ContentService interface {
	Banners(ctx context.Context) []Banner
	Sponsors(ctx context.Context, limit int) []Sponsor
	Testimonials(ctx context.Context, page int) TestimonialPage
	News(ctx context.Context) []Article
	GetArticle(ctx context.Context, id string) (ArticleDetail, error)
	Directory(ctx context.Context) Directory
	FAQs(ctx context.Context) []FAQ
	Onboarding(ctx context.Context) OnboardingConfig
}

type ContentServiceImpl struct {
	repo ContentRepository
}

func NewContentService(repo ContentRepository) *ContentServiceImpl {
	return &ContentServiceImpl{repo}
}

func (s *ContentServiceImpl) Banners(ctx context.Context) []Banner {
	return s.repo.Banners(ctx)
}

// Sponsors returns at most limit sponsors in file order. limit <= 0 means all.
func (s *ContentServiceImpl) Sponsors(ctx context.Context, limit int) []Sponsor {
	sponsors := s.repo.Sponsors(ctx)
	if limit > 0 && limit < len(sponsors) {
		return sponsors[:limit]
	}
	return sponsors
}

// Testimonials serves pages of three. An out-of-range page wraps around so the
// carousel can advance forever.
func (s *ContentServiceImpl) Testimonials(ctx context.Context, page int) TestimonialPage {
	testimonials := s.repo.Testimonials(ctx)
	if len(testimonials) == 0 {
		return TestimonialPage{Page: 0, Pages: 0, Items: []Testimonial{}}
	}

	pages := (len(testimonials) + testimonialPageSize - 1) / testimonialPageSize
	page = ((page % pages) + pages) % pages
	start := page * testimonialPageSize
	end := start + testimonialPageSize
	if end > len(testimonials) {
		end = len(testimonials)
	}
	return TestimonialPage{Page: page, Pages: pages, Items: testimonials[start:end]}
}

func (s *ContentServiceImpl) News(ctx context.Context) []Article {
	return s.repo.Articles(ctx)
}

// GetArticle resolves one article by id and picks the first three other articles as
// the related teaser.
func (s *ContentServiceImpl) GetArticle(ctx context.Context, id string) (ArticleDetail, error) {
	articles := s.repo.Articles(ctx)
	found := -1
	for i, a := range articles {
		if a.Id == id {
			found = i
			break
		}
	}
	if found < 0 {
		return ArticleDetail{}, ErrArticleNotFound
	}

	related := make([]Article, 0, 3)
	for i, a := range articles {
		if i == found {
			continue
		}
		related = append(related, a)
		if len(related) == 3 {
			break
		}
	}
	return ArticleDetail{Article: articles[found], Related: related}, nil
}

func (s *ContentServiceImpl) Directory(ctx context.Context) Directory {
	return s.repo.Directory(ctx)
}

func (s *ContentServiceImpl) FAQs(ctx context.Context) []FAQ {
	return s.repo.FAQs(ctx)
}

func (s *ContentServiceImpl) Onboarding(ctx context.Context) OnboardingConfig {
	return s.repo.Onboarding(ctx)
}
