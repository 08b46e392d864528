package content

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContentRepo struct {
	banners      []Banner
	testimonials []Testimonial
	articles     []Article
	sponsors     []Sponsor
}

func (s *stubContentRepo) Banners(ctx context.Context) []Banner           { return s.banners }
func (s *stubContentRepo) Sponsors(ctx context.Context) []Sponsor         { return s.sponsors }
func (s *stubContentRepo) Testimonials(ctx context.Context) []Testimonial { return s.testimonials }
func (s *stubContentRepo) Articles(ctx context.Context) []Article         { return s.articles }
func (s *stubContentRepo) Directory(ctx context.Context) Directory        { return Directory{} }
func (s *stubContentRepo) FAQs(ctx context.Context) []FAQ                 { return nil }
func (s *stubContentRepo) Onboarding(ctx context.Context) OnboardingConfig {
	return OnboardingConfig{Roles: []Role{{Id: "student", Label: "Student"}}}
}
func (s *stubContentRepo) Reload() error { return nil }

func testimonials(n int) []Testimonial {
	out := make([]Testimonial, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Testimonial{Id: fmt.Sprintf("t%d", i+1), Name: "Visitor", Quote: "Great"})
	}
	return out
}

func TestContent_TestimonialPagesOfThree(t *testing.T) {
	service := NewContentService(&stubContentRepo{testimonials: testimonials(7)})
	ctx := context.Background()

	first := service.Testimonials(ctx, 0)
	assert.Equal(t, 3, first.Pages)
	assert.Len(t, first.Items, 3)
	assert.Equal(t, "t1", first.Items[0].Id)

	last := service.Testimonials(ctx, 2)
	assert.Len(t, last.Items, 1)
	assert.Equal(t, "t7", last.Items[0].Id)

	// Out-of-range pages wrap so the carousel can keep advancing.
	wrapped := service.Testimonials(ctx, 3)
	assert.Equal(t, 0, wrapped.Page)
	assert.Equal(t, "t1", wrapped.Items[0].Id)

	negative := service.Testimonials(ctx, -1)
	assert.Equal(t, 2, negative.Page)
}

func TestContent_TestimonialsEmpty(t *testing.T) {
	service := NewContentService(&stubContentRepo{})

	page := service.Testimonials(context.Background(), 5)
	assert.Equal(t, 0, page.Pages)
	assert.Empty(t, page.Items)
}

func TestContent_SponsorsLimit(t *testing.T) {
	service := NewContentService(&stubContentRepo{sponsors: []Sponsor{
		{Id: "s1"}, {Id: "s2"}, {Id: "s3"},
	}})
	ctx := context.Background()

	assert.Len(t, service.Sponsors(ctx, 2), 2)
	assert.Len(t, service.Sponsors(ctx, 0), 3)
	assert.Len(t, service.Sponsors(ctx, 10), 3)
}

func TestContent_GetArticleWithRelated(t *testing.T) {
	service := NewContentService(&stubContentRepo{articles: []Article{
		{Id: "n1"}, {Id: "n2"}, {Id: "n3"}, {Id: "n4"}, {Id: "n5"},
	}})

	detail, err := service.GetArticle(context.Background(), "n2")
	require.NoError(t, err)
	assert.Equal(t, "n2", detail.Article.Id)
	// Related is the first three other articles in file order.
	require.Len(t, detail.Related, 3)
	assert.Equal(t, "n1", detail.Related[0].Id)
	assert.Equal(t, "n3", detail.Related[1].Id)
	assert.Equal(t, "n4", detail.Related[2].Id)
}

func TestContent_GetArticleNotFound(t *testing.T) {
	service := NewContentService(&stubContentRepo{articles: []Article{{Id: "n1"}}})

	_, err := service.GetArticle(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestRotator_AdvancesAndClamps(t *testing.T) {
	repo := &stubContentRepo{banners: []Banner{{Id: "b1"}, {Id: "b2"}, {Id: "b3"}}}
	rotator := NewRotator(repo, 0)
	ctx := context.Background()

	assert.Equal(t, 0, rotator.Current(ctx))
	rotator.advance(ctx)
	rotator.advance(ctx)
	assert.Equal(t, 2, rotator.Current(ctx))
	rotator.advance(ctx)
	assert.Equal(t, 0, rotator.Current(ctx))

	// Shrinking the slide deck clamps the index.
	rotator.advance(ctx)
	rotator.advance(ctx)
	repo.banners = repo.banners[:1]
	assert.Equal(t, 0, rotator.Current(ctx))
}
