package gallery

import (
	"context"
	"testing"

	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *GalleryServiceImpl {
	repo := &event.StubEventRepository{Events: []event.Event{
		{Id: "1", Title: "Tech Symposium", Category: "Technology", Date: "2024-10-18"},
		{Id: "2", Title: "Cultural Fest", Category: "Cultural", Date: "2025-03-14"},
		{Id: "3", Title: "Art Walk", Date: "2024-09-21"},
		{Id: "4", Title: "Science Exhibition", Category: "Technology", Date: "TBA"},
	}}
	return NewGalleryService(repo, event.Normalizer{Placeholder: "/p.jpg"})
}

func TestGallery_BrowseGroupsByYearNewestFirst(t *testing.T) {
	groups, err := newTestService().Browse(context.Background(), Filter{}, GroupByYear)
	require.NoError(t, err)

	// March 2025 falls in the 2024–25 academic year together with the two
	// autumn 2024 events; the undated record gets its own bucket.
	require.Len(t, groups, 2)
	assert.Equal(t, "2024–25", groups[0].Label)
	assert.Len(t, groups[0].Items, 3)
	assert.Equal(t, "Undated", groups[1].Label)
	assert.Len(t, groups[1].Items, 1)

	// Titles ascend inside a bucket.
	assert.Equal(t, "Art Walk", groups[0].Items[0].Title)
}

func TestGallery_BrowseGroupsByCategory(t *testing.T) {
	groups, err := newTestService().Browse(context.Background(), Filter{}, GroupByCategory)
	require.NoError(t, err)

	require.Len(t, groups, 3)
	assert.Equal(t, "Cultural", groups[0].Label)
	assert.Equal(t, "General", groups[1].Label)
	assert.Equal(t, "Technology", groups[2].Label)
}

func TestGallery_BrowseFilters(t *testing.T) {
	service := newTestService()

	byYear, err := service.Browse(context.Background(), Filter{Year: 2024}, GroupByYear)
	require.NoError(t, err)
	require.Len(t, byYear, 1)
	assert.Len(t, byYear[0].Items, 3)

	byQuery, err := service.Browse(context.Background(), Filter{Query: "art"}, GroupByYear)
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	require.Len(t, byQuery[0].Items, 1)
	assert.Equal(t, "Art Walk", byQuery[0].Items[0].Title)
}

func TestGallery_Options(t *testing.T) {
	options, err := newTestService().Options(context.Background())
	require.NoError(t, err)

	require.Len(t, options.Years, 1)
	assert.Equal(t, 2024, options.Years[0].Key)
	assert.Equal(t, "2024–25", options.Years[0].Label)
	assert.Equal(t, []string{"Cultural", "Technology"}, options.Categories)
}
