package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort_DateAscPutsUnparseableFirst(t *testing.T) {
	sorted := Sort(catalog(), SortDateAsc)
	assert.Equal(t, []string{"4", "3", "2", "1"}, ids(sorted))
}

func TestSort_DateDescPutsUnparseableLast(t *testing.T) {
	sorted := Sort(catalog(), SortDateDesc)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(sorted))
}

func TestSort_TitleAsc(t *testing.T) {
	sorted := Sort(catalog(), SortTitleAsc)
	assert.Equal(t, []string{"3", "2", "4", "1"}, ids(sorted))
}

func TestSort_CategoryAscBreaksTiesByDate(t *testing.T) {
	sorted := Sort(catalog(), SortCategoryAsc)
	// Career, Cultural, then the two Technology records with the undated one
	// first.
	assert.Equal(t, []string{"3", "2", "4", "1"}, ids(sorted))
}

func TestSort_IsStableAndDoesNotMutateInput(t *testing.T) {
	input := catalog()
	_ = Sort(input, SortDateAsc)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(input))

	// Equal dates keep their input order.
	same := normalizer.EnrichAll([]Event{
		{Id: "a", Title: "First", Date: "2025-05-05"},
		{Id: "b", Title: "Second", Date: "2025-05-05"},
	})
	sorted := Sort(same, SortDateAsc)
	assert.Equal(t, []string{"a", "b"}, ids(sorted))
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	sorted := Sort(catalog(), SortKey("bogus"))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(sorted))
}
