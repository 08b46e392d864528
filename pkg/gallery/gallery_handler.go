package gallery

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aptechtayyab/msgalpha-campusconnect/pkg/event"
)

type GroupDTO struct {
	Label string           `json:"label"`
	Items []event.EventDTO `json:"items"`
}

type GalleryHandler struct {
	galleryService GalleryService
}

func NewGalleryHandler(galleryService GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService}
}

// Browse serves the grouped gallery view.
func (h *GalleryHandler) Browse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	params := r.URL.Query()
	filter := Filter{
		Category: params.Get("category"),
		Query:    params.Get("q"),
	}
	if rawYear := params.Get("year"); rawYear != "" && rawYear != "All" {
		if year, err := strconv.Atoi(rawYear); err == nil {
			filter.Year = year
		}
	}
	groupBy := GroupBy(params.Get("groupBy"))
	if groupBy != GroupByCategory {
		groupBy = GroupByYear
	}

	groups, err := h.galleryService.Browse(r.Context(), filter, groupBy)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]GroupDTO, 0, len(groups))
	for _, group := range groups {
		dto := GroupDTO{Label: group.Label, Items: make([]event.EventDTO, 0, len(group.Items))}
		for _, e := range group.Items {
			dto.Items = append(dto.Items, event.ToDTO(e))
		}
		response = append(response, dto)
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetOptions serves the year and category filter choices.
func (h *GalleryHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	options, err := h.galleryService.Options(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(options); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
