package content

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/aptechtayyab/msgalpha-campusconnect/internal/rest"
	"github.com/gorilla/mux"
)

type BannerFeedDTO struct {
	Slides []Banner `json:"slides"`
	Active int      `json:"active"`
}

type ContentHandler struct {
	contentService ContentService
	rotator        *Rotator
}

func NewContentHandler(contentService ContentService, rotator *Rotator) *ContentHandler {
	return &ContentHandler{contentService, rotator}
}

// GetBanners serves the hero slides along with the currently active index.
func (h *ContentHandler) GetBanners(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	feed := BannerFeedDTO{
		Slides: h.contentService.Banners(r.Context()),
		Active: h.rotator.Current(r.Context()),
	}
	if feed.Slides == nil {
		feed.Slides = []Banner{}
	}
	if err := json.NewEncoder(w).Encode(feed); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *ContentHandler) GetSponsors(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	sponsors := h.contentService.Sponsors(r.Context(), limit)
	if sponsors == nil {
		sponsors = []Sponsor{}
	}
	if err := json.NewEncoder(w).Encode(sponsors); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *ContentHandler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}
	if err := json.NewEncoder(w).Encode(h.contentService.Testimonials(r.Context(), page)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *ContentHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	articles := h.contentService.News(r.Context())
	if articles == nil {
		articles = []Article{}
	}
	if err := json.NewEncoder(w).Encode(articles); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *ContentHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	detail, err := h.contentService.GetArticle(r.Context(), mux.Vars(r)["articleId"])
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Article not found",
				Details: "No article exists with the given id",
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(detail); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *ContentHandler) GetDirectory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.contentService.Directory(r.Context())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *ContentHandler) GetFAQs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	faqs := h.contentService.FAQs(r.Context())
	if faqs == nil {
		faqs = []FAQ{}
	}
	if err := json.NewEncoder(w).Encode(faqs); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *ContentHandler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.contentService.Onboarding(r.Context())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
