package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"acronymer/internal/domain"
	"acronymer/internal/service"
)

type AcronymHandler struct {
	acronyms *service.AcronymService
	logger   *zap.Logger
}

func NewAcronymHandler(acronyms *service.AcronymService, logger *zap.Logger) *AcronymHandler {
	return &AcronymHandler{acronyms: acronyms, logger: logger}
}

func (h *AcronymHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listAcronyms)                // GET /api/v1/acronyms?category=&language=&type=&q=
	r.Post("/", h.createAcronym)              // POST /api/v1/acronyms
	r.Get("/categories", h.listCategories)    // GET /api/v1/acronyms/categories
	r.Get("/slug/{slug}", h.getAcronymBySlug) // GET /api/v1/acronyms/slug/rest-representational-state-transfer
	r.Get("/{id}", h.getAcronym)
	r.Post("/{id}/like", h.vote(domain.VoteLike))
	r.Post("/{id}/dislike", h.vote(domain.VoteDislike))
}

// parseAcronymQuery reads filters and paging from the query string.
// Malformed numbers are ignored and left to normalization.
func parseAcronymQuery(r *http.Request) domain.AcronymQuery {
	values := r.URL.Query()
	limit, _ := strconv.Atoi(values.Get("limit"))
	offset, _ := strconv.Atoi(values.Get("offset"))

	q := domain.AcronymQuery{
		Filters: domain.AcronymFilters{
			Category: values.Get("category"),
			Language: values.Get("language"),
			Type:     values.Get("type"),
		},
		Search: values.Get("q"),
		Limit:  limit,
		Offset: offset,
	}
	return q.Normalize()
}

func (h *AcronymHandler) listAcronyms(w http.ResponseWriter, r *http.Request) {
	page, err := h.acronyms.List(r.Context(), parseAcronymQuery(r))
	if err != nil {
		h.fail(w, "list acronyms", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, page)
}

func (h *AcronymHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.acronyms.Categories(r.Context())
	if err != nil {
		h.fail(w, "list categories", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

func (h *AcronymHandler) getAcronym(w http.ResponseWriter, r *http.Request) {
	acronym, err := h.acronyms.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "get acronym", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, acronym)
}

func (h *AcronymHandler) getAcronymBySlug(w http.ResponseWriter, r *http.Request) {
	acronym, err := h.acronyms.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, "get acronym by slug", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, acronym)
}

func (h *AcronymHandler) createAcronym(w http.ResponseWriter, r *http.Request) {
	var req service.CreateAcronymRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	acronym, err := h.acronyms.Create(r.Context(), req)
	if err != nil {
		h.fail(w, "create acronym", err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, acronym)
}

func (h *AcronymHandler) vote(v domain.Vote) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acronym, err := h.acronyms.Vote(r.Context(), chi.URLParam(r, "id"), string(v))
		if err != nil {
			h.fail(w, "vote", err)
			return
		}
		RespondWithJSON(w, http.StatusOK, acronym)
	}
}

func (h *AcronymHandler) fail(w http.ResponseWriter, op string, err error) {
	status := HTTPStatusFromError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.String("op", op), zap.Error(err))
	}
	RespondWithError(w, status, errorMessage(err))
}
