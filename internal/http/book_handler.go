package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bookexplorer/internal/book"
	"bookexplorer/internal/catalog"
	"bookexplorer/internal/httpx"
	"bookexplorer/internal/session"
)

// SessionIDHeader lets the create flow tag which chat session should
// see the new book without refetching the catalog.
const SessionIDHeader = "X-Session-Id"

type BookHandler struct {
	repo     book.Repository
	sessions *session.Manager
}

func NewBookHandler(repo book.Repository, sessions *session.Manager) *BookHandler {
	return &BookHandler{repo: repo, sessions: sessions}
}

// List returns the catalog filtered and paginated in memory. The data
// set is small; views are re-derived on every request rather than
// pushed into SQL.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query().Get("q")
	genre := r.URL.Query().Get("genre")
	if genre == "" {
		genre = catalog.GenreAll
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	books, err := h.repo.ListAll(ctx)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "server_error", "server error", nil)
		return
	}

	filtered := catalog.Filter(books, q, genre)
	pageBooks, totalPages := catalog.Paginate(filtered, pageSize, page)

	meta := map[string]interface{}{
		"page":        page,
		"page_size":   pageSize,
		"total":       len(filtered),
		"total_pages": totalPages,
		"pages":       catalog.PageWindow(totalPages, page),
		"genres":      catalog.DistinctGenres(books),
	}
	httpx.JSONSuccess(w, pageBooks, meta)
}

type createBookRequest struct {
	Title       string  `json:"title" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Genre       string  `json:"genre"`
	Year        int     `json:"year"`
	Price       float64 `json:"price" validate:"gte=0"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count" validate:"gte=0"`
}

// Create validates and stores a new book. On success the book, with
// its database-assigned id, is also appended to the caller's chat
// session catalog when the session header is present.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", nil)
		return
	}

	if verrs := ValidateStruct(req); verrs != nil {
		details := make([]httpx.ErrorDetail, 0, len(verrs))
		for _, ve := range verrs {
			details = append(details, httpx.ErrorDetail{Field: ve.Field, Message: ve.Message})
		}
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", "title and author are required", details)
		return
	}

	b := book.Book{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		Year:        req.Year,
		Price:       req.Price,
		Rating:      req.Rating,
		ReviewCount: req.ReviewCount,
	}
	if err := h.repo.Create(ctx, &b); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "server_error", "server error", nil)
		return
	}

	if sid := r.Header.Get(SessionIDHeader); sid != "" {
		h.sessions.Append(sid, b)
	}

	httpx.JSONSuccessCreated(w, b)
}
