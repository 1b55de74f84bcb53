package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tendant/simple-catalog/pkg/catalog"
)

// ContentHandler handles HTTP requests for catalog content
type ContentHandler struct {
	service catalog.Service
}

// NewContentHandler creates a new content handler
func NewContentHandler(service catalog.Service) *ContentHandler {
	return &ContentHandler{
		service: service,
	}
}

// Routes returns the routes for content
func (h *ContentHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListContent)
	r.Post("/", h.CreateContent)

	// Static segments win over {id} in chi
	r.Get("/categories", h.ListCategories)
	r.Get("/tags", h.ListTags)
	r.Get("/author/{author_id}", h.ListByAuthor)

	r.Get("/{id}", h.GetContent)
	r.Put("/{id}", h.UpdateContent)
	r.Delete("/{id}", h.DeleteContent)
	r.Post("/{id}/like", h.LikeContent)

	return r
}

// ContentRequest is the request body for creating or replacing content.
// Pointer fields distinguish an absent required field from an empty one.
type ContentRequest struct {
	Title     *string  `json:"title"`
	Body      *string  `json:"body"`
	AuthorID  *string  `json:"author_id"`
	CreatedAt *string  `json:"created_at"`
	Category  string   `json:"category,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Status    string   `json:"status,omitempty"`
	Featured  bool     `json:"featured"`
}

// Draft validates required fields and converts the request.
func (req ContentRequest) Draft() (catalog.Draft, error) {
	missing := ""
	switch {
	case req.Title == nil:
		missing = "title"
	case req.Body == nil:
		missing = "body"
	case req.AuthorID == nil:
		missing = "author_id"
	case req.CreatedAt == nil:
		missing = "created_at"
	}
	if missing != "" {
		return catalog.Draft{}, &catalog.ContentError{Op: "validate", Err: fmt.Errorf("%w: %s is required", catalog.ErrInvalidDraft, missing)}
	}

	return catalog.Draft{
		Title:     *req.Title,
		Body:      *req.Body,
		AuthorID:  *req.AuthorID,
		CreatedAt: *req.CreatedAt,
		Category:  req.Category,
		Tags:      req.Tags,
		Status:    req.Status,
		Featured:  req.Featured,
	}, nil
}

// LikeResponse is the response body for a like action
type LikeResponse struct {
	ID    string `json:"id"`
	Likes int64  `json:"likes"`
}

// MessageResponse carries a human-readable confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ListContent lists content matching the query string filters
func (h *ContentHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := catalog.Query{
		Search:   params.Get("search"),
		Category: params.Get("category"),
		Tag:      params.Get("tag"),
		Status:   params.Get("status"),
		SortBy:   params.Get("sort_by"),
	}
	if raw := params.Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			slog.Error("Invalid featured filter", "featured", raw, "error", err)
			writeError(w, r, http.StatusBadRequest, "Invalid featured value")
			return
		}
		q.Featured = &featured
	}

	items, err := h.service.ListContent(r.Context(), q)
	if err != nil {
		h.handleError(w, r, "Failed to list content", err)
		return
	}

	slog.Info("Content listed", "count", len(items))
	render.JSON(w, r, items)
}

// GetContent returns one item and records a view against it
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.service.GetContent(r.Context(), id)
	if err != nil {
		h.handleError(w, r, "Failed to get content", err)
		return
	}

	slog.Info("Content retrieved", "content_id", id, "views", item.Views)
	render.JSON(w, r, item)
}

// ListByAuthor lists content written by one author
func (h *ContentHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID := chi.URLParam(r, "author_id")

	items, err := h.service.ListByAuthor(r.Context(), authorID)
	if err != nil {
		h.handleError(w, r, "Failed to list author content", err)
		return
	}

	slog.Info("Author content listed", "author_id", authorID, "count", len(items))
	render.JSON(w, r, items)
}

// CreateContent creates a new content item
func (h *ContentHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	item, err := h.service.CreateContent(r.Context(), draft)
	if err != nil {
		h.handleError(w, r, "Failed to create content", err)
		return
	}

	slog.Info("Content created", "content_id", item.ID, "author_id", item.AuthorID)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, item)
}

// UpdateContent replaces every client-owned field of an item
func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	item, err := h.service.UpdateContent(r.Context(), id, draft)
	if err != nil {
		h.handleError(w, r, "Failed to update content", err)
		return
	}

	slog.Info("Content updated", "content_id", id)
	render.JSON(w, r, item)
}

// DeleteContent deletes a content item
func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteContent(r.Context(), id); err != nil {
		h.handleError(w, r, "Failed to delete content", err)
		return
	}

	slog.Info("Content deleted", "content_id", id)
	render.JSON(w, r, MessageResponse{Message: "Content deleted successfully"})
}

// LikeContent records one like
func (h *ContentHandler) LikeContent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	likes, err := h.service.LikeContent(r.Context(), id)
	if err != nil {
		h.handleError(w, r, "Failed to like content", err)
		return
	}

	slog.Info("Content liked", "content_id", id, "likes", likes)
	render.JSON(w, r, LikeResponse{ID: id, Likes: likes})
}

// ListCategories returns the distinct categories in the catalog
func (h *ContentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.handleError(w, r, "Failed to list categories", err)
		return
	}
	render.JSON(w, r, categories)
}

// ListTags returns the distinct tags in the catalog
func (h *ContentHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.ListTags(r.Context())
	if err != nil {
		h.handleError(w, r, "Failed to list tags", err)
		return
	}
	render.JSON(w, r, tags)
}

func decodeDraft(w http.ResponseWriter, r *http.Request) (catalog.Draft, bool) {
	var req ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			slog.Warn("Request body too large", "limit", maxErr.Limit)
			writeError(w, r, http.StatusRequestEntityTooLarge, fmt.Sprintf("Request body exceeds %d bytes", maxErr.Limit))
			return catalog.Draft{}, false
		}
		slog.Error("Invalid request body", "error", err)
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return catalog.Draft{}, false
	}

	draft, err := req.Draft()
	if err != nil {
		slog.Error("Invalid content draft", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return catalog.Draft{}, false
	}
	return draft, true
}

func (h *ContentHandler) handleError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, catalog.ErrContentNotFound):
		slog.Warn(msg, "error", err)
		writeError(w, r, http.StatusNotFound, "Content not found")
	case errors.Is(err, catalog.ErrInvalidSortKey), errors.Is(err, catalog.ErrInvalidDraft):
		slog.Warn(msg, "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		slog.Error(msg, "error", err)
		writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Detail: detail})
}
