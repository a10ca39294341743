package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Rky1/sweet_shop/internal/logging"
	"github.com/Rky1/sweet_shop/internal/mykafka"
	"github.com/Rky1/sweet_shop/internal/search"
	"github.com/Rky1/sweet_shop/internal/service"
	"github.com/Rky1/sweet_shop/internal/transport"
)

type SweetHTTP struct {
	Svc      *service.CatalogService
	Producer *mykafka.Producer
	Indexer  *search.Indexer
}

func parseSweetID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

func (h *SweetHTTP) CreateSweet(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "sweet.create")

	var req transport.CreateSweetRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_sweet_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	sweet, err := h.Svc.Create(ctx, req)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			l.Warn("create_sweet_failed", "status", 400, "reason", ve.Error())
			return respondError(c, http.StatusBadRequest, ve.Error())
		}
		l.Error("create_sweet_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Server error while creating sweet")
	}

	publishSweetEvent(c, h.Producer, map[string]any{"type": "sweet_created", "sweetID": sweet.ID.String(), "name": sweet.Name})
	reindexSweet(c, h.Indexer, sweet)

	return respondData(c, http.StatusCreated, sweet)
}

func (h *SweetHTTP) GetSweets(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "sweet.list")

	sweets, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("list_sweets_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Server error while fetching sweets")
	}

	return respondList(c, http.StatusOK, sweets, len(sweets))
}

func (h *SweetHTTP) SearchSweets(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "sweet.search")

	q := transport.SearchSweetsQuery{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
	}
	if raw := c.QueryParam("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return respondError(c, http.StatusBadRequest, "minPrice must be a number")
		}
		q.MinPrice = &v
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return respondError(c, http.StatusBadRequest, "maxPrice must be a number")
		}
		q.MaxPrice = &v
	}

	sweets, err := h.Svc.Search(ctx, q)
	if err != nil {
		l.Error("search_sweets_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Server error while searching sweets")
	}

	return respondList(c, http.StatusOK, sweets, len(sweets))
}

func (h *SweetHTTP) GetSweet(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "sweet.get")

	id, err := parseSweetID(c)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Sweet not found")
	}

	sweet, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "Sweet not found")
		}
		l.Error("get_sweet_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Server error while fetching sweet")
	}

	return respondData(c, http.StatusOK, sweet)
}

func (h *SweetHTTP) UpdateSweet(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "sweet.update")

	id, err := parseSweetID(c)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Sweet not found")
	}

	var req transport.UpdateSweetRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_sweet_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	sweet, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.Is(err, service.ErrNotFound):
			return respondError(c, http.StatusNotFound, "Sweet not found")
		case errors.As(err, &ve):
			l.Warn("update_sweet_failed", "status", 400, "reason", ve.Error())
			return respondError(c, http.StatusBadRequest, ve.Error())
		default:
			l.Error("update_sweet_failed", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Server error while updating sweet")
		}
	}

	publishSweetEvent(c, h.Producer, map[string]any{"type": "sweet_updated", "sweetID": sweet.ID.String(), "name": sweet.Name})
	reindexSweet(c, h.Indexer, sweet)

	return respondData(c, http.StatusOK, sweet)
}

func (h *SweetHTTP) DeleteSweet(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "sweet.delete")

	id, err := parseSweetID(c)
	if err != nil {
		return respondError(c, http.StatusNotFound, "Sweet not found")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "Sweet not found")
		}
		l.Error("delete_sweet_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Server error while deleting sweet")
	}

	publishSweetEvent(c, h.Producer, map[string]any{"type": "sweet_deleted", "sweetID": id.String()})
	if err := h.Indexer.DeleteSweet(ctx, id.String()); err != nil {
		l.Error("search index error", "error", err, "sweetID", id)
	}

	return respondMessage(c, http.StatusOK, "Sweet deleted successfully")
}

// FulltextSearch is the fuzzy name/description search backed by
// Elasticsearch. Separate from /search, which is the authoritative
// database-backed filter endpoint.
func (h *SweetHTTP) FulltextSearch(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "sweet.fulltext")

	if h.Indexer == nil {
		return respondError(c, http.StatusServiceUnavailable, "Full-text search is not available")
	}

	q := c.QueryParam("q")
	if q == "" {
		return respondError(c, http.StatusBadRequest, "Query parameter q is required")
	}

	total, sweets, err := search.Search(ctx, h.Indexer.ES, h.Indexer.Index, q, 0, 50)
	if err != nil {
		l.Error("fulltext_search_failed", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Server error while searching sweets")
	}

	count := int(total)
	return respondList(c, http.StatusOK, sweets, count)
}
