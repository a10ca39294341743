package httpserver

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Rky1/sweet_shop/internal/logging"
	"github.com/Rky1/sweet_shop/internal/models"
	"github.com/Rky1/sweet_shop/internal/mykafka"
	"github.com/Rky1/sweet_shop/internal/search"
)

// Event publishing and search indexing are best effort: a broken broker
// or index must not fail the request that already committed to the
// database.

func publishSweetEvent(c echo.Context, p *mykafka.Producer, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, mykafka.TopicSweetEvents, event["sweetID"].(string), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func publishInventoryEvent(c echo.Context, p *mykafka.Producer, event map[string]any) {
	publishSweetEvent(c, p, event)
}

func reindexSweet(c echo.Context, ix *search.Indexer, sweet *models.Sweet) {
	if err := ix.IndexSweet(c.Request().Context(), sweet); err != nil {
		logging.FromContext(c.Request().Context()).Error("search index error", "error", err, "sweetID", sweet.ID)
	}
}
