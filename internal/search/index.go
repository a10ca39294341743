package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/Rky1/sweet_shop/internal/models"
)

// Indexer mirrors catalog writes into the full-text index, best
// effort. A nil *Indexer is a valid no-op, used when Elasticsearch is
// not configured.
type Indexer struct {
	ES    *elasticsearch.Client
	Index string
}

func NewIndexer(es *elasticsearch.Client) *Indexer {
	return &Indexer{ES: es, Index: SweetIndex}
}

func (ix *Indexer) IndexSweet(ctx context.Context, sweet *models.Sweet) error {
	if ix == nil {
		return nil
	}

	body, err := json.Marshal(sweet)
	if err != nil {
		return fmt.Errorf("index sweet: %w", err)
	}

	res, err := ix.ES.Index(
		ix.Index,
		bytes.NewReader(body),
		ix.ES.Index.WithDocumentID(sweet.ID.String()),
		ix.ES.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index sweet: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return errStatus(res.Status())
	}
	return nil
}

func (ix *Indexer) DeleteSweet(ctx context.Context, id string) error {
	if ix == nil {
		return nil
	}

	res, err := ix.ES.Delete(ix.Index, id, ix.ES.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("delete sweet from index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return errStatus(res.Status())
	}
	return nil
}
