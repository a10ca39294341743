package search

import (
	"io"
	"log"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/Rky1/sweet_shop/internal/config"
)

const SweetIndex = "sweets"

func NewClient(cfg *config.Config) (*elasticsearch.Client, error) {
	log.Printf("Connecting to Elasticsearch at: %s", cfg.ES_URL)

	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.ES_URL},
		Username:  cfg.ES_USER,
		Password:  cfg.ES_PASSWORD,
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, err
	}

	res, err := client.Info()
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		log.Printf("Elasticsearch error response: %s", body)
		return nil, errStatus(res.Status())
	}

	log.Println("Successfully connected to Elasticsearch")
	return client, nil
}

type errStatus string

func (e errStatus) Error() string { return "elasticsearch error: " + string(e) }
