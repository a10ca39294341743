package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Rky1/sweet_shop/internal/config"
	"github.com/Rky1/sweet_shop/internal/httpserver"
	"github.com/Rky1/sweet_shop/internal/logging"
	authmw "github.com/Rky1/sweet_shop/internal/middleware/auth"
	"github.com/Rky1/sweet_shop/internal/mykafka"
	"github.com/Rky1/sweet_shop/internal/repo"
	"github.com/Rky1/sweet_shop/internal/search"
	"github.com/Rky1/sweet_shop/internal/service"
	loggingmw "github.com/Rky1/sweet_shop/pkg/middleware/logging"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(context.Background(), configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	var indexer *search.Indexer
	if configuration.ES_URL != "" {
		esClient, err := search.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		indexer = search.NewIndexer(esClient)
	}

	store := repo.New(db)
	tokens := &service.TokenService{Secret: []byte(configuration.JWT_SECRET)}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{
			Svc:      &service.AuthService{Repo: store, Tokens: tokens},
			Producer: producer,
		},
		SweetHandler: &httpserver.SweetHTTP{
			Svc:      &service.CatalogService{Repo: store},
			Producer: producer,
			Indexer:  indexer,
		},
		InventoryHandler: &httpserver.InventoryHTTP{
			Svc:      &service.InventoryService{Repo: store},
			Producer: producer,
			Indexer:  indexer,
		},
		AuthMiddleware: authmw.New(tokens),
		StaticDir:      configuration.STATIC_DIR,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.APP_PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
