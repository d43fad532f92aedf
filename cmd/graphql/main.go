package main

import (
	"log"
	"net/http"
	"time"

	"demo-api/configs"
	"demo-api/internal/gql"
	"demo-api/internal/migrate"
	"demo-api/internal/shared/httpx"
	"demo-api/internal/store"
	"demo-api/pkg/db"
	"demo-api/pkg/logger"
	"demo-api/pkg/res"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.Load()
	zlog := logger.New(cfg.LogLevel)
	defer zlog.Sync()

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := migrate.AutoMigrateAll(conn); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	st := store.New(conn, cfg.SQLDir)
	schema, err := gql.NewSchema(st)
	if err != nil {
		log.Fatalf("schema: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("POST /graphql", gql.Handler(schema))
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		res.Json(w, map[string]string{
			"status":  "healthy",
			"message": "GraphQL API is running",
		}, http.StatusOK)
	})

	srv := &http.Server{
		Addr:              cfg.GraphQLAddr,
		Handler:           httpx.Logging(zlog, mux),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	zlog.Info("graphql api listening", zap.String("addr", cfg.GraphQLAddr))
	log.Fatal(srv.ListenAndServe())
}
