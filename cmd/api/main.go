package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"demo-api/configs"
	"demo-api/internal/api"
	"demo-api/internal/migrate"
	"demo-api/internal/shared/httpx"
	"demo-api/internal/store"
	"demo-api/pkg/db"
	"demo-api/pkg/logger"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.uber.org/zap"
)

func initOTEL(ctx context.Context) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return func(context.Context) error { return nil }
	}
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("demo-api"),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	ctx := context.Background()
	shutdown := initOTEL(ctx)
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = shutdown(c)
	}()

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

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	api.NewUserHandler(mux, st)
	api.NewPostHandler(mux, st)
	api.NewTagHandler(mux, st)
	api.NewAdminHandler(mux, st)

	srv := &http.Server{
		Addr:              cfg.APIAddr,
		Handler:           otelhttp.NewHandler(httpx.Logging(zlog, mux), "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	zlog.Info("rest api listening", zap.String("addr", cfg.APIAddr))
	log.Fatal(srv.ListenAndServe())
}
