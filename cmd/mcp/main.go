package main

import (
	"log"

	"demo-api/configs"
	"demo-api/internal/mcptool"
	"demo-api/internal/migrate"
	"demo-api/internal/store"
	"demo-api/pkg/db"
	"demo-api/pkg/logger"

	"github.com/mark3labs/mcp-go/server"
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
	s := mcptool.NewServer(st)

	zlog.Info("mcp server listening", zap.String("addr", cfg.MCPAddr))
	if err := server.NewStreamableHTTPServer(s).Start(cfg.MCPAddr); err != nil {
		log.Fatalf("mcp server: %v", err)
	}
}
