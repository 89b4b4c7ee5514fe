package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/fieldserve/backoffice/internal/audit"
	"github.com/fieldserve/backoffice/internal/auth"
	"github.com/fieldserve/backoffice/internal/config"
	"github.com/fieldserve/backoffice/internal/graph"
	"github.com/fieldserve/backoffice/internal/routes"
	"github.com/fieldserve/backoffice/internal/store"
	"github.com/fieldserve/backoffice/internal/store/gormstore"
	"github.com/fieldserve/backoffice/internal/store/memstore"
)

func main() {
	cfg := config.Load()

	var st store.Store
	switch cfg.StoreDriver {
	case "memory":
		st = memstore.New()
	default:
		st = gormstore.Open(cfg)
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	dispatcher := audit.NewDispatcher(audit.New(st))

	schema, err := graph.New(st, tokens, dispatcher, cfg)
	if err != nil {
		log.Fatalf("failed to build schema: %v", err)
	}

	r := gin.Default()
	routes.SetupRoutes(r, schema, tokens, st)

	log.Printf("listening on %s (store driver %s)", cfg.Addr(), cfg.StoreDriver)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
