package main

import (
	"log"

	httpapi "github.com/smiitm/literature/internal/api/http"
	"github.com/smiitm/literature/internal/api/ws"
	"github.com/smiitm/literature/internal/config"
	"github.com/smiitm/literature/internal/room"
	"github.com/smiitm/literature/internal/store"
)

// @title Literature Game Server API
// @version 1.0
// @description Authoritative server for the Literature (Fish) card game
// @BasePath /
func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg)
	hub := ws.NewHub(rm)
	rm.SetBroadcaster(hub)

	stopReaper := rm.StartReaper()
	defer stopReaper()

	r := httpapi.NewRouter(rm, hub)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
