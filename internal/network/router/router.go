package router

import (
	"github.com/WitherStore/order-bot/internal/network/handlers"
	"github.com/WitherStore/order-bot/internal/network/middleware"
	"github.com/go-chi/chi/v5"
)

// Router - the small ops surface exposed beside the bot (probes only; the
// bot itself has no inbound HTTP API and no webhook listener)
type Router struct {
	Ready func() bool
}

func NewRouter(ready func() bool) *Router {
	return &Router{Ready: ready}
}

func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.LogHandle)
	r.Get("/healthz", handlers.HealthHandler())
	r.Get("/readyz", handlers.ReadyHandler(router.Ready))
	return r
}
