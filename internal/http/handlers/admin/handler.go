package admin

import "github.com/saralchem/orderdesk/internal/provider"

// Handler is the dashboard API entry point.
type Handler struct {
	*provider.Container
}

// New creates the dashboard handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
