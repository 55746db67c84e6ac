package handler

import (
	"github.com/devfolio/internal/storage"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	store storage.Storage
}

// NewAPI constructs a handler set over the given storage.
func NewAPI(store storage.Storage) *API {
	return &API{store: store}
}
