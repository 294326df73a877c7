package types

import (
	"context"

	"github.com/killallgit/search-gateway/internal/models"
)

// SearchClient is the upstream provider as seen by the handlers
type SearchClient interface {
	Search(ctx context.Context, req models.SearchRequest, apiKey string) (*models.UpstreamPayload, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	SearchClient SearchClient
	// ProviderCredential is the upstream subscription token. It is resolved
	// from configuration once at startup and may be empty; the search route
	// treats an empty value as a configuration fault.
	ProviderCredential string
}
