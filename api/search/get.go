package search

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/search-gateway/api/types"
	"github.com/killallgit/search-gateway/internal/metrics"
	"github.com/killallgit/search-gateway/internal/models"
	"github.com/killallgit/search-gateway/internal/services/brave"
	apperrors "github.com/killallgit/search-gateway/pkg/errors"
)

// Get handles search requests
// @Summary      Search the web or images
// @Description  Delegates the query to the upstream provider and returns results keyed by the requested type
// @Tags         search
// @Produce      json
// @Param        q     query  string  true  "Search query"
// @Param        type  query  string  true  "Result type"  Enums(web, images)
// @Success      200 {object} types.WebSearchResponse "Results for type=web"
// @Success      200 {object} types.ImageSearchResponse "Results for type=images"
// @Failure      400 {object} types.ErrorResponse "Missing query or invalid type"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} types.ErrorResponse "Configuration, unreadable upstream payload or unexpected error"
// @Failure      502 {object} types.ErrorResponse "Upstream error relayed with the provider's status"
// @Router       /api/search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := categoryLabel(c.Query("type"))

		defer func() {
			if r := recover(); r != nil {
				fail(c, category, apperrors.FromPanic(r))
			}
		}()

		resp, err := Search(c.Request.Context(), deps, c.Query("q"), c.Query("type"))
		if err != nil {
			fail(c, category, err)
			return
		}

		metrics.RecordSearch(category, metrics.OutcomeSuccess)
		c.JSON(http.StatusOK, resp)
	}
}

// Search runs the gateway pipeline for raw query parameters: validate,
// check the credential, dispatch once, project. Every returned error is an
// *AppError.
func Search(ctx context.Context, deps *types.Dependencies, query, category string) (models.GatewayResponse, error) {
	req, err := models.NewSearchRequest(query, category)
	if err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	if deps == nil || deps.ProviderCredential == "" {
		return nil, apperrors.ConfigError("brave.api_key", "BRAVE_SEARCH_API_KEY is not configured")
	}
	if deps.SearchClient == nil {
		return nil, apperrors.ConfigError("search_client", "search client is not configured")
	}

	payload, err := deps.SearchClient.Search(ctx, req, deps.ProviderCredential)
	if err != nil {
		return nil, upstreamFault(req, err)
	}

	return models.Project(req.Category, payload), nil
}

// upstreamFault maps a provider failure. Errors that are not provider
// errors are unanticipated and surface as internal.
func upstreamFault(req models.SearchRequest, err error) error {
	var apiErr *brave.APIError
	if !errors.As(err, &apiErr) {
		return apperrors.Internal(err).
			WithDetail("category", req.Category.String())
	}

	return apperrors.UpstreamError(apiErr.StatusCode, apiErr.StatusText, err).
		WithDetail("upstream_status", apiErr.ResponseStatus).
		WithDetail("upstream_status_text", apiErr.StatusText).
		WithDetail("upstream_body", apiErr.Body).
		WithDetail("endpoint", apiErr.Endpoint).
		WithDetail("category", req.Category.String())
}

func fail(c *gin.Context, category string, err error) {
	appErr := types.SendError(c, err)
	metrics.RecordSearch(category, outcome(appErr))
}

// categoryLabel keeps the metrics label set bounded to known categories
func categoryLabel(raw string) string {
	if cat, ok := models.ParseCategory(raw); ok {
		return cat.String()
	}
	return metrics.CategoryUnknown
}

func outcome(err error) string {
	switch {
	case apperrors.Is(err, apperrors.ErrCodeBadRequest):
		return metrics.OutcomeBadRequest
	case apperrors.Is(err, apperrors.ErrCodeConfiguration):
		return metrics.OutcomeConfigError
	case apperrors.Is(err, apperrors.ErrCodeUpstream):
		return metrics.OutcomeUpstream
	default:
		return metrics.OutcomeInternal
	}
}
