package types

// ErrorResponse is the single failure envelope returned by every route
type ErrorResponse struct {
	Error string `json:"error" example:"Query parameter is required"`
}

// WebSearchResponse documents the success body for type=web
type WebSearchResponse struct {
	Web struct {
		Results []WebResult `json:"results"`
	} `json:"web"`
}

// ImageSearchResponse documents the success body for type=images
type ImageSearchResponse struct {
	Images struct {
		Results []ImageResult `json:"results"`
	} `json:"images"`
}

// WebResult documents a web hit
type WebResult struct {
	Title       string `json:"title" example:"The Go Programming Language"`
	URL         string `json:"url" example:"https://go.dev"`
	Description string `json:"description" example:"Go is an open source programming language"`
}

// ImageResult documents an image hit
type ImageResult struct {
	Title     string `json:"title" example:"Gopher"`
	URL       string `json:"url" example:"https://go.dev/images/gopher.png"`
	Thumbnail string `json:"thumbnail" example:"https://imgs.search.brave.com/gopher-thumb.jpg"`
}

// SuggestionsResponse for the suggestions endpoint
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Upstream  map[string]string `json:"upstream"`
}
