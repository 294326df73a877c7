package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

// Validation failures for inbound search parameters. The messages are safe
// to return to clients verbatim.
var (
	ErrQueryRequired   = errors.New("Query parameter is required")
	ErrInvalidCategory = errors.New(`Invalid search type. Must be "web" or "images"`)
)

// Category selects the upstream endpoint and the response shape
type Category string

const (
	CategoryWeb    Category = "web"
	CategoryImages Category = "images"
)

// categoryEntry describes how one category is dispatched and projected
type categoryEntry struct {
	// Endpoint is appended to the provider base URL
	Endpoint string
	// Key is the top-level key of the gateway response
	Key string
	// extract pulls the category's results out of the upstream payload,
	// returning an empty (never nil) slice when the field is absent
	extract func(p *UpstreamPayload) any
}

var categoryTable = map[Category]categoryEntry{
	CategoryWeb: {
		Endpoint: "web/search",
		Key:      "web",
		extract: func(p *UpstreamPayload) any {
			if p == nil || p.Web == nil || p.Web.Results == nil {
				return []WebResult{}
			}
			return p.Web.Results
		},
	},
	CategoryImages: {
		Endpoint: "images/search",
		Key:      "images",
		extract: func(p *UpstreamPayload) any {
			if p == nil || p.Images == nil || p.Images.Results == nil {
				return []ImageResult{}
			}
			return p.Images.Results
		},
	},
}

// ParseCategory returns the category named by s. Only exact, lower-case
// names are recognized.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	_, ok := categoryTable[c]
	return c, ok
}

// Categories returns every recognized category in lexical order
func Categories() []Category {
	out := make([]Category, 0, len(categoryTable))
	for c := range categoryTable {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Endpoint returns the provider path suffix for the category
func (c Category) Endpoint() string {
	return categoryTable[c].Endpoint
}

// ResponseKey returns the gateway response key for the category
func (c Category) ResponseKey() string {
	return categoryTable[c].Key
}

// String implements fmt.Stringer
func (c Category) String() string {
	return string(c)
}

// SearchRequest is a validated search, built once per inbound request
type SearchRequest struct {
	Query    string
	Category Category
}

// NewSearchRequest validates raw query parameters. The query is checked
// before the category and is stored trimmed.
func NewSearchRequest(query, category string) (SearchRequest, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchRequest{}, ErrQueryRequired
	}
	c, ok := ParseCategory(category)
	if !ok {
		return SearchRequest{}, ErrInvalidCategory
	}
	return SearchRequest{Query: query, Category: c}, nil
}

// WebResult is a single web search hit
type WebResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ImageResult is a single image search hit
type ImageResult struct {
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Thumbnail Thumbnail `json:"thumbnail"`
}

// Thumbnail is an image thumbnail URL. The provider sends either a plain
// string or an object carrying the URL in "src"; both decode to the URL.
type Thumbnail string

// UnmarshalJSON accepts a string, null, or {"src": "..."}
func (t *Thumbnail) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Src string `json:"src"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*t = Thumbnail(obj.Src)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = Thumbnail(s)
	return nil
}

// ResultSet wraps an ordered results array
type ResultSet[T any] struct {
	Results []T `json:"results"`
}

// UpstreamPayload is the subset of the provider response the gateway reads.
// Both sections are optional.
type UpstreamPayload struct {
	Web    *ResultSet[WebResult]   `json:"web,omitempty"`
	Images *ResultSet[ImageResult] `json:"images,omitempty"`
}

// ResultList is the body of a gateway response section
type ResultList struct {
	Results any `json:"results"`
}

// GatewayResponse is the success envelope: exactly one key, named after the
// requested category
type GatewayResponse map[string]ResultList

// Project reshapes an upstream payload into the gateway contract for the
// given category. Missing sections become an empty results array. The
// category must be one returned by ParseCategory.
func Project(c Category, p *UpstreamPayload) GatewayResponse {
	row := categoryTable[c]
	return GatewayResponse{
		row.Key: {Results: row.extract(p)},
	}
}

// Suggestions expands a query into the fixed set of related searches.
// A blank query yields an empty list.
func Suggestions(query string) []string {
	if strings.TrimSpace(query) == "" {
		return []string{}
	}
	suffixes := []string{"tutorial", "guide", "examples", "documentation", "best practices"}
	out := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		out = append(out, query+" "+s)
	}
	return out
}
