package ratelimit

import (
	"net/http"
	"strings"
)

// unlimitedPaths are probe and scrape endpoints that are never throttled
var unlimitedPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// unlimited is returned for unlimitedPaths; a zero limit disables throttling
var unlimited = EndpointConfig{}

// MatchEndpoint returns the configuration that applies to a request, or nil when the
// default limit applies. An exact path match wins; otherwise the longest configured
// prefix ending in "/" wins, so "/templates/" covers "/templates/{id}/preview".
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if method == http.MethodGet && unlimitedPaths[path] {
		match := unlimited
		return &match
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) &&
			(best == nil || len(c.Path) > len(best.Path)) {
			best = c
		}
	}
	return best
}
