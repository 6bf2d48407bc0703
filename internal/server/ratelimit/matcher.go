package ratelimit

import (
	"strings"
)

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns the matching EndpointConfig or nil if no match is found. Routes that
// are never limited get a fresh zero-limit config.
// An exact path wins over prefixes ending in "/", and the longest prefix wins
// among those. HEAD requests match GET configurations.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if method == "HEAD" {
		method = "GET"
	}

	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	var best *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != method {
			continue
		}
		if config.Path == path {
			return config
		}
		if strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			if best == nil || len(config.Path) > len(best.Path) {
				best = config
			}
		}
	}

	return best
}
