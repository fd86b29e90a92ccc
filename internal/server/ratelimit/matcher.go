package ratelimit

import (
	"strings"
)

// appliesTo reports whether the config covers a request. A Path ending in
// "/" covers every route under that prefix; any other Path must match
// exactly.
func (c *EndpointConfig) appliesTo(path, method string) bool {
	if c.Method != method {
		return false
	}
	if strings.HasSuffix(c.Path, "/") {
		return strings.HasPrefix(path, c.Path)
	}
	return c.Path == path
}

// lookupEndpoint picks the tier for a request. An exact Path always beats a
// prefix, and among prefixes the longest wins, so a broad /job-postings/
// tier can be overridden by a narrower one. Returns nil when no tier covers
// the request.
func (l *Limiter) lookupEndpoint(path, method string) *EndpointConfig {
	var best *EndpointConfig
	for i := range l.config.EndpointConfigs {
		c := &l.config.EndpointConfigs[i]
		if !c.appliesTo(path, method) {
			continue
		}
		if c.Path == path {
			return c
		}
		if best == nil || len(c.Path) > len(best.Path) {
			best = c
		}
	}
	return best
}
