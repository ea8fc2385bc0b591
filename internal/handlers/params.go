package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// optionalQuery returns a pointer to the query value, or nil when absent.
func optionalQuery(c *gin.Context, key string) *string {
	value, ok := c.GetQuery(key)
	if !ok || value == "" {
		return nil
	}
	return &value
}

// optionalIntQuery parses an optional integer query parameter.
func optionalIntQuery(c *gin.Context, key string) (*int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// optionalFloatQuery parses an optional float query parameter.
func optionalFloatQuery(c *gin.Context, key string) (*float64, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// csvQuery splits a comma-separated query parameter into trimmed values.
func csvQuery(c *gin.Context, key string) []string {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			values = append(values, p)
		}
	}
	return values
}
