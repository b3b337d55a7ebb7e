package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxTokenMeta is used for prefixing cached token metadata
	PfxTokenMeta = "tokenMeta"
	// PfxMarketEvents is the channel prefix for market event broadcasts
	PfxMarketEvents = "marketEvents"
)

// CustomKey is used to join the customized key by components with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by components
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix returns the leading component of a redis key for metric tagging
func GetPrefix(key string) string {
	if idx := strings.Index(key, ":"); idx > 0 {
		return key[:idx]
	}
	return key
}
