package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxRarity prefixes every redis key of this service
	PfxRarity = "rarity"
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxAuthorizedUsers is the set of authorized identities
	PfxAuthorizedUsers = "auth:users"
	// PfxAuthAttempts is used for prefixing failed auth attempt counters
	PfxAuthAttempts = "auth:attempts"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// CacheKey is used to join in-process cache keys
func CacheKey(components ...string) string {
	return CustomKey("/", components...)
}

// GetPrefix extracts the first two components of a key, or the first one for
// two-component keys. Used as a metric tag.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join(s[:2], ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
