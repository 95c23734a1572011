package anubis

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// tokenCacheKey keeps raw bearer tokens out of the principal cache.
func tokenCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "principal:" + hex.EncodeToString(sum[:])
}

// resolveEndpoint joins path onto base. An absolute path wins over base.
func resolveEndpoint(base, path string) string {
	base, path = strings.TrimSpace(base), strings.TrimSpace(path)
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	base = strings.TrimRight(base, "/")
	if path == "" {
		return base
	}
	return base + "/" + strings.TrimLeft(path, "/")
}
