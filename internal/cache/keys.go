package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// KeyPrefix constants for different cache types
const (
	PrefixCatalog = "catalog"
)

// GenerateKey hashes the given parts into a stable key
func GenerateKey(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(hash[:])
}

// CatalogKey is the key of the example listing of one repository branch.
// Host and owner names are case-insensitive, the branch is not.
func CatalogKey(host, org, repo, branch string) string {
	return PrefixCatalog + ":" + GenerateKey(strings.ToLower(host), strings.ToLower(org), strings.ToLower(repo), branch)
}
