// Package pkgmgr resolves the package manager that launched the tool and
// runs its install command.
package pkgmgr

import (
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/quantmind-br/create-example/internal/domain"
)

// UserAgentEnv is set by npm, yarn, pnpm and bun for the processes they launch,
// e.g. "pnpm/8.6.0 npm/? node/v18.16.0 linux x64"
const UserAgentEnv = "npm_config_user_agent"

// Known lists the package managers recognized in the user agent
var Known = []string{"npm", "yarn", "pnpm", "bun", "cnpm"}

// EnvLookup reads one environment variable
type EnvLookup func(key string) (string, bool)

// Resolver infers the invoking package manager
type Resolver struct {
	lookup   EnvLookup
	fallback string
}

// NewResolver creates a new Resolver. A nil lookup reads the process
// environment; fallback is used when nothing is detected.
func NewResolver(lookup EnvLookup, fallback string) *Resolver {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if fallback == "" {
		fallback = "npm"
	}
	return &Resolver{lookup: lookup, fallback: fallback}
}

// Resolve returns the detected package manager or the fallback
func (r *Resolver) Resolve() domain.PackageManager {
	ua, ok := r.lookup(UserAgentEnv)
	if !ok {
		return domain.PackageManager{Name: r.fallback}
	}
	if pm, ok := ParseUserAgent(ua); ok {
		return pm
	}
	return domain.PackageManager{Name: r.fallback}
}

// ParseUserAgent extracts the package manager from the first token of a
// user agent string. Unknown names are rejected; an unparsable version is
// dropped.
func ParseUserAgent(ua string) (domain.PackageManager, bool) {
	fields := strings.Fields(ua)
	if len(fields) == 0 {
		return domain.PackageManager{}, false
	}

	name, ver, _ := strings.Cut(fields[0], "/")
	if !isKnown(name) {
		return domain.PackageManager{}, false
	}

	pm := domain.PackageManager{Name: name}
	if v, err := semver.NewVersion(ver); err == nil {
		pm.Version = v.String()
	}
	return pm, true
}

func isKnown(name string) bool {
	for _, k := range Known {
		if k == name {
			return true
		}
	}
	return false
}
