package authn

import (
	"os"
	"sync"
)

// siteURLEnv is the process environment key the identity provider
// reads to build absolute links.
const siteURLEnv = "SITE_URL"

var siteURLOnce sync.Once

// NormalizeSiteURL publishes the externally supplied site URL into the
// process environment exactly once per process lifetime. The value is
// fixed at first call, so racing requests performing first
// initialization write the same value in any order; repeat calls are
// no-ops. The setting is never torn down within the process.
func NormalizeSiteURL(url string) {
	if url == "" {
		return
	}
	siteURLOnce.Do(func() {
		_ = os.Setenv(siteURLEnv, url)
	})
}
