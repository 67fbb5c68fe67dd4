// Package urls provides centralized constants for the addresses used
// throughout clipbridge.
//
// All project URLs are defined here as exported constants so they can be
// updated in a single location before release.
//
// Usage:
//
//	import "github.com/muurk/clipbridge/internal/urls"
//
//	fmt.Printf("Get clipbridge on your other device: %s\n", urls.Releases)
package urls
