// Package buildinfo holds values stamped into the binary at link time, e.g.
//
//	go build -ldflags "-X github.com/killallgit/search-gateway/internal/buildinfo.Version=1.2.0"
package buildinfo

import "runtime"

// Name is the product name reported by the CLI and the root route
const Name = "Search Gateway"

// Build variables - these will be set during build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
	OS        = runtime.GOOS
	Arch      = runtime.GOARCH
)
