// Package buildinfo holds the version identity stamped into the walletplus
// binary at build time.
package buildinfo

// Set via -ldflags "-X github.com/walletplus-dev/walletplus/internal/buildinfo.Version=..."
// and friends; release builds override all three.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the identity the way the root command's --version shows it.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
