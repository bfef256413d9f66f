package version

// Build information, set with -ldflags "-X github.com/arthur-debert/stamp/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
