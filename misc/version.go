// Package misc keeps build time information.
package misc

// Set with -ldflags "-X doctex/misc.version=... -X doctex/misc.githash=..."
var (
	appName = "doctex"
	version = "dev"
	githash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return githash
}
