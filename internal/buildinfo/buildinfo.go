// Package buildinfo carries version metadata injected with -ldflags:
//
//	go build -ldflags "-X gasket/internal/buildinfo.Version=v1.2.0"
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Title formats a window title such as "gasket (v1.2.0)".
func Title(name string) string {
	return name + " (" + Short() + ")"
}
