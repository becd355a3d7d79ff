package models

const notAvailable = "N/A"

// BuildInfo is the build metadata injected with -ldflags "-X main.build...".
// Values that were not injected read "N/A".
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Injected reports whether a real version was linked in.
func (b BuildInfo) Injected() bool {
	return b.Version != notAvailable
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
