package version

// Set at build time with -ldflags, e.g.
// go build -ldflags "-X Vodostok/internal/version.Version=1.2.0"
var (
	Version = "0.3.0"

	BuildTime = "unknown"

	GitCommit = "unknown"

	Author = "Vodostok"

	Year = "2025"
)

type Info struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
}

func Get() Info {
	return Info{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit}
}

func (i Info) String() string {
	return "v" + i.Version + " (" + i.GitCommit + ", " + i.BuildTime + ")"
}
