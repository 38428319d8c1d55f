package version

import "runtime/debug"

// Version can be set at build time:
// go build -ldflags "-X github.com/loomstream/loom/version.Version=$(git describe --dirty)"
var Version string

// VersionOrHash is the build-time version if one was set, otherwise the vcs
// revision baked into the binary, possibly empty.
var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var hash string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) >= 7 {
				hash = s.Value[:7]
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if hash != "" && dirty {
		return hash + "-dirty"
	}
	return hash
}()
