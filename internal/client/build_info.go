package client

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

// BuildInfo is linker-injected build metadata of the msalconfig binary.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo returns BuildInfo with empty values replaced by "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return notAvailable
		}
		return s
	}

	return BuildInfo{Version: orNA(version), Date: orNA(date), Commit: orNA(commit)}
}

// Print writes the build metadata to w, one field per line.
func (b BuildInfo) Print(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", b.Version)
	fmt.Fprintf(w, "Build date: %s\n", b.Date)
	fmt.Fprintf(w, "Build commit: %s\n", b.Commit)
}
