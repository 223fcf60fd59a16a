// Package buildinfo exposes the version stamp injected at link time.
package buildinfo

import (
	"fmt"
	"io"
)

// Set with -ldflags "-X ticketapp/internal/buildinfo.buildVersion=..." etc.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// PrintBuildData writes the build stamp to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
