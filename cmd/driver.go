// Package cmd is the top-level "driver" package for the Kush link driver: it
// contains the functionality for parsing command-line arguments, discovering
// the platform toolchain, and running the link step.
package cmd

import (
	"fmt"
	"strings"

	"kushld/discover"
	"kushld/report"
	"kushld/toolchain"
)

// Driver represents the overall state and configuration of one driver run.
type Driver struct {
	// The path to the toolchain description file.  Empty means the default
	// lookup order applies.
	toolchainPath string

	// The normalized options for the link job.
	spec *toolchain.LinkSpec

	// Whether to print the toolchain search directories and exit.
	printSearchDirs bool
}

// RunDriver is the main entry point for the Kush link driver.  This should
// be called directly from main.
func RunDriver() int {
	d := NewDriverFromArgs()

	cfg, err := discover.Discover(d.toolchainPath)
	if err != nil {
		report.ReportFatal("toolchain discovery failed: %s", err.Error())
	}

	if d.printSearchDirs {
		d.displaySearchDirs(cfg)
		return 0
	}

	if !d.Link(cfg) || !report.ShouldProceed() {
		return 1
	}

	return 0
}

// displaySearchDirs prints the search directories derived from the
// discovered toolchain configuration.  The compile stages consume the same
// sequences for header and library lookup.
func (d *Driver) displaySearchDirs(cfg *toolchain.Config) {
	fmt.Println("programs: " + strings.Join(cfg.ProgramDirs, ":"))
	fmt.Println("libraries: " + strings.Join(cfg.FilePaths(), ":"))
	fmt.Println("includes: " + strings.Join(cfg.SystemIncludeDirs(d.spec), ":"))
	fmt.Println("c++ includes: " + strings.Join(cfg.CXXStdlibIncludeDirs(d.spec), ":"))
}
