// Package toolchain encodes the linking and search-path semantics of the
// Kush platform toolchain.  Its centerpiece is SynthesizeLink, which turns a
// normalized per-job option set into the exact, correctly ordered argument
// vector for the external linker.  Everything in this package is pure: all
// filesystem probing belongs to the discover package.
package toolchain

import (
	"path/filepath"

	"kushld/report"
)

// Config describes the Kush toolchain installed on the build machine: where
// its sysroot lives, where helper programs are found, and which directories
// are searched for platform libraries.  A Config is constructed once by
// toolchain discovery and never mutated afterwards, so concurrent link jobs
// may read it without synchronization.
type Config struct {
	// Sysroot is the root of the Kush system tree to compile and link
	// against.  It may be empty, in which case only built-in search paths
	// apply.
	Sysroot string

	// ResourceDir is the directory containing the toolchain's own support
	// files, such as its built-in headers.
	ResourceDir string

	// ProgramDirs lists the directories searched for helper programs such as
	// the linker, in search order.
	ProgramDirs []string

	// LinkerPath is the resolved path of the external linker binary.
	LinkerPath string

	// filePaths lists the directories searched for platform libraries and
	// startup objects, in search order.
	filePaths []string

	// diag receives non-fatal configuration diagnostics.
	diag func(message string, args ...interface{})
}

// NewConfig creates a toolchain configuration for the given sysroot,
// resource directory, and program directories.  The library search paths are
// seeded with the conventional sysroot locations: the system tier first,
// then the local tier.
func NewConfig(sysroot, resourceDir string, programDirs []string) *Config {
	c := &Config{
		Sysroot:     sysroot,
		ResourceDir: resourceDir,
		ProgramDirs: programDirs,
		diag:        report.ReportError,
	}

	// Default search paths for platform libraries.
	if sysroot != "" {
		c.filePaths = append(c.filePaths, filepath.Join(sysroot, "System", "Libraries"))
		c.filePaths = append(c.filePaths, filepath.Join(sysroot, "Local", "Libraries"))
	}

	return c
}

// FilePaths returns the toolchain's library search directories in search
// order.
func (c *Config) FilePaths() []string {
	return c.filePaths
}

// FilePath resolves a platform object or library file name against the
// toolchain's library search directories.  The system tier hosts the startup
// objects, so the first directory wins; without a sysroot the bare name is
// returned and the linker's own search applies.
func (c *Config) FilePath(name string) string {
	if len(c.filePaths) == 0 {
		return name
	}

	return filepath.Join(c.filePaths[0], name)
}
