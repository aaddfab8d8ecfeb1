// Package discover locates the Kush toolchain installed on the build machine
// and produces the immutable configuration the rest of the driver works
// from.  All filesystem probing happens here: the toolchain package itself
// never touches the disk.
package discover

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"kushld/report"
	"kushld/toolchain"
)

const (
	// ToolchainFileName is the name of the TOML toolchain description file.
	ToolchainFileName = "kush-toolchain.toml"

	// linkerName is the external linker the Kush toolchain drives.
	linkerName = "ld.lld"
)

// Discover builds the toolchain configuration.  When configPath is empty,
// the description file is looked up next to the driver binary and then via
// KUSH_TOOLCHAIN; with no description file at all the configuration falls
// back to the KUSH_SYSROOT and KUSH_RESOURCE_DIR environment variables,
// which yields a degraded but valid configuration.
func Discover(configPath string) (*toolchain.Config, error) {
	tc, err := loadDescription(configPath)
	if err != nil {
		return nil, err
	}

	cfg := toolchain.NewConfig(tc.Sysroot, tc.ResourceDir, tc.ProgramDirs)

	// Resolve the linker binary before the configuration is published; the
	// config is read-only from here on.
	if tc.Linker != "" {
		cfg.LinkerPath = tc.Linker
	} else {
		linkerPath, err := findLinker(tc.ProgramDirs)
		if err != nil {
			return nil, err
		}

		cfg.LinkerPath = linkerPath
	}

	return cfg, nil
}

// loadDescription finds and loads the toolchain description to use.
func loadDescription(configPath string) (*tomlToolchain, error) {
	if configPath != "" {
		return loadToolchainFile(configPath)
	}

	// A description file next to the driver binary wins.
	if exePath, err := os.Executable(); err == nil {
		path := filepath.Join(filepath.Dir(exePath), ToolchainFileName)
		if _, err := os.Stat(path); err == nil {
			return loadToolchainFile(path)
		}
	}

	if path := os.Getenv("KUSH_TOOLCHAIN"); path != "" {
		return loadToolchainFile(path)
	}

	// No description file: fall back to the environment.
	report.ReportWarning("no toolchain description file found: using KUSH_SYSROOT and KUSH_RESOURCE_DIR")

	return &tomlToolchain{
		Sysroot:     os.Getenv("KUSH_SYSROOT"),
		ResourceDir: os.Getenv("KUSH_RESOURCE_DIR"),
	}, nil
}

// findLinker probes the toolchain's program directories for the linker,
// falling back to the PATH.
func findLinker(programDirs []string) (string, error) {
	for _, dir := range programDirs {
		path := filepath.Join(dir, linkerName)
		if finfo, err := os.Stat(path); err == nil && !finfo.IsDir() {
			return path, nil
		}
	}

	if path, err := exec.LookPath(linkerName); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("unable to locate `%s`", linkerName)
}
