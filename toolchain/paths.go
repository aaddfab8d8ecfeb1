package toolchain

import "path/filepath"

// SystemIncludeDirs returns the ordered system header search directories for
// a job.  The toolchain's built-in headers come first, followed by the
// sysroot's system and local include tiers.  Resolution is a pure function
// of the configuration and the job's include suppressors, so repeated calls
// yield identical sequences.
func (c *Config) SystemIncludeDirs(spec *LinkSpec) []string {
	if spec.NoStdInc {
		return nil
	}

	var dirs []string

	if !spec.NoBuiltinInc {
		dirs = append(dirs, filepath.Join(c.ResourceDir, "include"))
	}

	if spec.NoStdlibInc {
		return dirs
	}

	// Default system header search paths.  A missing sysroot just yields
	// fewer entries.
	if c.Sysroot != "" {
		dirs = append(dirs, filepath.Join(c.Sysroot, "System", "Includes"))
		dirs = append(dirs, filepath.Join(c.Sysroot, "Local", "Includes"))
	}

	return dirs
}

// CXXStdlibIncludeDirs returns the header search directories for the C++
// standard library.
func (c *Config) CXXStdlibIncludeDirs(spec *LinkSpec) []string {
	if spec.NoStdInc || spec.NoStdlibInc || spec.NoStdIncCxx {
		return nil
	}

	switch c.CXXStdlibKind(spec) {
	case CXXStdlibLibcxx:
		if c.Sysroot == "" {
			return nil
		}

		return []string{filepath.Join(c.Sysroot, "System", "Includes", "c++", "v1")}
	default:
		panic("link: unknown C++ standard library kind")
	}
}

// TargetCodeGenArgs returns the extra code generation flags the compile
// stages pass for Kush targets.  Functions and data get their own sections
// so the linker can garbage collect aggressively.
func (c *Config) TargetCodeGenArgs(useInitArray bool) []string {
	var args []string

	if !useInitArray {
		args = append(args, "-fno-use-init-array")
	}

	args = append(args, "-ffunction-sections", "-fdata-sections")

	return args
}
