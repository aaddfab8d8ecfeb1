package toolchain

// RuntimeLibKind identifies a runtime support library implementation: the
// library providing compiler intrinsics and other support routines.
type RuntimeLibKind int

// Kush ships exactly one runtime support library.
const (
	RuntimeCompilerRT RuntimeLibKind = iota // The compiler-rt builtins library.
)

// CXXStdlibKind identifies a C++ standard library implementation.
type CXXStdlibKind int

// Kush ships exactly one C++ standard library.
const (
	CXXStdlibLibcxx CXXStdlibKind = iota // LLVM's libc++.
)

// RuntimeLibKind determines which runtime support library the job links.
// Kush only ships compiler-rt: requesting any other implementation is
// reported as an error, but the job proceeds with compiler-rt so the build
// can still make progress.
func (c *Config) RuntimeLibKind(spec *LinkSpec) RuntimeLibKind {
	if spec.RuntimeLib != "" && spec.RuntimeLib != "compiler-rt" {
		c.diag("invalid runtime library name: %s", spec.RuntimeLib)
	}

	return RuntimeCompilerRT
}

// CXXStdlibKind determines which C++ standard library the job links.  Kush
// only supports libc++; any other implementation reaching this point means
// upstream option validation is broken.
func (c *Config) CXXStdlibKind(spec *LinkSpec) CXXStdlibKind {
	if spec.CXXStdlib != "" && spec.CXXStdlib != "libc++" {
		panic("link: unsupported C++ standard library: " + spec.CXXStdlib)
	}

	return CXXStdlibLibcxx
}

// runtimeLibArgs lists the linker arguments for the given runtime support
// library.
func runtimeLibArgs(kind RuntimeLibKind) []string {
	switch kind {
	case RuntimeCompilerRT:
		return []string{"-lclang_rt.builtins"}
	default:
		panic("link: unknown runtime library kind")
	}
}
