package toolchain

// LTOMode selects the flavor of link-time optimization for a link job.
type LTOMode int

// Enumeration of link-time optimization modes.
const (
	LTONone LTOMode = iota // No link-time optimization.
	LTOFull                // Whole-program (monolithic) LTO.
	LTOThin                // ThinLTO: per-module summaries with a global index.
)

// LinkSpec is the normalized option set for a single link job.  It is
// produced from already-validated driver options: in particular, Static and
// Shared are never both set by the time a spec reaches the synthesizer.  A
// LinkSpec is created fresh per job and consumed once.
type LinkSpec struct {
	Static       bool // Link everything statically.
	Shared       bool // Produce a shared object.
	PIE          bool // Produce a position-independent executable.
	RDynamic     bool // Export all dynamic symbols from the executable.
	StripSymbols bool // Strip the symbol table from the output.

	NoStdlib      bool // Suppress startup objects and default libraries.
	NoStartFiles  bool // Suppress startup objects only.
	NoDefaultLibs bool // Suppress default libraries only.
	NoLibc        bool // Suppress the platform C library.

	NoStdInc     bool // Suppress all system include directories.
	NoStdlibInc  bool // Suppress standard library include directories.
	NoStdIncCxx  bool // Suppress C++ standard library include directories.
	NoBuiltinInc bool // Suppress the toolchain's built-in include directory.

	// StaticLibstdcxx forces static linking of just the C++ standard library
	// within an otherwise dynamic link.
	StaticLibstdcxx bool

	// IsCxx indicates the job links a C++ program and should pull in the C++
	// standard library.
	IsCxx bool

	// LTO is the link-time optimization mode for the job.  When it is not
	// LTONone the job must have at least one input.
	LTO LTOMode

	// RuntimeLib and CXXStdlib are the user-requested runtime library and
	// C++ standard library implementation names.  Both are empty when the
	// user accepted the defaults.
	RuntimeLib string
	CXXStdlib  string

	// LibraryPaths and UndefinedSymbols are the user-supplied `-L` and `-u`
	// values, in the order they were given.
	LibraryPaths     []string
	UndefinedSymbols []string

	// Inputs are the artifacts to link (objects, archives, or bitcode), in
	// the order they were given.
	Inputs []string

	// OutputPath is the destination artifact path.
	OutputPath string
}

// kushDefaultPIE is the platform default for position independence.  Plain
// Kush executables are not PIE unless requested.
const kushDefaultPIE = false

// IsPIE reports whether the job produces a position-independent executable.
// Shared objects are relocatable by construction and are never PIE.
func (spec *LinkSpec) IsPIE() bool {
	return !spec.Shared && (spec.PIE || kushDefaultPIE)
}
