package toolchain

import "kushld/util"

// Command is a fully synthesized external tool invocation: the resolved path
// of the tool binary plus its ordered argument vector.  Argument order is
// semantically significant to the linker (it determines symbol resolution
// and search scope) and must not be permuted.
type Command struct {
	Path string
	Args []string
}

// ldyldoPath is the fixed path of the Kush dynamic loader.
const ldyldoPath = "/sbin/ldyldo"

// linkJob accumulates the argument vector for one link invocation.
type linkJob struct {
	spec *LinkSpec
	cfg  *Config
	args []string
}

func (j *linkJob) emit(args ...string) {
	j.args = append(j.args, args...)
}

// staticScope forces static library resolution while f runs and restores
// dynamic resolution on exit.  Balancing the toggle here rather than at the
// call sites keeps an unmatched -Bstatic from leaking into the rest of the
// line.
func (j *linkJob) staticScope(f func()) {
	j.emit("-Bstatic")
	f()
	j.emit("-Bdynamic")
}

// SynthesizeLink produces the linker invocation for one link job.  The
// argument vector is assembled in a fixed stage order and several later
// stages depend on choices made by earlier ones (the static/dynamic decision
// selects the C runtime startup object), so the stages must not be
// reordered.  Synthesis is pure and deterministic: identical inputs yield
// identical commands.
//
// Contract violations (LTO with no inputs, an unsupported C++ standard
// library) panic rather than produce a malformed command; the driver
// converts escaped panics into internal error reports.
func SynthesizeLink(spec *LinkSpec, cfg *Config) *Command {
	j := &linkJob{spec: spec, cfg: cfg}

	// The Kush runtime does not support read-only-after-relocation
	// protection yet.
	j.emit("-znorelro")

	if cfg.Sysroot != "" {
		j.emit("--sysroot=" + cfg.Sysroot)
	}

	isPIE := spec.IsPIE()
	if isPIE {
		j.emit("-pie")
	}

	if spec.StripSymbols {
		j.emit("-s")
	}

	// Static vs. dynamic linking flags.
	if spec.Static {
		j.emit("-Bstatic")
	} else {
		if spec.RDynamic {
			j.emit("-export-dynamic")
		}

		if spec.Shared {
			j.emit("-Bshareable")
		} else {
			j.emit("-dynamic-linker", ldyldoPath)
		}

		j.emit("--enable-new-dtags")
	}

	j.emit("-o", spec.OutputPath)

	// C runtime startup objects.
	if !spec.NoStdlib && !spec.NoStartFiles {
		switch {
		case spec.Static:
			j.emit(cfg.FilePath("crt0T.o"))
		case spec.Shared || isPIE:
			j.emit(cfg.FilePath("crt0S.o"))
		default:
			j.emit(cfg.FilePath("crt0.o"))
		}

		// Static executables must register _init/_fini explicitly; the
		// dynamic loader handles that otherwise.
		if spec.Static {
			j.emit(cfg.FilePath("crti.o"))
		}
	}

	// User search paths and forced-undefined symbols, in the order given,
	// then the toolchain's own library search paths.
	for _, dir := range spec.LibraryPaths {
		j.emit("-L" + dir)
	}
	for _, sym := range spec.UndefinedSymbols {
		j.emit("-u", sym)
	}
	j.emit(util.Map(cfg.FilePaths(), func(dir string) string { return "-L" + dir })...)

	j.emitLTOArgs()

	j.emit(spec.Inputs...)

	j.emitDefaultLibs()

	return &Command{Path: cfg.LinkerPath, Args: j.args}
}

// emitLTOArgs appends the link-time optimization plugin options.
func (j *linkJob) emitLTOArgs() {
	if j.spec.LTO == LTONone {
		return
	}

	if len(j.spec.Inputs) == 0 {
		panic("link: LTO requested with no inputs")
	}

	j.emit("-plugin-opt=O2")

	if j.spec.LTO == LTOThin {
		j.emit("-plugin-opt=thinlto")
		// The module index is derived from the first bitcode input.
		j.emit("-plugin-opt=thinlto-index=" + j.spec.Inputs[0] + ".thinlto.bc")
	}
}

// emitDefaultLibs appends the default library group: the C++ standard
// library when linking C++, the runtime support libraries, and the platform
// C library.
func (j *linkJob) emitDefaultLibs() {
	if j.spec.NoStdlib || j.spec.NoDefaultLibs {
		return
	}

	if j.spec.Static {
		j.emit("-Bstatic")
	}

	if j.spec.IsCxx {
		j.emitCXXStdlibArgs()
	}

	j.emit(runtimeLibArgs(j.cfg.RuntimeLibKind(j.spec))...)

	// libc also pulls in the system call layer.
	if !j.spec.NoLibc {
		j.emit("-lc")
	}
}

// emitCXXStdlibArgs appends the C++ standard library group.  The group is
// wrapped in a push-state/as-needed scope so unreferenced members are
// dropped, and may force static resolution for just the standard library
// within an otherwise dynamic link.
func (j *linkJob) emitCXXStdlibArgs() {
	onlyStdlibStatic := j.spec.StaticLibstdcxx && !j.spec.Static

	j.emit("--push-state", "--as-needed")

	if onlyStdlibStatic {
		j.staticScope(j.appendCXXStdlib)
	} else {
		j.appendCXXStdlib()
	}

	// Math routines always come from OpenLibM rather than libc.
	j.emit("-lopenlibm")

	j.emit("--pop-state")
}

// appendCXXStdlib appends the libraries of the configured C++ standard
// library implementation.
func (j *linkJob) appendCXXStdlib() {
	switch j.cfg.CXXStdlibKind(j.spec) {
	case CXXStdlibLibcxx:
		j.emit("-lc++abi", "-lc++")

		// C++ exceptions require libunwind.
		if !j.spec.Static {
			j.emit("-lunwind")
		}
	default:
		panic("link: unknown C++ standard library kind")
	}
}
