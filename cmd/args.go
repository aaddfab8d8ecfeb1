package cmd

import (
	"fmt"
	"os"
	"strings"

	"kushld/report"
	"kushld/toolchain"
	"kushld/util"
)

const usage = `Usage: kushld [flags|options] <input files>

Flags:
------
-h, --help            Displays usage information (ie. this text).
-v, --version         Displays the current driver version.
-static               Links the output fully statically.
-shared               Produces a shared object.
-pie                  Produces a position-independent executable.
-rdynamic             Exports all dynamic symbols from the executable.
-s                    Strips the symbol table from the output.
-nostdlib             Omits startup objects and default libraries.
-nostartfiles         Omits startup objects only.
-nodefaultlibs        Omits default libraries only.
-nolibc               Omits the platform C library.
-nostdinc             Omits all system include directories.
-nostdlibinc          Omits standard library include directories.
-nostdinc++           Omits C++ standard library include directories.
-nobuiltininc         Omits the toolchain's built-in include directory.
-static-libstdc++     Links just the C++ standard library statically.
-cxx                  Links as a C++ program.
-print-search-dirs    Prints the toolchain search directories and exits.

Options:
--------
-o <path>             Sets the output path.  Defaults to a.out.
-L<dir>, -L <dir>     Adds a library search directory.  May be repeated.
-u<sym>, -u <sym>     Forces <sym> to be entered as undefined.  May be
                      repeated.
--lto <mode>          Enables link-time optimization.  Valid values are
                      "full" and "thin".
--rtlib <name>        Selects the runtime support library.
--stdlib <name>       Selects the C++ standard library.
--toolchain <path>    Sets the path to the toolchain description file.
-ll, --loglevel       Sets the driver's log level.  Valid values are:
                        - "verbose" for outputting all messages (default)
                        - "warn" for outputting errors and warnings
                        - "error" for outputting errors only
                        - "silent" for no output
`

// Prints the usage message and exits the driver with the given exit code.
func printUsage(exitCode int) {
	fmt.Print(usage, "\n")
	os.Exit(exitCode)
}

// argParser is a command-line argument parser.
type argParser struct {
	// The arguments being parsed.
	args []string

	// The argument parser's position within those arguments.
	ndx int
}

// Set containing all the argument names that correspond to options.
var options = map[string]struct{}{
	"o":          {},
	"L":          {},
	"u":          {},
	"ll":         {},
	"-lto":       {},
	"-rtlib":     {},
	"-stdlib":    {},
	"-toolchain": {},
	"-loglevel":  {},
}

// argumentError displays an argument error and exits the program.
func argumentError(message string, args ...interface{}) {
	fmt.Print("argument error: ", fmt.Sprintf(message, args...), "\n\n")
	printUsage(1)
}

// nextArg parses the next command-line argument if one exists.  The first
// value is the name of the argument.  If this argument is positional, this
// value is empty.  The second value is the value of the argument.  If this
// value is empty, the argument is a flag.  If an argument exists, at least
// one of the returned values will be non-empty.  The final value indicates
// whether or not there was an argument to parse.
func (ap *argParser) nextArg() (string, string, bool) {
	if ap.ndx < len(ap.args) {
		arg := ap.args[ap.ndx]
		ap.ndx++

		if strings.HasPrefix(arg, "-") { // flag or option
			name := arg[1:]

			// Linker-style joined option values: -L<dir> and -u<symbol>.
			for _, joined := range []string{"L", "u"} {
				if len(name) > len(joined) && strings.HasPrefix(name, joined) {
					return joined, name[len(joined):], true
				}
			}

			if _, ok := options[name]; ok { // option
				// Make sure the option value exists.
				if ap.ndx < len(ap.args) && !strings.HasPrefix(ap.args[ap.ndx], "-") {
					value := ap.args[ap.ndx]
					ap.ndx++
					return name, value, true
				} else {
					argumentError("option %s requires an argument", strings.TrimLeft(name, "-"))
				}
			} else { // flag
				return name, "", true
			}

		} else { // positional
			return "", arg, true
		}
	}

	// No arguments to parse.
	return "", "", false
}

// useArg attempts to use a single command-line argument to initialize the
// driver.  If the argument is invalid, the program will exit.
func useArg(d *Driver, name, value string) {
	switch name {
	case "h", "-help":
		printUsage(0)
	case "v", "-version":
		fmt.Println(util.KushDriverID)
		os.Exit(0)
	case "static":
		d.spec.Static = true
	case "shared":
		d.spec.Shared = true
	case "pie":
		d.spec.PIE = true
	case "rdynamic":
		d.spec.RDynamic = true
	case "s":
		d.spec.StripSymbols = true
	case "nostdlib":
		d.spec.NoStdlib = true
	case "nostartfiles":
		d.spec.NoStartFiles = true
	case "nodefaultlibs":
		d.spec.NoDefaultLibs = true
	case "nolibc":
		d.spec.NoLibc = true
	case "nostdinc":
		d.spec.NoStdInc = true
	case "nostdlibinc":
		d.spec.NoStdlibInc = true
	case "nostdinc++":
		d.spec.NoStdIncCxx = true
	case "nobuiltininc":
		d.spec.NoBuiltinInc = true
	case "static-libstdc++":
		d.spec.StaticLibstdcxx = true
	case "cxx":
		d.spec.IsCxx = true
	case "print-search-dirs":
		d.printSearchDirs = true
	case "o":
		d.spec.OutputPath = value
	case "L":
		d.spec.LibraryPaths = append(d.spec.LibraryPaths, value)
	case "u":
		d.spec.UndefinedSymbols = append(d.spec.UndefinedSymbols, value)
	case "-lto":
		if !util.Contains([]string{"full", "thin"}, value) {
			argumentError("invalid LTO mode: %s", value)
		}

		if value == "thin" {
			d.spec.LTO = toolchain.LTOThin
		} else {
			d.spec.LTO = toolchain.LTOFull
		}
	case "-rtlib":
		d.spec.RuntimeLib = value
	case "-stdlib":
		d.spec.CXXStdlib = value
	case "-toolchain":
		d.toolchainPath = value
	case "ll", "-loglevel":
		{
			var logLevel int
			switch value {
			case "silent":
				logLevel = report.LogLevelSilent
			case "error":
				logLevel = report.LogLevelError
			case "warn":
				logLevel = report.LogLevelWarn
			case "verbose":
				logLevel = report.LogLevelVerbose
			default:
				argumentError("invalid log level")
			}

			report.InitReporter(logLevel)
		}
	case "":
		d.spec.Inputs = append(d.spec.Inputs, value)
	default:
		argumentError("unknown flag: %s", name)
	}
}

// newDriverFromArgs creates a new driver instance based on the given command
// line arguments if the arguments are valid: conflicting linking modes and a
// missing input list are rejected here, so the synthesizer only ever sees a
// normalized option set.
func newDriverFromArgs(args []string) *Driver {
	d := &Driver{spec: &toolchain.LinkSpec{}}

	ap := argParser{args: args, ndx: 0}

	// Parse all command line arguments.
	for {
		if name, value, ok := ap.nextArg(); ok {
			useArg(d, name, value)
		} else {
			break
		}
	}

	// The synthesizer assumes at most one linking mode is set.
	if d.spec.Static && d.spec.Shared {
		argumentError("-static and -shared are mutually exclusive")
	}

	if len(d.spec.Inputs) == 0 && !d.printSearchDirs {
		argumentError("at least one input file must be specified")
	}

	// Set default values for any optional unspecified arguments.
	if d.spec.OutputPath == "" {
		d.spec.OutputPath = "a.out"
	}

	return d
}

// NewDriverFromArgs creates a new driver instance from the process's command
// line arguments.
func NewDriverFromArgs() *Driver {
	return newDriverFromArgs(os.Args[1:])
}
