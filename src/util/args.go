package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Options holds the parsed command line configuration for the
// formatting demo: a format string, the arguments to render it
// against, where to send the result, and how many batch jobs to run
// concurrently when reading jobs from a file or stdin.
type Options struct {
	Format  string   // Format string to render.
	Args    []string // Trailing positional arguments, rendered against Format.
	In      string   // Path to a batch job file; empty means stdin when Threads > 0.
	Out     string   // Path to the output file; empty means stdout.
	Threads int  // Worker count for batch mode. 0 means single-job mode.
	Verbose bool // Set true to print the engine's reported character count.
}

// ---------------------
// ----- Constants -----
// ---------------------

const maxThreads = 64 // Maximum worker goroutines allowed in batch mode.
const appVersion = "fctfmt 1.0"

// ---------------------
// ----- functions -----
// ---------------------

// ParseArgs parses command line arguments into an Options value. The
// first non-flag argument is taken as the format string; every
// argument after it is a positional value rendered against that
// format.
func ParseArgs() (Options, error) {
	opt := Options{}
	args := os.Args[1:]

	i1 := 0
	for ; i1 < len(args); i1++ {
		switch args[i1] {
		case "-h", "--h", "-help", "--help":
			printHelp()
			os.Exit(0)
		case "-o":
			if i1+1 >= len(args) {
				return opt, fmt.Errorf("got flag %s but no argument", args[i1])
			}
			if strings.HasPrefix(args[i1+1], "-") {
				return opt, fmt.Errorf("expected path to output file, got new flag %s", args[i1+1])
			}
			opt.Out = args[i1+1]
			i1++
		case "-i":
			if i1+1 >= len(args) {
				return opt, fmt.Errorf("got flag %s but no argument", args[i1])
			}
			opt.In = args[i1+1]
			i1++
		case "-t":
			if i1+1 >= len(args) {
				return opt, fmt.Errorf("got flag %s but no argument", args[i1])
			}
			t, err := strconv.Atoi(args[i1+1])
			if err != nil {
				return opt, fmt.Errorf("expected integer thread count, got: %s", args[i1+1])
			}
			if t < 1 || t > maxThreads {
				return opt, fmt.Errorf("thread count must be integer in range [1, %d]", maxThreads)
			}
			opt.Threads = t
			i1++
		case "-v", "--v", "-version", "--version":
			fmt.Println(appVersion)
			os.Exit(0)
		case "-vb":
			opt.Verbose = true
		default:
			if strings.HasPrefix(args[i1], "-") {
				return opt, fmt.Errorf("unexpected flag: %s", args[i1])
			}
			// First non-flag token is the format string; the rest are its
			// positional arguments.
			opt.Format = args[i1]
			opt.Args = args[i1+1:]
			return opt, nil
		}
	}
	return opt, nil
}

// printHelp prints a helpful usage message to stdout.
func printHelp() {
	w := tabwriter.NewWriter(os.Stdout, 6, 1, 1, 0, 0)
	_, _ = fmt.Fprintln(w, "-h, -help\tPrints this help message and exits the application.")
	_, _ = fmt.Fprintln(w, "--h, --help")
	_, _ = fmt.Fprintln(w, "-o\tPath to the output file. Defaults to stdout.")
	_, _ = fmt.Fprintln(w, "-i\tPath to a batch job file, one \"format|arg,arg,...\" line per job. Defaults to stdin in batch mode.")
	_, _ = fmt.Fprintf(w, "-t\tWorker count for batch mode. Must be in range [1, %d]. Omit for single-job mode.\n", maxThreads)
	_, _ = fmt.Fprintln(w, "-v, -version\tPrints application version and exits the application.")
	_, _ = fmt.Fprintln(w, "--v, --version")
	_, _ = fmt.Fprintln(w, "-vb\tVerbose mode: print the rendered character count to stderr.")
	_ = w.Flush()
}
