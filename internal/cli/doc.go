// Parses flags and configures logging for the relkit release tool.
//
// The tool accepts the following flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//
// Flags override build-time defaults set via linker flags. After parsing,
// the global logger is reconfigured to reflect the final level before the
// selected subcommand runs. Running relkit with no subcommand is
// equivalent to 'relkit build'.
package cli
