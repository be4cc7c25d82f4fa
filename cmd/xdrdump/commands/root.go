// Package commands implements the CLI commands for xdrdump.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Flags.
	dumpLayout    string
	dumpVerbose   bool
	dumpMaxOpaque uint32
	logFormat     string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xdrdump [file]",
	Short: "Decode and inspect XDR-encoded byte streams",
	Long: `xdrdump decodes an XDR (RFC 4506) byte stream against a field layout
you supply and prints every decoded value with its byte offset.

XDR carries no type information on the wire, so the layout must describe
the stream field by field as a comma-separated type list:

  uint, int, enum, bool, hyper, uhyper, float, double,
  string, opaque, fopaque:<n>, array:<type>, list:<type>

Reads from the named file, or from stdin when the argument is omitted or "-".

Examples:
  # A mount reply: status, file handle, auth flavor array
  xdrdump --layout enum,opaque,array:int reply.bin

  # Inspect a stream from a pipe
  tcpflow -c port 2049 | xdrdump --layout uint,uint,string -

  # Fixed-size opaque data of 16 bytes
  xdrdump --layout fopaque:16,hyper trace.bin`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runDump,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&dumpLayout, "layout", "", "comma-separated field types describing the stream (required)")
	rootCmd.Flags().BoolVarP(&dumpVerbose, "verbose", "v", false, "log every decoded field to stderr")
	rootCmd.Flags().Uint32Var(&dumpMaxOpaque, "max-opaque", 1<<20, "reject length-prefixed items larger than this many bytes (0 = no limit)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "text", "log output format (text or json)")
	_ = rootCmd.MarkFlagRequired("layout")

	rootCmd.AddCommand(versionCmd)
}
