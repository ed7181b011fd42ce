package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/nftmeta/internal/files/scanner"
	"github.com/vvka-141/nftmeta/internal/logging"
)

var scanCmd = &cobra.Command{
	Use:   "scan <directory>",
	Short: "List the .json files of a directory",
	Long: `Scan lists the entries of a directory that carry the .json extension, one per
line, in the order the filesystem returns them. Subdirectories are not entered
and the extension match is case-sensitive.

Examples:
  nftmeta scan ./metadata
  nftmeta scan ./metadata -v`,
	Args: RequireDirectory,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), getVerboseFlag(cmd))

	names, err := scanner.NewScanner(logger).JSONFilesForDir(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}
