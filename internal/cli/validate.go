package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/nftmeta/internal/config"
	"github.com/vvka-141/nftmeta/internal/files/loader"
	"github.com/vvka-141/nftmeta/internal/files/scanner"
	"github.com/vvka-141/nftmeta/internal/logging"
	"github.com/vvka-141/nftmeta/internal/report"
	"github.com/vvka-141/nftmeta/pkg/hip412"
	"github.com/vvka-141/nftmeta/pkg/nftmeta"
)

var validateCmd = &cobra.Command{
	Use:   "validate <directory>",
	Short: "Validate every .json file of a directory",
	Long: `Validate scans a directory for .json files, parses each one and validates it
against the HIP412 schema.

By default the first unreadable or malformed file aborts the run. With
--keep-going every file is reported, including the ones that failed to load.

Configuration precedence: flag > environment > nftmeta.yaml > default.
  NFTMETA_VERSION            schema version (unknown versions use the default)
  NFTMETA_FORMAT             text, json or yaml
  NFTMETA_FAIL_ON_WARNINGS   treat warnings as failures
Environment variables may also come from a .env file in the working directory.

Examples:
  nftmeta validate ./metadata
  nftmeta validate ./metadata --format json
  nftmeta validate ./metadata --keep-going --fail-on-warnings`,
	Args: RequireDirectory,
	RunE: runValidate,
}

type validateFlagValues struct {
	schemaVersion  string
	format         string
	failOnWarnings bool
	keepGoing      bool
}

var validateFlags validateFlagValues

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFlags.schemaVersion, "version", "",
		"HIP412 schema version (default "+hip412.DefaultVersion+", or $NFTMETA_VERSION)")
	validateCmd.Flags().StringVarP(&validateFlags.format, "format", "f", "",
		"Output format: text|json|yaml (default text, or $NFTMETA_FORMAT)")
	validateCmd.Flags().BoolVar(&validateFlags.failOnWarnings, "fail-on-warnings", false,
		"Exit non-zero when any document has warnings")
	validateCmd.Flags().BoolVar(&validateFlags.keepGoing, "keep-going", false,
		"Report unreadable or malformed files instead of aborting")
}

// buildValidateConfig layers nftmeta.yaml, the environment and CLI flags.
func buildValidateConfig(cmd *cobra.Command, dir string, lookup func(string) (string, bool)) (*config.ProjectConfig, error) {
	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("version") {
		cfg.Version = validateFlags.schemaVersion
	}
	if flags.Changed("format") {
		cfg.Format = validateFlags.format
	}
	if flags.Changed("fail-on-warnings") {
		cfg.FailOnWarnings = validateFlags.failOnWarnings
	}
	if flags.Changed("keep-going") {
		cfg.KeepGoing = validateFlags.keepGoing
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir := args[0]
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), getVerboseFlag(cmd))

	_ = godotenv.Load()

	cfg, err := buildValidateConfig(cmd, dir, os.LookupEnv)
	if err != nil {
		return err
	}

	schemaVersion := hip412.ResolveVersion(cfg.Version)
	if cfg.Version != "" && cfg.Version != schemaVersion {
		logger.Verbose("Unknown schema version %q, using %s", cfg.Version, schemaVersion)
	}

	filenames, err := scanner.NewScanner(logger).JSONFilesForDir(dir)
	if err != nil {
		return err
	}

	rep, err := validateFiles(dir, filenames, schemaVersion, cfg.KeepGoing, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.Render(out, rep, cfg.Format, styleFor(out)); err != nil {
		return err
	}

	if rep.Failed(cfg.FailOnWarnings) {
		return fmt.Errorf("%w: %d invalid, %d unreadable, %d warning(s) in %d document(s)",
			nftmeta.ErrValidationFailed, rep.Summary.Invalid, rep.Summary.Unreadable,
			rep.Summary.Warnings, rep.Summary.Documents)
	}
	return nil
}

func validateFiles(dir string, filenames []string, schemaVersion string, keepGoing bool, logger nftmeta.Logger) (*report.Report, error) {
	rep := report.New(dir, schemaVersion)
	ld := loader.NewLoader()

	if keepGoing {
		for _, res := range ld.ReadFilesCollect(dir, filenames) {
			if !res.OK() {
				logger.Error("%v", res.Err)
				rep.AddReadError(res.Filename, res.Err)
				continue
			}
			logger.Verbose("Validating %s (sha256 %s)", res.Filename, res.Checksum)
			rep.Add(res.Filename, res.Checksum, hip412.Validate(res.Filedata, schemaVersion))
		}
		return rep, nil
	}

	records, err := ld.ReadFiles(dir, filenames)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		logger.Verbose("Validating %s", rec.Filename)
		rep.Add(rec.Filename, "", hip412.Validate(rec.Filedata, schemaVersion))
	}
	return rep, nil
}

// styleFor enables colors only for terminals.
func styleFor(out any) bool {
	f, ok := out.(*os.File)
	return ok && report.ShouldStyle(f)
}
