package nftmeta

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // All documents validated without errors
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration
	ExitValidationFailed = 11 // At least one document has validation errors
	ExitReadError        = 12 // A file or directory could not be read
	ExitParseError       = 13 // A file did not contain valid JSON
)

const (
	// JSONExtension is the only file extension the scanner picks up. Matching is case-sensitive.
	JSONExtension = ".json"

	// OutputFormatText renders a human-readable report.
	OutputFormatText = "text"

	// OutputFormatJSON renders the report as indented JSON.
	OutputFormatJSON = "json"

	// OutputFormatYAML renders the report as YAML.
	OutputFormatYAML = "yaml"
)
