// Package hip412 validates NFT metadata documents against the HIP412 token
// metadata standard.
//
// Validation runs in stages and collects every finding rather than stopping
// at the first:
//
//   - schema: the versioned JSON schema (required fields, types, mime type
//     pattern). Unknown top-level or nested properties are reported as
//     warnings, everything else as errors.
//   - attribute: attribute values must fit their display_type.
//   - localization: the uri must carry a {locale} placeholder and locale
//     codes must be ISO 639-1.
//   - SHA256: declared checksums must be hex SHA-256 digests.
//
// # Usage
//
//	result := hip412.Validate(document, hip412.DefaultVersion)
//	for _, issue := range result.Errors {
//	    fmt.Println(issue.Type, issue.Path, issue.Msg)
//	}
package hip412
