package hip412

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/vvka-141/nftmeta/pkg/nftmeta"
)

// Issue types reported by Validate.
const (
	IssueSchema       = "schema"
	IssueAttribute    = "attribute"
	IssueLocalization = "localization"
	IssueSHA256       = "SHA256"
)

// rootPath names the document itself in issue paths.
const rootPath = "instance"

// Validate checks document against the HIP412 schema for version and the
// rules the schema cannot express (attribute value types, localization
// codes, checksum format). Unknown versions validate against DefaultVersion.
//
// document may be anything encoding/json can marshal; it is normalized to
// its decoded JSON form before any check runs.
func Validate(document any, version string) nftmeta.ValidationResult {
	result := nftmeta.NewValidationResult()

	normalized, err := normalize(document)
	if err != nil {
		result.AddError(IssueSchema, rootPath, fmt.Sprintf("is not a JSON value: %v", err))
		return result
	}

	result.Merge(validateSchema(normalized, version))

	instance, ok := normalized.(map[string]any)
	if !ok {
		return result
	}

	result.Merge(validateAttributes(instance))
	result.Merge(validateLocalization(instance))
	result.Merge(validateSHA256(instance))

	return result
}

func normalize(document any) (any, error) {
	raw, err := json.Marshal(document)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// validateSchema runs the JSON schema. Additional properties are tolerated
// and surface as warnings; every other violation is an error.
func validateSchema(instance any, version string) nftmeta.ValidationResult {
	result := nftmeta.NewValidationResult()

	schema, err := compiledSchemaFor(version)
	if err != nil {
		result.AddError(IssueSchema, rootPath, err.Error())
		return result
	}

	res, err := schema.Validate(gojsonschema.NewGoLoader(instance))
	if err != nil {
		result.AddError(IssueSchema, rootPath, err.Error())
		return result
	}

	for _, e := range res.Errors() {
		path := issuePath(e)
		msg := schemaMessage(e)
		if e.Type() == "additional_property_not_allowed" {
			result.AddWarning(IssueSchema, path, msg)
			continue
		}
		result.AddError(IssueSchema, path, msg)
	}

	sortIssues(result.Errors)
	sortIssues(result.Warnings)
	return result
}

// sortIssues orders issues by path, then message. gojsonschema reports in
// map iteration order.
func sortIssues(issues []nftmeta.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Path != issues[j].Path {
			return issues[i].Path < issues[j].Path
		}
		return issues[i].Msg < issues[j].Msg
	})
}

// schemaMessage renders a schema violation relative to the offending value,
// e.g. "requires property 'image'".
func schemaMessage(e gojsonschema.ResultError) string {
	details := e.Details()
	switch e.Type() {
	case "required":
		return fmt.Sprintf("requires property '%v'", details["property"])
	case "additional_property_not_allowed":
		return fmt.Sprintf("is not allowed to have the additional property '%v'", details["property"])
	case "invalid_type":
		return fmt.Sprintf("is not of a type(s) %v", details["expected"])
	case "enum":
		return fmt.Sprintf("is not one of enum values: %v", details["allowed"])
	case "pattern":
		return fmt.Sprintf("does not match pattern %q", details["pattern"])
	default:
		return e.Description()
	}
}

// issuePath converts a gojsonschema context such as "(root).attributes.0"
// into "instance.attributes[0]".
func issuePath(e gojsonschema.ResultError) string {
	var segments []string
	if ctx := e.Context(); ctx != nil {
		segments = strings.Split(ctx.String(), ".")
	}
	if len(segments) > 0 && segments[0] == "(root)" {
		segments = segments[1:]
	}

	// Some gojsonschema versions put the missing property itself on the
	// context; the path should name the object that lacks it.
	if e.Type() == "required" && len(segments) > 0 {
		if prop, ok := e.Details()["property"].(string); ok && segments[len(segments)-1] == prop {
			segments = segments[:len(segments)-1]
		}
	}

	var b strings.Builder
	b.WriteString(rootPath)
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + seg + "]")
		} else {
			b.WriteString("." + seg)
		}
	}
	return b.String()
}
