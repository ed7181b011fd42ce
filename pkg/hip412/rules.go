package hip412

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vvka-141/nftmeta/internal/checksum"
	"github.com/vvka-141/nftmeta/pkg/nftmeta"
)

var (
	hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	localePattern   = regexp.MustCompile(`^[a-z]{2}$`)
)

// localePlaceholder must appear in a localization uri.
const localePlaceholder = "{locale}"

// validateAttributes checks that each attribute value fits its display_type.
// Attributes without a display_type, or with shapes the schema already
// rejects, are skipped.
func validateAttributes(instance map[string]any) nftmeta.ValidationResult {
	result := nftmeta.NewValidationResult()

	attributes, ok := instance["attributes"].([]any)
	if !ok {
		return result
	}

	for i, raw := range attributes {
		attr, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		displayType, ok := attr["display_type"].(string)
		if !ok {
			continue
		}

		path := fmt.Sprintf("%s.attributes[%d]", rootPath, i)
		trait := fmt.Sprint(attr["trait_type"])
		value := attr["value"]

		switch displayType {
		case "percentage":
			n, isNum := value.(float64)
			if !isNum || n < 0 || n > 100 {
				result.AddError(IssueAttribute, path,
					fmt.Sprintf("Trait %s of type 'percentage' must be between [0-100], found %v", trait, value))
			}
		case "boost", "datetime", "date":
			if _, isNum := value.(float64); !isNum {
				result.AddError(IssueAttribute, path,
					fmt.Sprintf("Trait %s of type '%s' must be a number, found %v", trait, displayType, value))
			}
		case "boolean":
			if _, isBool := value.(bool); !isBool {
				result.AddError(IssueAttribute, path,
					fmt.Sprintf("Trait %s of type 'boolean' must be a boolean, found %v", trait, value))
			}
		case "color":
			s, isString := value.(string)
			if !isString || !hexColorPattern.MatchString(s) {
				result.AddError(IssueAttribute, path,
					fmt.Sprintf("Trait %s of type 'color' must be a hex color such as #ff0000, found %v", trait, value))
			}
		case "text":
			if _, isString := value.(string); !isString {
				result.AddError(IssueAttribute, path,
					fmt.Sprintf("Trait %s of type 'text' must be a string, found %v", trait, value))
			}
		}

		maxValue, hasMax := attr["max_value"]
		if !hasMax {
			continue
		}
		limit, isNum := maxValue.(float64)
		if !isNum {
			result.AddError(IssueAttribute, path,
				fmt.Sprintf("Trait %s max_value must be a number, found %v", trait, maxValue))
			continue
		}
		if n, ok := value.(float64); ok && n > limit {
			result.AddError(IssueAttribute, path,
				fmt.Sprintf("Trait %s value %v exceeds max_value %v", trait, n, limit))
		}
	}

	return result
}

// validateLocalization checks the localization block: the uri template and
// ISO 639-1 locale codes.
func validateLocalization(instance map[string]any) nftmeta.ValidationResult {
	result := nftmeta.NewValidationResult()

	localization, ok := instance["localization"].(map[string]any)
	if !ok {
		return result
	}
	path := rootPath + ".localization"

	if uri, ok := localization["uri"].(string); ok && !strings.Contains(uri, localePlaceholder) {
		result.AddError(IssueLocalization, path+".uri",
			fmt.Sprintf("uri must contain the %s placeholder, found %q", localePlaceholder, uri))
	}

	defaultLocale, hasDefault := localization["default"].(string)
	if hasDefault && !localePattern.MatchString(defaultLocale) {
		result.AddError(IssueLocalization, path+".default",
			fmt.Sprintf("default locale '%s' must be a two-letter lowercase ISO 639-1 code", defaultLocale))
	}

	locales, ok := localization["locales"].([]any)
	if !ok {
		return result
	}
	for i, raw := range locales {
		locale, ok := raw.(string)
		if !ok {
			continue
		}
		localePath := fmt.Sprintf("%s.locales[%d]", path, i)
		if !localePattern.MatchString(locale) {
			result.AddError(IssueLocalization, localePath,
				fmt.Sprintf("locale '%s' must be a two-letter lowercase ISO 639-1 code", locale))
		}
		if hasDefault && locale == defaultLocale {
			result.AddError(IssueLocalization, localePath,
				fmt.Sprintf("default locale '%s' must not be repeated in locales", locale))
		}
	}

	return result
}

// validateSHA256 checks every checksum the document declares.
func validateSHA256(instance map[string]any) nftmeta.ValidationResult {
	result := nftmeta.NewValidationResult()

	if sum, ok := instance["checksum"].(string); ok && !checksum.IsSHA256(sum) {
		result.AddError(IssueSHA256, rootPath+".checksum", "is not a valid SHA256 hash")
	}

	files, ok := instance["files"].([]any)
	if !ok {
		return result
	}
	for i, raw := range files {
		file, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if sum, ok := file["checksum"].(string); ok && !checksum.IsSHA256(sum) {
			result.AddError(IssueSHA256, fmt.Sprintf("%s.files[%d].checksum", rootPath, i), "is not a valid SHA256 hash")
		}
	}

	return result
}
