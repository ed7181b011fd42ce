package hip412

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// DefaultVersion is the schema version used when a caller asks for a version
// that is not registered.
const DefaultVersion = "2.0.0"

//go:embed schemas/*.json
var schemaFiles embed.FS

var schemaFileByVersion = map[string]string{
	"2.0.0": "schemas/hip412-2.0.0.json",
}

var compiledSchemas = sync.OnceValues(func() (map[string]*gojsonschema.Schema, error) {
	compiled := make(map[string]*gojsonschema.Schema, len(schemaFileByVersion))
	for version, file := range schemaFileByVersion {
		data, err := schemaFiles.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("hip412: read schema %s: %w", version, err)
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
		if err != nil {
			return nil, fmt.Errorf("hip412: compile schema %s: %w", version, err)
		}
		compiled[version] = schema
	}
	return compiled, nil
})

// Versions returns the registered schema versions in ascending order.
func Versions() []string {
	versions := make([]string, 0, len(schemaFileByVersion))
	for v := range schemaFileByVersion {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}

// IsKnownVersion reports whether version has a registered schema.
func IsKnownVersion(version string) bool {
	_, ok := schemaFileByVersion[version]
	return ok
}

// ResolveVersion maps version to the schema version that will actually be
// used. Unknown versions resolve to DefaultVersion.
func ResolveVersion(version string) string {
	if IsKnownVersion(version) {
		return version
	}
	return DefaultVersion
}

// SchemaFor returns the raw JSON schema used for version.
func SchemaFor(version string) ([]byte, error) {
	return schemaFiles.ReadFile(schemaFileByVersion[ResolveVersion(version)])
}

func compiledSchemaFor(version string) (*gojsonschema.Schema, error) {
	schemas, err := compiledSchemas()
	if err != nil {
		return nil, err
	}
	return schemas[ResolveVersion(version)], nil
}
