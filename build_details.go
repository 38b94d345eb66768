package schemacodec

import "fmt"

var (
	// version is set via ldflags during release builds.
	// For development builds, this will show "dev"
	version = "dev"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// ImplementationName returns the module name and version as "schemacodec/<version>".
func ImplementationName() string {
	return fmt.Sprintf("schemacodec/%s", version)
}
