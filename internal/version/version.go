// ABOUTME: Version information for the chime generator
// ABOUTME: Written into the software and artist fields of generated assets
package version

const (
	// Version is the generator version
	Version = "0.1.0"

	// Product is the generator name
	Product = "chime-go"

	// Manufacturer identifies who builds the generator
	Manufacturer = "Resonate"
)

// Software returns the string recorded in asset metadata
func Software() string {
	return Product + " " + Version
}
