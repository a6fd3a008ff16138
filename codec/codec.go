// Package codec centralizes record serialization.
//
// The engine itself persists nothing; codecs serve the edges: record files
// supplied by hosts, machine-readable CLI output, and test fixtures.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when nothing selects one explicitly.
var Default Codec = GoJSON{}

// ByName returns a built-in codec by its stable name, for surfaces that
// select the codec from configuration.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}
