package catalogue

import (
	_ "embed"

	"github.com/rs/zerolog"
)

//go:embed blocks.toml
var defaultBlocksTOML []byte

// Default loads the catalogue bundled with this module. Callers needing
// a custom catalogue should use LoadFile/Load instead.
func Default(logger *zerolog.Logger) (*Catalogue, error) {
	return LoadBytes(defaultBlocksTOML, logger)
}
