package catalogue

import (
	"bytes"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// fileFormat is the viper config type for catalogue files: a declarative
// TOML document rather than the "env" format used for app configuration.
const fileFormat = "toml"

// source is the on-disk shape of a catalogue file: a top-level "blocks"
// table keyed by canonical block name.
type source struct {
	Blocks map[string]BlockSpec `mapstructure:"blocks"`
}

// Load parses r (a TOML catalogue document) and returns a validated,
// immutable Catalogue. logger may be nil, in which case a no-op zerolog
// logger is used (callers pay nothing unless they opt into logging).
func Load(r io.Reader, logger *zerolog.Logger) (*Catalogue, error) {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	v := viper.New()
	v.SetConfigType(fileFormat)
	if err := v.ReadConfig(r); err != nil {
		return nil, NewConfigError(IssueDecode, err)
	}

	var src source
	if err := v.Unmarshal(&src); err != nil {
		return nil, NewConfigError(IssueDecode, err)
	}

	logger.Debug().Int("blocks", len(src.Blocks)).Msg("catalogue decoded")

	cat, err := build(src)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("aliases", len(cat.byAlias)).Msg("catalogue validated")
	return cat, nil
}

// LoadFile opens path and loads it as a catalogue.
func LoadFile(path string, logger *zerolog.Logger) (*Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewConfigError(IssueDecode, err)
	}
	defer f.Close()
	return Load(f, logger)
}

// LoadBytes loads a catalogue from an in-memory TOML document, used by
// the embedded default catalogue and by tests.
func LoadBytes(data []byte, logger *zerolog.Logger) (*Catalogue, error) {
	return Load(bytes.NewReader(data), logger)
}
