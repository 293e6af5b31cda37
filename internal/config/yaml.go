package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// EngineSettings are the construction parameters for a symspell.SymSpell
// engine plus where its dictionary lives, as they appear under the
// "engine:" key of a config file.
type EngineSettings struct {
	MaxDictionaryEditDistance int    `mapstructure:"max_dictionary_edit_distance"`
	PrefixLength              int    `mapstructure:"prefix_length"`
	CountThreshold            int64  `mapstructure:"count_threshold"`
	CompactLevel              int    `mapstructure:"compact_level"`
	DictionaryPath            string `mapstructure:"dictionary_path"`
	TermIndex                 int    `mapstructure:"term_index"`
	CountIndex                int    `mapstructure:"count_index"`
	IgnoreNonWords            bool   `mapstructure:"ignore_non_words"`
}

// ServerSettings configure the HTTP transport, under "server:".
type ServerSettings struct {
	Addr   string `mapstructure:"addr"`
	APIKey string `mapstructure:"api_key"`
}

// FileConfig is the top-level shape of a checked-in YAML config file, an
// alternative to configuring purely from the environment.
type FileConfig struct {
	Engine EngineSettings `mapstructure:"engine"`
	Server ServerSettings `mapstructure:"server"`
}

// LoadFileConfig reads a YAML document at path and decodes it into a
// FileConfig. The document is parsed into a generic map first, then
// decoded with mapstructure rather than yaml's own struct tags, so the
// same decode step can later be pointed at configuration sourced from
// somewhere other than a file (an etcd value, a CLI flag bag) without
// touching the YAML parser.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg := &FileConfig{
		Engine: EngineSettings{
			MaxDictionaryEditDistance: 2,
			PrefixLength:              7,
			CountThreshold:            1,
			CompactLevel:              5,
			TermIndex:                 0,
			CountIndex:                1,
		},
		Server: ServerSettings{Addr: ":8080"},
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("building config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}
