package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/RemiKalbe/unicode-explorer/consts"
)

var (
	// HTTPAddr is the listen address of the API server.
	HTTPAddr = consts.DefaultHTTPAddr

	// DataDir holds the per-block name files produced by ucd-builder.
	DataDir = consts.DefaultDataDir

	// PageLimit caps the code point window returned by the block
	// detail endpoint in a single response.
	PageLimit = 512

	Debug = false
)

type fileConfig struct {
	HTTPAddr  string `yaml:"http_addr"`
	DataDir   string `yaml:"data_dir"`
	PageLimit int    `yaml:"page_limit"`
	Debug     bool   `yaml:"debug"`
}

// Load overlays settings from a YAML file onto the package defaults.
// Absent keys keep their current values.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	fc := fileConfig{}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	if fc.HTTPAddr != "" {
		HTTPAddr = fc.HTTPAddr
	}
	if fc.DataDir != "" {
		DataDir = fc.DataDir
	}
	if fc.PageLimit > 0 {
		PageLimit = fc.PageLimit
	}
	if fc.Debug {
		Debug = true
	}
	return nil
}
