// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"enigma/core/engine"
	"enigma/core/tables"
	"enigma/pkg/api"
)

// Document formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is a validated cipher configuration.
type Config struct {
	Path   string
	Format string
	Tables *tables.Tables
	Wheels engine.Wheels
}

// Engine returns a cipher engine over the configuration.
func (c *Config) Engine() *engine.Engine {
	return engine.New(c.Tables, c.Wheels)
}

// Report summarizes the configuration for `--check`.
func (c *Config) Report() api.CheckReportV1 {
	r := api.CheckReportV1{
		Config:     c.Path,
		Format:     c.Format,
		Lenient:    c.Tables.IsLenient(),
		Bijective:  c.Tables.IsBijective(),
		Involution: c.Tables.IsInvolution(),
		Wheels:     [3]int{c.Wheels.W1, c.Wheels.W2, c.Wheels.W3},
	}
	r.Warnings = c.Warnings()
	return r
}

// Warnings lists properties the cipher tolerates but that are probably
// mistakes in the configuration.
func (c *Config) Warnings() []string {
	var w []string
	if !c.Tables.IsInvolution() {
		w = append(w, "reflector_map is not an involution; ciphertext will not decrypt with the same configuration")
	}
	if !c.Tables.IsBijective() {
		w = append(w, "hash_map is not a bijection; some letters may fail to resolve")
	}
	return w
}

// FormatFor picks the document format from the file extension.
// Anything other than .yaml/.yml is read as JSON.
func FormatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and validates the configuration at path. Every failure is a
// *LoadError matching ErrLoad.
func Load(path string, opts ...tables.Option) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	cfg, err := Parse(data, FormatFor(path), opts...)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes and validates a configuration document held in memory.
func Parse(data []byte, format string, opts ...tables.Option) (*Config, error) {
	var (
		doc *document
		err error
	)
	switch format {
	case FormatJSON:
		doc, err = decodeJSON(data)
	case FormatYAML:
		doc, err = decodeYAML(data)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	if err := doc.complete(); err != nil {
		return nil, &LoadError{Err: err}
	}

	tab, err := tables.New(doc.hash, doc.reflector, opts...)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return &Config{
		Format: format,
		Tables: tab,
		Wheels: engine.Wheels{W1: doc.wheels[0], W2: doc.wheels[1], W3: doc.wheels[2]},
	}, nil
}

// document is a decoded configuration before table validation. The maps keep
// document order.
type document struct {
	hash      []tables.Entry
	reflector []tables.Pair
	wheels    []int
	seen      map[string]bool
}

func newDocument() *document { return &document{seen: map[string]bool{}} }

func (d *document) complete() error {
	for _, k := range []string{api.KeyHashMap, api.KeyReflectorMap, api.KeyWheels} {
		if !d.seen[k] {
			return fmt.Errorf("missing key %q", k)
		}
	}
	if len(d.wheels) != api.WheelCount {
		return fmt.Errorf("%s: want %d integers, got %d", api.KeyWheels, api.WheelCount, len(d.wheels))
	}
	return nil
}
