package config

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ontodot/pkg/errors"
)

// NameMode selects how graph nodes are turned into display names.
type NameMode int

const (
	// LocalName uses the part of the URI after its namespace.
	LocalName NameMode = iota
	// Prefixed replaces the namespace with its declared prefix.
	Prefixed
	// FullURI uses the URI unchanged.
	FullURI
)

// String returns the canonical configuration value of the mode.
func (m NameMode) String() string {
	switch m {
	case LocalName:
		return "localname"
	case Prefixed:
		return "prefixed"
	case FullURI:
		return "fulluri"
	default:
		return fmt.Sprintf("NameMode(%d)", int(m))
	}
}

// ParseNameMode parses a naming mode. Matching is case-insensitive and
// accepts the short aliases "prefix" and "uri".
func ParseNameMode(s string) (NameMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "localname", "local_name", "local":
		return LocalName, nil
	case "prefixed", "prefix":
		return Prefixed, nil
	case "fulluri", "full_uri", "uri":
		return FullURI, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidConfig, "invalid node naming mode: %q (must be one of: localname, prefixed, fulluri)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m NameMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *NameMode) UnmarshalText(text []byte) error {
	mode, err := ParseNameMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Config is the flat key/value configuration of a transformation.
type Config struct {
	NodeNames  NameMode `toml:"nodeNames"`
	Synthesize bool     `toml:"synthesizeObjectProperties"`

	RankDir   string `toml:"rankdir"`
	ImageSize string `toml:"imageSize"`

	ClassShape      string `toml:"classShape"`
	ClassColor      string `toml:"classColor"`
	IndividualShape string `toml:"individualShape"`
	IndividualColor string `toml:"individualColor"`
	LiteralShape    string `toml:"literalShape"`
	LiteralColor    string `toml:"literalColor"`
	ObjPropShape    string `toml:"objPropShape"`
	ObjPropColor    string `toml:"objPropColor"`
	DtPropShape     string `toml:"dtPropShape"`
	DtPropColor     string `toml:"dtPropColor"`

	// Prefixes are added to the graph's own prefix declarations.
	Prefixes map[string]string `toml:"prefixes,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		NodeNames:       LocalName,
		Synthesize:      false,
		RankDir:         "LR",
		ImageSize:       "1501",
		ClassShape:      "ellipse",
		ClassColor:      "orange",
		IndividualShape: "box",
		IndividualColor: "black",
		LiteralShape:    "rectangle",
		LiteralColor:    "blue",
		ObjPropShape:    "octagon",
		ObjPropColor:    "blue",
		DtPropShape:     "doubleoctagon",
		DtPropColor:     "green",
	}
}

// Load reads a TOML configuration file on top of [Default].
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data on top of [Default] and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validRankDirs is the set of Graphviz rank directions.
var validRankDirs = map[string]bool{"TB": true, "LR": true, "BT": true, "RL": true}

// Validate checks that every style key is set and that the prefix
// declarations are well formed.
func (c Config) Validate() error {
	switch c.NodeNames {
	case LocalName, Prefixed, FullURI:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid node naming mode: %d", int(c.NodeNames))
	}
	if !validRankDirs[c.RankDir] {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid rankdir: %q (must be one of: TB, LR, BT, RL)", c.RankDir)
	}
	for _, key := range styleKeys {
		if v, _ := c.Key(key); strings.TrimSpace(v) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "%s cannot be empty", key)
		}
	}
	for p, ns := range c.Prefixes {
		if err := errors.ValidatePrefix(p); err != nil {
			return err
		}
		if err := errors.ValidateNamespace(ns); err != nil {
			return err
		}
	}
	return nil
}

// styleKeys lists the layout and style keys in file order.
var styleKeys = []string{
	"rankdir", "imageSize",
	"classShape", "classColor",
	"individualShape", "individualColor",
	"literalShape", "literalColor",
	"objPropShape", "objPropColor",
	"dtPropShape", "dtPropColor",
}

// Key returns a style or layout value by its configuration key.
func (c Config) Key(name string) (string, bool) {
	switch name {
	case "rankdir":
		return c.RankDir, true
	case "imageSize":
		return c.ImageSize, true
	case "classShape":
		return c.ClassShape, true
	case "classColor":
		return c.ClassColor, true
	case "individualShape":
		return c.IndividualShape, true
	case "individualColor":
		return c.IndividualColor, true
	case "literalShape":
		return c.LiteralShape, true
	case "literalColor":
		return c.LiteralColor, true
	case "objPropShape":
		return c.ObjPropShape, true
	case "objPropColor":
		return c.ObjPropColor, true
	case "dtPropShape":
		return c.DtPropShape, true
	case "dtPropColor":
		return c.DtPropColor, true
	}
	return "", false
}

// WithPrefix returns a copy of c with prefix bound to namespace.
func (c Config) WithPrefix(prefix, namespace string) Config {
	prefixes := make(map[string]string, len(c.Prefixes)+1)
	for p, ns := range c.Prefixes {
		prefixes[p] = ns
	}
	prefixes[prefix] = namespace
	c.Prefixes = prefixes
	return c
}

// Encode writes c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return buf.Bytes(), nil
}

// String lists the settings one per line, for debug logs.
func (c Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "nodeNames=%s\n", c.NodeNames)
	fmt.Fprintf(&b, "synthesizeObjectProperties=%t\n", c.Synthesize)
	for _, key := range styleKeys {
		v, _ := c.Key(key)
		fmt.Fprintf(&b, "%s=%s\n", key, v)
	}
	prefixes := make([]string, 0, len(c.Prefixes))
	for p := range c.Prefixes {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		fmt.Fprintf(&b, "prefix %s=%s\n", p, c.Prefixes[p])
	}
	return b.String()
}
