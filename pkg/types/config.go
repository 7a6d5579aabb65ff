package types

import "errors"

// Config holds rendering preferences loaded from config.yaml.
type Config struct {
	MaxLines  int    `json:"max_lines" yaml:"max_lines" mapstructure:"max_lines"`
	ShowIDs   bool   `json:"show_ids" yaml:"show_ids" mapstructure:"show_ids"`
	LineStyle string `json:"line_style" yaml:"line_style" mapstructure:"line_style"`
	Color     bool   `json:"color" yaml:"color" mapstructure:"color"`
}

// Supported line styles.
const (
	LineStyleASCII   = "ascii"
	LineStyleASCIIEx = "ascii-ex"
	LineStyleASCIIEm = "ascii-em"
)

// DefaultLineStyle is used when the configuration leaves line_style empty.
const DefaultLineStyle = LineStyleASCIIEx

// Config validation errors.
var (
	ErrLineStyleUnknown = errors.New("unknown line style")
	ErrMaxLinesInvalid  = errors.New("max lines must not be negative")
)

// knownLineStyles lists the line styles that Validate accepts.
var knownLineStyles = map[string]bool{
	LineStyleASCII:   true,
	LineStyleASCIIEx: true,
	LineStyleASCIIEm: true,
}

// DefaultConfig returns the configuration used when no config.yaml exists.
func DefaultConfig() Config {
	return Config{LineStyle: DefaultLineStyle}
}

// Validate checks that the Config is well-formed. An empty LineStyle is
// accepted and means DefaultLineStyle.
func (c Config) Validate() error {
	if c.MaxLines < 0 {
		return ErrMaxLinesInvalid
	}
	if c.LineStyle != "" && !knownLineStyles[c.LineStyle] {
		return ErrLineStyleUnknown
	}
	return nil
}
