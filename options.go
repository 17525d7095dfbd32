package nth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AndPolicy controls how the word "AND" behaves inside numeric phrases.
type AndPolicy int

const (
	// AndIgnore treats AND as a transparent joiner anywhere in a phrase.
	AndIgnore AndPolicy = iota
	// AndJoinOnly accepts AND only directly after a hundred or period
	// word; anywhere else it invalidates the whole phrase.
	AndJoinOnly
	// AndDeny treats AND as ordinary text that splits phrases.
	AndDeny
)

func (a AndPolicy) String() string {
	return map[AndPolicy]string{
		AndIgnore:   "ignore",
		AndJoinOnly: "join",
		AndDeny:     "deny",
	}[a]
}

// ParseAndPolicy converts a policy name ("ignore", "join" or "deny").
func ParseAndPolicy(s string) (AndPolicy, error) {
	switch strings.ToLower(s) {
	case "ignore":
		return AndIgnore, nil
	case "join":
		return AndJoinOnly, nil
	case "deny":
		return AndDeny, nil
	}
	return AndIgnore, fmt.Errorf("unknown and-policy %q", s)
}

// UnmarshalYAML accepts the policy's string name in config files.
func (a *AndPolicy) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	p, err := ParseAndPolicy(s)
	if err != nil {
		return err
	}
	*a = p
	return nil
}

func (a AndPolicy) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// ParseFormat converts a single-letter format key as used by the CLI:
// c (decimal cardinal), C (word cardinal), o (decimal ordinal),
// O (word ordinal).
func ParseFormat(s string) (Format, error) {
	switch s {
	case "c":
		return CardinalDecimal, nil
	case "C":
		return CardinalWord, nil
	case "o":
		return OrdinalDecimal, nil
	case "O":
		return OrdinalWord, nil
	}
	return CardinalDecimal, fmt.Errorf("unknown format %q (want c, C, o or O)", s)
}

// UnmarshalYAML accepts the single-letter format key in config files.
func (f *Format) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Format) MarshalYAML() (interface{}, error) {
	return map[Format]string{
		CardinalDecimal: "c",
		CardinalWord:    "C",
		OrdinalDecimal:  "o",
		OrdinalWord:     "O",
	}[f], nil
}

// Options configures conversion. The zero value is not useful; start from
// DefaultOptions and adjust.
type Options struct {
	// Format selects the output representation.
	Format Format `yaml:"format"`

	// StrictPeriods marks a period word with no preceding multiplier as
	// improper; StrictHundreds drops a bare hundred word entirely.
	StrictPeriods  bool `yaml:"strict_periods"`
	StrictHundreds bool `yaml:"strict_hundreds"`

	// AndPolicy controls AND joining inside phrases.
	AndPolicy AndPolicy `yaml:"and_policy"`

	// OrdinalBounds ends a number at its first ordinal word, so one span
	// can yield several numbers ("THIRD FOURTH" is two).
	OrdinalBounds bool `yaml:"ordinal_bounds"`

	// TakeDigits lets plain digit tokens join numeric spans.
	TakeDigits bool `yaml:"take_digits"`

	// Accept gates: parsed numbers of a disabled kind leave their span
	// as literal text.
	AcceptCardinal         bool `yaml:"accept_cardinal"`
	AcceptOrdinal          bool `yaml:"accept_ordinal"`
	AcceptCardinalImproper bool `yaml:"accept_cardinal_improper"`
	AcceptOrdinalImproper  bool `yaml:"accept_ordinal_improper"`

	// RepairSuffixes fixes wrong digit-ordinal suffixes in the output,
	// turning "101th" into "101st".
	RepairSuffixes bool `yaml:"repair_suffixes"`
}

// DefaultOptions returns the standard configuration: strict grouping,
// AND ignored, every number kind accepted, decimal cardinal output.
func DefaultOptions() Options {
	return Options{
		Format:                 CardinalDecimal,
		StrictPeriods:          true,
		StrictHundreds:         true,
		AndPolicy:              AndIgnore,
		OrdinalBounds:          true,
		TakeDigits:             true,
		AcceptCardinal:         true,
		AcceptOrdinal:          true,
		AcceptCardinalImproper: true,
		AcceptOrdinalImproper:  true,
		RepairSuffixes:         true,
	}
}

// LoadOptions reads a YAML options file. Keys not present keep their
// default values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing options file %s: %w", path, err)
	}
	Logger.Debug().Str("path", path).Msg("loaded options file")
	return opts, nil
}

// DefaultOptionsPath returns the conventional per-user options file
// location under the XDG config directory.
func DefaultOptionsPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("nth", "options.yaml"))
}
