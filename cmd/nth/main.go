// Command nth converts numbers in text between decimal and English word
// spellings. It reads lines from standard input and writes the converted
// lines to standard output.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gookit/color"
	"github.com/k0kubun/pp"
	"github.com/rs/zerolog"
	"github.com/tidwall/pretty"

	"github.com/nthalize/nth"
)

var CLI struct {
	Format string `arg:"" enum:"c,C,o,O" help:"Output format: c decimal cardinal, C word cardinal, o decimal ordinal, O word ordinal"`

	LoosePeriods  bool   `name:"loose-periods" short:"P" help:"Accept period words without a multiplier as proper"`
	LooseHundreds bool   `name:"loose-hundreds" short:"H" help:"Accept a bare HUNDRED as one hundred"`
	And           string `name:"and" enum:"ignore,join,deny" default:"ignore" help:"AND joiner policy"`
	NoBounds      bool   `name:"no-bounds" short:"B" help:"Do not end a number at its first ordinal word"`
	NoCardinal    bool   `name:"no-cardinal" short:"C" help:"Leave cardinals as literal text"`
	NoOrdinal     bool   `name:"no-ordinal" short:"O" help:"Leave ordinals as literal text"`
	NoImproper    bool   `name:"no-improper" help:"Leave improperly grouped numbers as literal text"`
	NoDigits      bool   `name:"no-digits" help:"Keep plain digit tokens out of numeric phrases"`
	NoRepair      bool   `name:"no-repair" help:"Do not fix wrong digit-ordinal suffixes in the output"`
	Config        string `name:"config" help:"Options file (YAML); overridden by other flags" type:"path"`
	JSON          bool   `name:"json" help:"Emit a per-line span report as JSON instead of converted text"`
	Verbose       int    `name:"verbose" short:"v" type:"counter" help:"Increase log verbosity (-v info, -vv debug)"`
}

func buildOptions() (nth.Options, error) {
	opts := nth.DefaultOptions()

	path := CLI.Config
	if path == "" {
		p, err := nth.DefaultOptionsPath()
		if err == nil {
			if _, statErr := os.Stat(p); statErr == nil {
				path = p
			}
		}
	}
	if path != "" {
		var err error
		opts, err = nth.LoadOptions(path)
		if err != nil {
			return opts, err
		}
	}

	format, err := nth.ParseFormat(CLI.Format)
	if err != nil {
		return opts, err
	}
	opts.Format = format

	opts.StrictPeriods = opts.StrictPeriods && !CLI.LoosePeriods
	opts.StrictHundreds = opts.StrictHundreds && !CLI.LooseHundreds
	if policy, err := nth.ParseAndPolicy(CLI.And); err == nil {
		opts.AndPolicy = policy
	}
	if CLI.NoBounds {
		opts.OrdinalBounds = false
	}
	if CLI.NoCardinal {
		opts.AcceptCardinal = false
	}
	if CLI.NoOrdinal {
		opts.AcceptOrdinal = false
	}
	if CLI.NoImproper {
		opts.AcceptCardinalImproper = false
		opts.AcceptOrdinalImproper = false
	}
	if CLI.NoDigits {
		opts.TakeDigits = false
	}
	if CLI.NoRepair {
		opts.RepairSuffixes = false
	}
	return opts, nil
}

func run() error {
	switch CLI.Verbose {
	case 0:
	case 1:
		nth.Logger = nth.ConsoleLogger(zerolog.InfoLevel)
	default:
		nth.Logger = nth.ConsoleLogger(zerolog.DebugLevel)
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}
	if CLI.Verbose >= 2 {
		pp.Fprintln(os.Stderr, opts)
	}

	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for in.Scan() {
		line := in.Text()
		if CLI.JSON {
			report, err := json.Marshal(nth.ScanNumbers(line, opts))
			if err != nil {
				return err
			}
			out.Write(pretty.Pretty(report))
		} else {
			fmt.Fprintln(out, nth.Convert(line, opts))
		}
	}
	return in.Err()
}

func main() {
	kong.Parse(&CLI,
		kong.Name("nth"),
		kong.Description("Convert numbers in text between decimal and English word forms"),
		kong.UsageOnError(),
	)
	if err := run(); err != nil {
		color.Redln("nth:", err)
		os.Exit(1)
	}
}
