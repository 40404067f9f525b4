package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dhamidi/chrono/culture"
	"github.com/dhamidi/chrono/pattern"
	"github.com/dhamidi/chrono/temporal"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("chrono")

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "chrono",
		Short: "Format and parse dates, times and durations with text patterns",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				commonlog.Configure(2, nil)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose diagnostics")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newCulturesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// typeOps are the operations the commands need, with the value type erased.
type typeOps struct {
	check    func(patternText string, c *culture.Culture) error
	parse    func(patternText, text string, c *culture.Culture) (string, error)
	reformat func(patternText, value string, c *culture.Culture) (string, error)
}

// opsFor adapts one pattern family to typeOps. The canonical pattern reads
// the value argument of the format command; its name is only used in error
// messages.
func opsFor[T fmt.Stringer](compile func(string, *culture.Culture) (pattern.Pattern[T], error),
	canonical func() pattern.Pattern[T], canonicalName string) typeOps {
	return typeOps{
		check: func(patternText string, c *culture.Culture) error {
			_, err := compile(patternText, c)
			return err
		},
		parse: func(patternText, text string, c *culture.Culture) (string, error) {
			p, err := compile(patternText, c)
			if err != nil {
				return "", err
			}
			value, err := p.Parse(text).Value()
			if err != nil {
				return "", err
			}
			return value.String(), nil
		},
		reformat: func(patternText, value string, c *culture.Culture) (string, error) {
			parsed, err := canonical().Parse(value).Value()
			if err != nil {
				return "", fmt.Errorf("parse value with the %s pattern: %w", canonicalName, err)
			}
			p, err := compile(patternText, c)
			if err != nil {
				return "", err
			}
			return p.Format(parsed), nil
		},
	}
}

var patternTypes = map[string]typeOps{
	"duration": opsFor(
		func(t string, c *culture.Culture) (pattern.Pattern[temporal.Duration], error) {
			return pattern.NewDurationPattern(t, c)
		},
		func() pattern.Pattern[temporal.Duration] { return pattern.DurationRoundtrip() },
		"round-trip"),
	"instant": opsFor(
		func(t string, c *culture.Culture) (pattern.Pattern[temporal.Instant], error) {
			return pattern.NewInstantPattern(t, c)
		},
		func() pattern.Pattern[temporal.Instant] { return pattern.InstantGeneral() },
		"general"),
	"local-date": opsFor(
		func(t string, c *culture.Culture) (pattern.Pattern[temporal.LocalDate], error) {
			return pattern.NewLocalDatePattern(t, c)
		},
		func() pattern.Pattern[temporal.LocalDate] { return pattern.LocalDateIso() },
		"ISO"),
	"local-time": opsFor(
		func(t string, c *culture.Culture) (pattern.Pattern[temporal.LocalTime], error) {
			return pattern.NewLocalTimePattern(t, c)
		},
		func() pattern.Pattern[temporal.LocalTime] { return pattern.LocalTimeExtendedIso() },
		"extended ISO"),
	"local-date-time": opsFor(
		func(t string, c *culture.Culture) (pattern.Pattern[temporal.LocalDateTime], error) {
			return pattern.NewLocalDateTimePattern(t, c)
		},
		func() pattern.Pattern[temporal.LocalDateTime] { return pattern.LocalDateTimeExtendedIso() },
		"extended ISO"),
	"offset": opsFor(
		func(t string, c *culture.Culture) (pattern.Pattern[temporal.Offset], error) {
			return pattern.NewOffsetPattern(t, c)
		},
		func() pattern.Pattern[temporal.Offset] { return pattern.OffsetGeneralInvariantWithZ() },
		"general"),
	"annual-date": opsFor(
		func(t string, c *culture.Culture) (pattern.Pattern[temporal.AnnualDate], error) {
			return pattern.NewAnnualDatePattern(t, c)
		},
		func() pattern.Pattern[temporal.AnnualDate] { return pattern.AnnualDateIso() },
		"ISO"),
}

func opsForType(name string) (typeOps, error) {
	ops, ok := patternTypes[name]
	if !ok {
		return typeOps{}, fmt.Errorf("unknown value type %q (expected one of: %s)", name, strings.Join(typeNames(), ", "))
	}
	return ops, nil
}

func typeNames() []string {
	names := make([]string, 0, len(patternTypes))
	for name := range patternTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resolveCulture(tag, file string) (*culture.Culture, error) {
	if file != "" {
		return culture.LoadFile(file)
	}
	return culture.Lookup(tag)
}
