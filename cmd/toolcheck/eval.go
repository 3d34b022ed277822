package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/toolcheck/check"
	"github.com/jonwraymond/toolcheck/config"
	"github.com/jonwraymond/toolcheck/observe"
)

func (a *app) evalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval NAME=VALUE...",
		Short: "Evaluate values against the configured dimensions",
		Example: `  toolcheck eval load=3.2 free_disk=14.5
  some-collector | xargs toolcheck eval -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta := observe.CheckMeta{Namespace: "eval", Name: "dimensions", Target: strings.Join(dimensionNames(args), ",")}
			coll := a.evaluate(cmd.Context(), meta, func(ctx context.Context, meta observe.CheckMeta) (check.Collection, error) {
				return evalCollection(a.checks, args), nil
			})
			return a.emit(cmd.Context(), coll)
		},
	}
}

func dimensionNames(args []string) []string {
	names := make([]string, 0, len(args))
	for _, arg := range args {
		name, _, _ := strings.Cut(arg, "=")
		names = append(names, name)
	}
	return names
}

// evalCollection evaluates each NAME=VALUE pair in order. Malformed pairs,
// unknown or misconfigured names and non-finite values become UNKNOWN entries
// so the remaining pairs still report.
func evalCollection(checks *config.Checks, args []string) check.Collection {
	results := make([]check.Reportable, 0, len(args))
	for _, arg := range args {
		results = append(results, evalPair(checks, arg))
	}
	return check.NewCollection(results...)
}

func evalPair(checks *config.Checks, arg string) check.Reportable {
	name, raw, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		return check.Unknown(check.NewSummary(fmt.Sprintf("invalid argument %q: want NAME=VALUE", arg)))
	}
	dim, ok := checks.Lookup(name)
	if !ok {
		if checks.Invalid(name) {
			return check.Unknown(check.NewSummary(fmt.Sprintf("%s: invalid configuration", name)))
		}
		return check.Unknown(check.NewSummary(fmt.Sprintf("%s: no such dimension", name)))
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return check.Unknown(check.NewSummary(fmt.Sprintf("%s: invalid value %q", name, raw)))
	}
	return dim.Check(value)
}
