// Package main reports translation coverage for the embedded site catalogs.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	i18ncatalog "github.com/optionsbroker/vergleich/internal/platform/i18n/catalog"
)

type localeStatus struct {
	Locale     string
	BaseKeys   int
	Missing    []string
	Extra      []string
	Completion float64
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var baseLocale string
	var strict bool
	flags := flag.NewFlagSet("i18nstatus", flag.ContinueOnError)
	flags.StringVar(&baseLocale, "base-locale", i18ncatalog.BaseLocale, "locale used as the translation source of truth")
	flags.BoolVar(&strict, "strict", false, "fail when any locale misses a base key")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	bundle, err := i18ncatalog.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load i18n catalogs: %w", err)
	}
	if !bundle.HasLocale(baseLocale) {
		return fmt.Errorf("base locale %q is missing from catalogs", baseLocale)
	}

	statuses := buildStatus(bundle, baseLocale)
	if err := writeTable(stdout, statuses); err != nil {
		return err
	}
	if strict {
		for _, status := range statuses {
			if len(status.Missing) > 0 {
				return fmt.Errorf("locale %s misses %d keys, first %q", status.Locale, len(status.Missing), status.Missing[0])
			}
		}
	}
	return nil
}

func buildStatus(bundle *i18ncatalog.Bundle, baseLocale string) []localeStatus {
	base := bundle.LocaleMessages(baseLocale)
	var statuses []localeStatus
	for _, locale := range bundle.Locales() {
		target := bundle.LocaleMessages(locale)
		missing := difference(base, target)
		statuses = append(statuses, localeStatus{
			Locale:     locale,
			BaseKeys:   len(base),
			Missing:    missing,
			Extra:      difference(target, base),
			Completion: percent(len(base)-len(missing), len(base)),
		})
	}
	return statuses
}

func writeTable(w io.Writer, statuses []localeStatus) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LOCALE\tBASE\tMISSING\tEXTRA\tCOMPLETION")
	for _, status := range statuses {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.1f%%\n", status.Locale, status.BaseKeys, len(status.Missing), len(status.Extra), status.Completion)
	}
	for _, status := range statuses {
		for _, key := range status.Missing {
			fmt.Fprintf(tw, "missing\t%s\t%s\t\t\n", status.Locale, key)
		}
	}
	return tw.Flush()
}

// difference lists keys in left that right lacks.
func difference(left, right map[string]string) []string {
	out := make([]string, 0)
	for key := range left {
		if _, ok := right[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func percent(numerator, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	return float64(int(float64(numerator)*1000/float64(denominator))) / 10
}
