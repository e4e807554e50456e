package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	localeinfo "github.com/goliatone/go-localeinfo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const dumpConcurrency = 4

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get [locale] [field...]",
		Short: "Print locale string fields",
		Long: `Prints each requested field of the locale. Fields are given by name
(case-insensitive) or numeric value, e.g. DecimalSeparator or 0x0E.
Use "" for the invariant locale.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			locale := args[0]
			out := cmd.OutOrStdout()

			for _, name := range args[1:] {
				field, err := localeinfo.ParseField(name)
				if err != nil {
					return err
				}
				value, err := opts.localeInfo(locale, field)
				if err != nil {
					logger.Debug("lookup failed",
						zap.String("locale", locale),
						zap.Stringer("field", field),
						zap.Stringer("status", localeinfo.StatusOf(err)),
						zap.Error(err))
					return fmt.Errorf("%s %s: %s: %w", locale, field, localeinfo.StatusOf(err), err)
				}
				if len(args) == 2 {
					fmt.Fprintln(out, value)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", field, value)
			}
			return nil
		},
	}
}

func newTimeCmd(opts *rootOptions) *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "time [locale]",
		Short: "Print the medium (or short) time pattern of a locale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := opts.timeFormat(args[0], short)
			if err != nil {
				return fmt.Errorf("%s: %s: %w", args[0], localeinfo.StatusOf(err), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), pattern)
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print the short time pattern")
	return cmd
}

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the supported fields and their numeric values",
		Args:  cobra.NoArgs,
		// fields is static and needs no service.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, field := range localeinfo.Fields() {
				fmt.Fprintf(w, "%s\t0x%02X\n", field, int32(field))
			}
			return w.Flush()
		},
	}
}

func newLocalesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List locales with bundled or loaded data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := opts.service.Catalog()
			if catalog == nil {
				return fmt.Errorf("no locale catalog available")
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, code := range catalog.Codes() {
				fmt.Fprintf(w, "%s\t%s\n", code, catalog.DisplayName(code))
			}
			return w.Flush()
		},
	}
}

type dumpEntry struct {
	Locale     string            `yaml:"locale"`
	Fields     map[string]string `yaml:"fields,omitempty"`
	ShortTime  string            `yaml:"short_time,omitempty"`
	MediumTime string            `yaml:"medium_time,omitempty"`
	Failures   map[string]string `yaml:"failures,omitempty"`
}

func newDumpCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump [locale...]",
		Short: "Print every field of one or more locales as YAML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := dumpLocales(cmd.Context(), opts, args)
			if err != nil {
				return err
			}
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(entries); err != nil {
				return fmt.Errorf("encode dump: %w", err)
			}
			return encoder.Close()
		},
	}
}

// dumpLocales resolves every field of every locale concurrently. Results keep the
// order of locales; per-field failures are reported in the entry.
func dumpLocales(ctx context.Context, opts *rootOptions, locales []string) ([]dumpEntry, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	entries := make([]dumpEntry, len(locales))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(dumpConcurrency)

	for i, locale := range locales {
		i, locale := i, locale
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries[i] = dumpLocale(opts, locale)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func dumpLocale(opts *rootOptions, locale string) dumpEntry {
	entry := dumpEntry{Locale: locale}
	fail := func(key string, err error) {
		if entry.Failures == nil {
			entry.Failures = make(map[string]string)
		}
		entry.Failures[key] = localeinfo.StatusOf(err).String()
	}

	for _, field := range localeinfo.Fields() {
		value, err := opts.localeInfo(locale, field)
		if err != nil {
			fail(field.String(), err)
			continue
		}
		if entry.Fields == nil {
			entry.Fields = make(map[string]string)
		}
		entry.Fields[field.String()] = value
	}

	if pattern, err := opts.timeFormat(locale, true); err != nil {
		fail("ShortTime", err)
	} else {
		entry.ShortTime = pattern
	}
	if pattern, err := opts.timeFormat(locale, false); err != nil {
		fail("MediumTime", err)
	} else {
		entry.MediumTime = pattern
	}
	return entry
}
