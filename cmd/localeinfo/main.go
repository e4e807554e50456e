// Command localeinfo queries locale strings and time patterns from the command line.
package main

import (
	"fmt"
	"os"

	localeinfo "github.com/goliatone/go-localeinfo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

type rootOptions struct {
	verbose       bool
	dataPaths     []string
	defaultLocale string
	capacity      int
	atomicDigits  bool

	service *localeinfo.Service
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "localeinfo",
		Short: "Query locale strings and time patterns",
		Long: `localeinfo answers the same locale string and time pattern queries the
interop boundary serves: display names, number and currency symbols, ISO codes,
parent locales and time patterns.

Examples:
  localeinfo get de-CH DecimalSeparator ThousandSeparator
  localeinfo time en-US --short
  localeinfo dump en-US fr-CA ar-SA`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger == nil {
				config := zap.NewProductionConfig()
				if opts.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				var err error
				logger, err = config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}
			return opts.buildService()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringSliceVar(&opts.dataPaths, "data", nil, "JSON or YAML locale data files layered over the bundled data")
	flags.StringVar(&opts.defaultLocale, "default-locale", "", "locale used for localized display names (defaults to LC_ALL/LC_MESSAGES/LANG)")
	flags.IntVar(&opts.capacity, "capacity", 0, "fixed output capacity in UTF-16 code units, terminator included (0 grows as needed)")
	flags.BoolVar(&opts.atomicDigits, "atomic-digits", false, "write Digits only when all ten digits resolve")

	root.AddCommand(
		newGetCmd(opts),
		newTimeCmd(opts),
		newFieldsCmd(),
		newLocalesCmd(opts),
		newDumpCmd(opts),
	)
	return root
}

func (o *rootOptions) buildService() error {
	serviceOpts := []localeinfo.Option{
		localeinfo.WithLogger(logger),
		localeinfo.WithLocaleData(o.dataPaths...),
	}
	if o.defaultLocale != "" {
		serviceOpts = append(serviceOpts, localeinfo.WithDefaultLocale(o.defaultLocale))
	}
	if o.atomicDigits {
		serviceOpts = append(serviceOpts, localeinfo.WithAtomicDigits())
	}

	service, err := localeinfo.NewService(serviceOpts...)
	if err != nil {
		return err
	}
	o.service = service
	logger.Debug("service ready",
		zap.Strings("data", o.dataPaths),
		zap.Int("capacity", o.capacity),
		zap.Bool("atomic_digits", o.atomicDigits))
	return nil
}

// localeInfo fetches one field, honouring --capacity.
func (o *rootOptions) localeInfo(locale string, field localeinfo.LocaleStringField) (string, error) {
	if o.capacity <= 0 {
		return o.service.LocaleInfo(locale, field)
	}
	buf := localeinfo.NewBuffer(o.capacity)
	if err := o.service.LocaleInfoString(locale, field, buf); err != nil {
		return buf.String(), err
	}
	return buf.String(), nil
}

// timeFormat fetches a time pattern, honouring --capacity.
func (o *rootOptions) timeFormat(locale string, short bool) (string, error) {
	if o.capacity <= 0 {
		return o.service.TimeFormat(locale, short)
	}
	buf := localeinfo.NewBuffer(o.capacity)
	if err := o.service.LocaleTimeFormat(locale, short, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
