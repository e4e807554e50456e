package localeinfo

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

// Config captures how a Service resolves locales and where its data comes from
type Config struct {
	DefaultLocale string
	Detector      LocaleDetector
	Normalizer    Normalizer
	Backend       Backend
	Resolver      FallbackResolver
	Logger        *zap.Logger
	AtomicDigits  bool

	dataPaths     []string
	dataOverrides map[string]string
	catalog       *LocaleCatalog
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if cfg.Normalizer == nil {
		cfg.Normalizer = DefaultNormalizer{}
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if err := cfg.applyDefaultLocale(); err != nil {
		return nil, err
	}

	if err := cfg.applyBackend(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Catalog returns the locale catalog built for the default backend, or nil when a
// custom backend was supplied.
func (c *Config) Catalog() *LocaleCatalog {
	if c == nil {
		return nil
	}
	return c.catalog
}

func (c *Config) applyDefaultLocale() error {
	if c.DefaultLocale == "" {
		if c.Detector == nil {
			c.Detector = EnvLocaleDetector{}
		}
		return nil
	}

	tag, err := c.Normalizer.Normalize(c.DefaultLocale)
	if err != nil {
		return fmt.Errorf("localeinfo: default locale: %w", err)
	}
	if c.Detector != nil {
		c.Logger.Debug("default locale overrides configured detector",
			zap.String("locale", c.DefaultLocale))
	}
	c.Detector = StaticLocaleDetector{Tag: tag}
	return nil
}

func (c *Config) applyBackend() error {
	if c.Backend != nil {
		if len(c.dataPaths) > 0 || len(c.dataOverrides) > 0 {
			c.Logger.Warn("locale data files ignored with a custom backend",
				zap.Strings("paths", c.dataPaths))
		}
		return nil
	}

	loader := NewLocaleDataLoader(c.dataPaths...)
	for locale, path := range c.dataOverrides {
		loader.AddOverride(locale, path)
	}

	overlays, err := loader.Load()
	if err != nil {
		return err
	}

	catalog, err := NewLocaleCatalog(localeDataBundles, overlays, c.Resolver)
	if err != nil {
		return fmt.Errorf("localeinfo: %w", err)
	}

	backend, err := NewCLDRBackend(catalog)
	if err != nil {
		return err
	}

	c.catalog = catalog
	c.Backend = backend
	c.Logger.Debug("locale data loaded",
		zap.Int("locales", len(catalog.Codes())),
		zap.Int("overlays", len(overlays)),
		zap.Strings("paths", c.dataPaths))
	return nil
}

// WithDefaultLocale fixes the locale used for localized display names instead of
// detecting it from the environment
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

func WithLocaleDetector(detector LocaleDetector) Option {
	return func(c *Config) error {
		c.Detector = detector
		return nil
	}
}

func WithNormalizer(normalizer Normalizer) Option {
	return func(c *Config) error {
		c.Normalizer = normalizer
		return nil
	}
}

func WithBackend(backend Backend) Option {
	return func(c *Config) error {
		c.Backend = backend
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback registers locales consulted before the parents of locale. It needs the
// default StaticFallbackResolver; other resolvers own their chains.
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return fmt.Errorf("localeinfo: WithFallback requires a StaticFallbackResolver, got %T", c.Resolver)
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithLocaleData layers JSON or YAML locale data files over the generated bundles
func WithLocaleData(paths ...string) Option {
	return func(c *Config) error {
		for _, path := range paths {
			path = strings.TrimSpace(path)
			if path == "" {
				continue
			}
			c.dataPaths = append(c.dataPaths, path)
		}
		return nil
	}
}

// WithLocaleDataOverride applies the single-locale file at path last
func WithLocaleDataOverride(locale, path string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(locale) == "" {
			return fmt.Errorf("localeinfo: override locale required")
		}
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("localeinfo: override path required for %q", locale)
		}
		if c.dataOverrides == nil {
			c.dataOverrides = make(map[string]string)
		}
		c.dataOverrides[locale] = path
		return nil
	}
}

// WithAtomicDigits makes the Digits field write nothing unless all ten digits
// resolve. By default earlier digits stay written when a later lookup fails.
func WithAtomicDigits() Option {
	return func(c *Config) error {
		c.AtomicDigits = true
		return nil
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// EnvConfig is the environment driven configuration of the default service.
type EnvConfig struct {
	DefaultLocale string   `env:"LOCALEINFO_DEFAULT_LOCALE"`
	DataPaths     []string `env:"LOCALEINFO_DATA_PATHS"     envSeparator:","`
	AtomicDigits  bool     `env:"LOCALEINFO_ATOMIC_DIGITS"  envDefault:"false"`
	LogLevel      string   `env:"LOCALEINFO_LOG_LEVEL"`
}

// LoadEnvConfig reads EnvConfig from the process environment.
func LoadEnvConfig() (EnvConfig, error) {
	cfg, err := env.ParseAs[EnvConfig]()
	if err != nil {
		return EnvConfig{}, fmt.Errorf("localeinfo: environment: %w", err)
	}
	return cfg, nil
}

// Options converts the environment configuration into options.
func (e EnvConfig) Options() ([]Option, error) {
	var opts []Option
	if e.DefaultLocale != "" {
		opts = append(opts, WithDefaultLocale(e.DefaultLocale))
	}
	if len(e.DataPaths) > 0 {
		opts = append(opts, WithLocaleData(e.DataPaths...))
	}
	if e.AtomicDigits {
		opts = append(opts, WithAtomicDigits())
	}
	if e.LogLevel != "" {
		logger, err := newLevelLogger(e.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLogger(logger))
	}
	return opts, nil
}

// OptionsFromEnv reads the environment and returns the matching options.
func OptionsFromEnv() ([]Option, error) {
	cfg, err := LoadEnvConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Options()
}

func newLevelLogger(level string) (*zap.Logger, error) {
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("localeinfo: log level %q: %w", level, err)
	}
	config := zap.NewProductionConfig()
	config.Level = atomic
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("localeinfo: build logger: %w", err)
	}
	return logger.Named("localeinfo"), nil
}
