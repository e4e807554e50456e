package localeinfo

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Service answers locale string and time pattern queries. It holds no mutable state
// and is safe for concurrent use when its backend is.
type Service struct {
	backend      Backend
	normalizer   Normalizer
	detector     LocaleDetector
	catalog      *LocaleCatalog
	atomicDigits bool
	logger       *zap.Logger
}

// NewService builds a Service via supplied options
func NewService(opts ...Option) (*Service, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return NewServiceFromConfig(cfg)
}

// NewServiceFromConfig builds a Service from a Config created by NewConfig.
func NewServiceFromConfig(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("localeinfo: nil config")
	}
	if cfg.Backend == nil {
		return nil, errors.New("localeinfo: config has no backend")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	normalizer := cfg.Normalizer
	if normalizer == nil {
		normalizer = DefaultNormalizer{}
	}
	detector := cfg.Detector
	if detector == nil {
		detector = EnvLocaleDetector{}
	}

	return &Service{
		backend:      cfg.Backend,
		normalizer:   normalizer,
		detector:     detector,
		catalog:      cfg.catalog,
		atomicDigits: cfg.AtomicDigits,
		logger:       logger,
	}, nil
}

// Catalog returns the locale data catalog, or nil when a custom backend is in use.
func (s *Service) Catalog() *LocaleCatalog {
	if s == nil {
		return nil
	}
	return s.catalog
}

// Normalize resolves locale into the tag every accessor works with. Failures always
// match ErrInvalidLocale.
func (s *Service) Normalize(locale string) (language.Tag, error) {
	tag, err := s.normalizer.Normalize(locale)
	if err == nil {
		return tag, nil
	}
	if errors.Is(err, ErrInvalidLocale) {
		return language.Und, err
	}
	return language.Und, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, locale, err)
}

// DefaultLocale reports the locale used for localized display names.
func (s *Service) DefaultLocale() (language.Tag, error) {
	tag, err := s.detector.DetectLocale()
	if err != nil {
		return language.Und, fmt.Errorf("%w: default locale: %v", ErrLibrary, err)
	}
	return tag, nil
}
