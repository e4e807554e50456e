package localeinfo

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

const (
	initialValueCapacity = 64
	maxGrowAttempts      = 8
)

var (
	defaultServiceOnce sync.Once
	defaultService     *Service
	defaultServiceErr  error
)

// Default returns the package level service, configured from the environment on
// first use.
func Default() (*Service, error) {
	defaultServiceOnce.Do(func() {
		opts, err := OptionsFromEnv()
		if err != nil {
			defaultServiceErr = err
			return
		}
		defaultService, defaultServiceErr = NewService(opts...)
	})
	return defaultService, defaultServiceErr
}

// GetLocaleInfoString is the boolean interop entry point over the default service.
func GetLocaleInfoString(localeName string, field LocaleStringField, value []uint16) bool {
	service, err := Default()
	if err != nil {
		return false
	}
	return service.GetLocaleInfoString(localeName, field, value)
}

// GetLocaleTimeFormat is the boolean interop entry point over the default service.
func GetLocaleTimeFormat(localeName string, shortFormat bool, value []uint16) bool {
	service, err := Default()
	if err != nil {
		return false
	}
	return service.GetLocaleTimeFormat(localeName, shortFormat, value)
}

// GetLocaleInfoString writes into value and reports only whether the call succeeded.
func (s *Service) GetLocaleInfoString(localeName string, field LocaleStringField, value []uint16) bool {
	if s == nil {
		return false
	}
	err := s.LocaleInfoString(localeName, field, WrapBuffer(value))
	if err != nil {
		s.logger.Debug("locale info lookup failed",
			zap.String("locale", localeName),
			zap.Stringer("field", field),
			zap.Stringer("status", StatusOf(err)),
			zap.Error(err))
	}
	return Succeeded(err)
}

// GetLocaleTimeFormat writes into value and reports only whether the call succeeded.
func (s *Service) GetLocaleTimeFormat(localeName string, shortFormat bool, value []uint16) bool {
	if s == nil {
		return false
	}
	err := s.LocaleTimeFormat(localeName, shortFormat, WrapBuffer(value))
	if err != nil {
		s.logger.Debug("time format lookup failed",
			zap.String("locale", localeName),
			zap.Bool("short", shortFormat),
			zap.Stringer("status", StatusOf(err)),
			zap.Error(err))
	}
	return Succeeded(err)
}

// LocaleInfo returns the field value, growing its buffer as needed.
func (s *Service) LocaleInfo(locale string, field LocaleStringField) (string, error) {
	return growing(func(buf *Buffer) error {
		return s.LocaleInfoString(locale, field, buf)
	})
}

// TimeFormat returns the short or medium time pattern, growing its buffer as needed.
func (s *Service) TimeFormat(locale string, shortFormat bool) (string, error) {
	return growing(func(buf *Buffer) error {
		return s.LocaleTimeFormat(locale, shortFormat, buf)
	})
}

func growing(write func(*Buffer) error) (string, error) {
	capacity := initialValueCapacity
	var err error
	for attempt := 0; attempt < maxGrowAttempts; attempt++ {
		buf := NewBuffer(capacity)
		err = write(buf)
		if err == nil {
			return buf.String(), nil
		}

		var capErr *CapacityError
		if !errors.As(err, &capErr) || capErr.Needed <= capacity {
			return "", err
		}
		capacity = capErr.Needed
	}
	return "", err
}
