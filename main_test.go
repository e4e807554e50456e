package localeinfo

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()

	all := append([]Option{WithDefaultLocale("en")}, opts...)
	service, err := NewService(all...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return service
}
