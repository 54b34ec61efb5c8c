package gate

import (
	"crypto/subtle"
	"strings"

	"github.com/contre95/soundgate/src/features/config"
)

// Service checks submitted access codes against the configured one.
type Service struct {
	configManager *config.Manager
}

// NewService creates a new gate service.
func NewService(cfgManager *config.Manager) *Service {
	return &Service{configManager: cfgManager}
}

// CheckCode reports whether the submitted code grants access. The
// comparison is constant-time; surrounding whitespace is ignored.
func (s *Service) CheckCode(code string) bool {
	code = strings.TrimSpace(code)
	want := s.configManager.Get().AccessCode
	if code == "" || want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(want)) == 1
}
