package observability

import (
	"strings"

	"github.com/gob-digital/app-rut/internal/logging"
	"github.com/gob-digital/app-rut/internal/rut"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskRUT masks a RUT for logging, keeping only the first two digits and
// the check character visible.
func MaskRUT(text string) string {
	cleaned := rut.Clean(text)
	if len(cleaned) < 4 {
		return "********"
	}
	return cleaned[:2] + strings.Repeat("*", len(cleaned)-3) + cleaned[len(cleaned)-1:]
}
