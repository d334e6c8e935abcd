package sec4dev

import (
	"net/netip"
	"regexp"
	"strings"

	"github.com/sec4dev/sec4dev-go/internal/apierrors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateEmail returns the trimmed address or a Validation error.
func validateEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", apierrors.NewValidationError("Email cannot be empty")
	}
	if !emailPattern.MatchString(trimmed) {
		return "", apierrors.NewValidationError("Invalid email format")
	}
	return trimmed, nil
}

// validateIP returns the trimmed address or a Validation error. IPv4 must be
// a plain dotted quad; IPv6 zones are rejected.
func validateIP(ip string) (string, error) {
	trimmed := strings.TrimSpace(ip)
	if trimmed == "" {
		return "", apierrors.NewValidationError("IP address cannot be empty")
	}
	addr, err := netip.ParseAddr(trimmed)
	if err != nil || addr.Zone() != "" {
		return "", apierrors.NewValidationError("Invalid IP address format")
	}
	return trimmed, nil
}
