package tz

import (
	"fmt"
	"strings"
	"time"

	"h37bot/internal/domain"
)

// Default is the zone used when none is configured (CST/CDT with automatic DST).
const Default = "America/Chicago"

// Load resolves an IANA timezone identifier. An empty name resolves to Default.
func Load(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = Default
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", domain.ErrInvalidTimezone, name, err)
	}
	return loc, nil
}
