// Package clock resolves IANA timezone names and formats local timestamps
// for the current_time tool.
package clock

import (
	"fmt"
	"time"
)

// displayLayout is the timestamp format reported to clients.
const displayLayout = "2006-01-02 15:04:05 MST"

// TimeInfo is the resolved zone plus the formatted local time.
type TimeInfo struct {
	Timezone string `json:"timezone"`
	Local    string `json:"local"`
}

// Resolve loads an IANA zone by name from the platform timezone database.
// The error for an unresolvable name always carries the offending input.
func Resolve(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// At formats t in the named zone.
func At(t time.Time, name string) (*TimeInfo, error) {
	loc, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	local := t.In(loc)
	return &TimeInfo{
		Timezone: loc.String(),
		Local:    local.Format(displayLayout),
	}, nil
}
