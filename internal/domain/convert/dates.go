package convert

import (
	"fmt"
	"strings"
	"time"
)

// markupDateLayouts are the pubDate layouts seen in RSS feeds.
var markupDateLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	time.RFC3339,
}

// rfc822Zones are the named North American zones RFC 822 allows, in hours
// east of UTC.
var rfc822Zones = map[string]int{
	"EST": -5, "EDT": -4,
	"CST": -6, "CDT": -5,
	"MST": -7, "MDT": -6,
	"PST": -8, "PDT": -7,
}

// parseTime parses value with the first matching layout and returns it in
// UTC. Layouts without a zone are read in loc.
func parseTime(value string, loc *time.Location, layouts ...string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err != nil {
			continue
		}
		if strings.Contains(layout, "MST") {
			if t, err = resolveZone(t); err != nil {
				return time.Time{}, err
			}
		}
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// resolveZone fixes the offset of a named zone. time.Parse records an
// abbreviation it does not know as offset zero.
func resolveZone(t time.Time) (time.Time, error) {
	name, offset := t.Zone()
	if offset != 0 {
		return t, nil
	}
	switch name {
	case "UTC", "GMT", "Z":
		return t, nil
	}
	hours, ok := rfc822Zones[name]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown time zone %q", name)
	}
	zone := time.FixedZone(name, hours*60*60)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), zone), nil
}
