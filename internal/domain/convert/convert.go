// Package convert decodes the payloads published by the upstream player APIs
// into highscore snapshots and activity feeds.
//
// Three wire formats are supported: the comma-delimited lite format (modern
// and legacy rulesets), the structured JSON profile format and the RSS markup
// feed. Decoders are pure; a Converter only carries configuration and may be
// shared between goroutines.
package convert

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/okian/playerdata/internal/domain/catalog"
	"github.com/okian/playerdata/internal/domain/feed"
	"github.com/okian/playerdata/internal/domain/highscore"
	"github.com/okian/playerdata/pkg/logger"
)

// Format names a wire format.
type Format string

// Supported formats.
const (
	FormatLite       Format = "lite"
	FormatLegacyLite Format = "lite-legacy"
	FormatStructured Format = "structured"
	FormatMarkup     Format = "markup"
)

// Formats lists every supported format.
var Formats = []Format{FormatLite, FormatLegacyLite, FormatStructured, FormatMarkup}

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(name)
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// YieldsFeed reports whether the format carries an activity feed.
func (f Format) YieldsFeed() bool {
	return f == FormatStructured || f == FormatMarkup
}

// YieldsHighscore reports whether the format carries skill rankings.
func (f Format) YieldsHighscore() bool {
	return f != FormatMarkup
}

// Key names one result of a conversion.
type Key string

// Result keys.
const (
	KeyRealName                Key = "realName"
	KeySkillHighscore          Key = "skillHighscore"
	KeyActivityHighscore       Key = "activityHighscore"
	KeyLegacySkillHighscore    Key = "legacySkillHighscore"
	KeyLegacyActivityHighscore Key = "legacyActivityHighscore"
	KeyActivityFeed            Key = "activityFeed"
)

var formatKeys = map[Format][]Key{
	FormatLite:       {KeySkillHighscore, KeyActivityHighscore},
	FormatLegacyLite: {KeyLegacySkillHighscore, KeyLegacyActivityHighscore},
	FormatStructured: {KeySkillHighscore, KeyActivityFeed, KeyRealName},
	FormatMarkup:     {KeyActivityFeed, KeyRealName},
}

// Profile carries the extra account details of the structured format.
type Profile struct {
	CombatLevel      int
	QuestsComplete   int
	QuestsStarted    int
	QuestsNotStarted int
}

// Result holds the named outputs of one conversion. Fields not produced by the
// format are left nil or empty; Keys lists the ones that were.
type Result struct {
	Format    Format
	Highscore *highscore.Snapshot
	Feed      *feed.Feed
	RealName  string
	Profile   *Profile
	// Skipped counts records dropped because their ordinal is not catalogued.
	Skipped int
}

// Keys returns the named results this conversion produced.
func (r Result) Keys() []Key {
	return slices.Clone(formatKeys[r.Format])
}

// Has reports whether the conversion produced k.
func (r Result) Has(k Key) bool {
	return slices.Contains(formatKeys[r.Format], k)
}

// Named returns the results keyed by name. Skill and activity keys of the lite
// format refer to the same snapshot.
func (r Result) Named() map[Key]any {
	out := make(map[Key]any, len(formatKeys[r.Format]))
	for _, k := range formatKeys[r.Format] {
		switch k {
		case KeyRealName:
			out[k] = r.RealName
		case KeyActivityFeed:
			out[k] = r.Feed
		default:
			out[k] = r.Highscore
		}
	}
	return out
}

// Converter decodes upstream payloads.
type Converter struct {
	logger   logger.Logger
	location *time.Location
	catalogs map[catalog.Ruleset]catalog.Catalog
}

// New creates a Converter with configuration options.
func New(opts ...Option) *Converter {
	c := &Converter{
		logger:   logger.Nop(),
		location: time.UTC,
		catalogs: map[catalog.Ruleset]catalog.Catalog{
			catalog.Modern: catalog.ForRuleset(catalog.Modern),
			catalog.Legacy: catalog.ForRuleset(catalog.Legacy),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Converter) catalog(r catalog.Ruleset) catalog.Catalog {
	if cat, ok := c.catalogs[r]; ok {
		return cat
	}
	return catalog.ForRuleset(r)
}

// Convert decodes data with the decoder for format. Snapshot options such as
// the owning player or capture time are applied to any snapshot produced.
func (c *Converter) Convert(ctx context.Context, format Format, data []byte, opts ...highscore.Option) (Result, error) {
	switch format {
	case FormatLite:
		return c.ConvertLite(ctx, string(data), catalog.Modern, opts...)
	case FormatLegacyLite:
		return c.ConvertLite(ctx, string(data), catalog.Legacy, opts...)
	case FormatStructured:
		return c.ConvertStructured(ctx, data, opts...)
	case FormatMarkup:
		return c.ConvertMarkup(ctx, data)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
