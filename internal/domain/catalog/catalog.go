// Package catalog maps the positional ordinals used by the upstream highscore
// APIs to stable skill and activity identities.
//
// Lookups report a missing ordinal with a boolean rather than an error: new
// skills and activities appear upstream before the catalog learns about them,
// and callers are expected to skip those entries.
package catalog

import "fmt"

// LegacyActivityOffset separates legacy activity IDs from modern ones. Both
// rulesets number their activities from zero upstream.
const LegacyActivityOffset = 1000

// Ruleset selects which family of catalogs applies to a payload.
type Ruleset int

// Supported rulesets.
const (
	Modern Ruleset = iota
	Legacy
)

// String returns the ruleset name used in configuration and logs.
func (r Ruleset) String() string {
	switch r {
	case Modern:
		return "modern"
	case Legacy:
		return "legacy"
	default:
		return fmt.Sprintf("ruleset(%d)", int(r))
	}
}

// ParseRuleset resolves a ruleset name.
func ParseRuleset(name string) (Ruleset, error) {
	switch name {
	case "modern", "":
		return Modern, nil
	case "legacy", "oldschool":
		return Legacy, nil
	default:
		return Modern, fmt.Errorf("%w: %q", ErrUnknownRuleset, name)
	}
}

// Catalog is an ordinal-indexed pair of skill and activity tables.
type Catalog struct {
	ruleset    Ruleset
	skills     []Skill
	activities []Activity
	offset     int
}

// New builds a custom catalog, e.g. to track upstream additions before they
// are released here. Activities must carry IDs offset for the ruleset.
func New(r Ruleset, skills []Skill, activities []Activity) Catalog {
	c := Catalog{
		ruleset:    r,
		skills:     append([]Skill(nil), skills...),
		activities: append([]Activity(nil), activities...),
	}
	if r == Legacy {
		c.offset = LegacyActivityOffset
	}
	return c
}

// ForRuleset returns the catalog for r. Unknown rulesets fall back to Modern.
func ForRuleset(r Ruleset) Catalog {
	if r == Legacy {
		return legacyCatalog
	}
	return modernCatalog
}

// Ruleset reports which ruleset the catalog describes.
func (c Catalog) Ruleset() Ruleset { return c.ruleset }

// SkillAt returns the skill at the given upstream ordinal.
func (c Catalog) SkillAt(ordinal int) (Skill, bool) {
	if ordinal < 0 || ordinal >= len(c.skills) {
		return Skill{}, false
	}
	return c.skills[ordinal], true
}

// ActivityOrdinal converts a zero-based position in an upstream payload into
// the ordinal used for lookups, applying the ruleset offset.
func (c Catalog) ActivityOrdinal(position int) int {
	return position + c.offset
}

// ActivityAt returns the activity at the given ordinal. Ordinals already
// include the ruleset offset, see ActivityOrdinal.
func (c Catalog) ActivityAt(ordinal int) (Activity, bool) {
	pos := ordinal - c.offset
	if pos < 0 || pos >= len(c.activities) {
		return Activity{}, false
	}
	return c.activities[pos], true
}

// SkillCount returns the number of skill ordinals the catalog knows.
func (c Catalog) SkillCount() int { return len(c.skills) }

// ActivityCount returns the number of activity ordinals the catalog knows.
func (c Catalog) ActivityCount() int { return len(c.activities) }
