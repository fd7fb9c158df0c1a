package highscore

import (
	"fmt"
	"slices"
	"time"

	"github.com/okian/playerdata/internal/domain/catalog"
	"github.com/okian/playerdata/internal/domain/model"
)

// Snapshot is a player's skill and activity rankings at a moment in time.
// It is immutable once built; accessors return copies.
type Snapshot struct {
	skills     []SkillEntry
	activities []ActivityEntry
	capturedAt time.Time
	player     *model.Player
	raw        string
}

// New builds a snapshot from parsed entries. raw is the verbatim source text
// retained for diagnostics. Entries keep the order they are given in.
func New(raw string, skills []SkillEntry, activities []ActivityEntry, opts ...Option) (*Snapshot, error) {
	seen := make(map[int]struct{}, len(skills))
	for _, e := range skills {
		if _, dup := seen[e.Ordinal()]; dup {
			return nil, fmt.Errorf("%w: skill %q", ErrDuplicateEntry, e.Name())
		}
		seen[e.Ordinal()] = struct{}{}
	}
	clear(seen)
	for _, e := range activities {
		if _, dup := seen[e.Ordinal()]; dup {
			return nil, fmt.Errorf("%w: activity %q", ErrDuplicateEntry, e.Name())
		}
		seen[e.Ordinal()] = struct{}{}
	}

	s := &Snapshot{
		skills:     slices.Clone(skills),
		activities: slices.Clone(activities),
		capturedAt: time.Now().UTC(),
		raw:        raw,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Skills returns the skill rows in catalog order.
func (s *Snapshot) Skills() []SkillEntry { return slices.Clone(s.skills) }

// Activities returns the activity rows in catalog order.
func (s *Snapshot) Activities() []ActivityEntry { return slices.Clone(s.activities) }

// Entries returns skills followed by activities.
func (s *Snapshot) Entries() []Entry {
	out := make([]Entry, 0, len(s.skills)+len(s.activities))
	for _, e := range s.skills {
		out = append(out, e)
	}
	for _, e := range s.activities {
		out = append(out, e)
	}
	return out
}

// Skill returns the row for a skill, if present.
func (s *Snapshot) Skill(id catalog.SkillID) (SkillEntry, bool) {
	for _, e := range s.skills {
		if e.skill.ID == id {
			return e, true
		}
	}
	return SkillEntry{}, false
}

// Activity returns the row for an activity, if present.
func (s *Snapshot) Activity(id catalog.ActivityID) (ActivityEntry, bool) {
	for _, e := range s.activities {
		if e.activity.ID == id {
			return e, true
		}
	}
	return ActivityEntry{}, false
}

// Player returns the owning player when one was associated.
func (s *Snapshot) Player() (model.Player, bool) {
	if s.player == nil {
		return model.Player{}, false
	}
	return *s.player, true
}

// CapturedAt returns the capture time in UTC.
func (s *Snapshot) CapturedAt() time.Time { return s.capturedAt }

// Raw returns the source text the snapshot was parsed from.
func (s *Snapshot) Raw() string { return s.raw }
