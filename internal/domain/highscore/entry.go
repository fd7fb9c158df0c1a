// Package highscore models a player's rankings at a moment in time.
package highscore

import "github.com/okian/playerdata/internal/domain/catalog"

// Level bounds applied to regular skills. The total skill is not clamped.
const (
	MinLevel = 1
	MaxLevel = 200
)

// Entry is the read view shared by skill and activity rows.
type Entry interface {
	Ordinal() int
	Name() string
	Rank() uint64
}

// SkillEntry is one skill row of a snapshot.
type SkillEntry struct {
	skill catalog.Skill
	rank  uint64
	level int
	xp    int64
}

// NewSkillEntry normalizes upstream values: negative ranks (unranked) become
// 0, negative experience becomes 0 and regular skill levels are clamped.
func NewSkillEntry(skill catalog.Skill, rank int64, level int, xp int64) SkillEntry {
	if rank < 0 {
		rank = 0
	}
	if xp < 0 {
		xp = 0
	}
	if level < MinLevel {
		level = MinLevel
	}
	if !skill.IsTotal() && level > MaxLevel {
		level = MaxLevel
	}
	return SkillEntry{skill: skill, rank: uint64(rank), level: level, xp: xp}
}

func (e SkillEntry) Ordinal() int         { return int(e.skill.ID) }
func (e SkillEntry) Name() string         { return e.skill.Name }
func (e SkillEntry) Rank() uint64         { return e.rank }
func (e SkillEntry) Skill() catalog.Skill { return e.skill }
func (e SkillEntry) Experience() int64    { return e.xp }

// Ranked reports whether the upstream API ranked this skill.
func (e SkillEntry) Ranked() bool { return e.rank > 0 }

// Level returns the reported level, or with uncapped set, the level implied
// by experience up to the skill's virtual cap. The reported level wins when
// it is higher.
func (e SkillEntry) Level(uncapped bool) int {
	if !uncapped || e.skill.IsTotal() || e.skill.VirtualMaxLevel <= e.skill.MaxLevel {
		return e.level
	}
	if virtual := LevelForExperience(e.xp, e.skill.VirtualMaxLevel); virtual > e.level {
		return virtual
	}
	return e.level
}

// ActivityEntry is one activity row of a snapshot.
type ActivityEntry struct {
	activity catalog.Activity
	rank     uint64
	score    int64
}

// NewActivityEntry builds an activity row. A negative score is kept as the
// unranked sentinel.
func NewActivityEntry(activity catalog.Activity, rank int64, score int64) ActivityEntry {
	if rank < 0 {
		rank = 0
	}
	return ActivityEntry{activity: activity, rank: uint64(rank), score: score}
}

func (e ActivityEntry) Ordinal() int               { return int(e.activity.ID) }
func (e ActivityEntry) Name() string               { return e.activity.Name }
func (e ActivityEntry) Rank() uint64               { return e.rank }
func (e ActivityEntry) Activity() catalog.Activity { return e.activity }
func (e ActivityEntry) Score() int64               { return e.score }

// Ranked reports whether the player holds a score for this activity.
func (e ActivityEntry) Ranked() bool { return e.score >= 0 }
