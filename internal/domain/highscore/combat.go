package highscore

import (
	"fmt"

	"github.com/okian/playerdata/internal/domain/catalog"
)

const meleeWeight = 1.3

var combatSkills = []catalog.SkillID{
	catalog.SkillAttack,
	catalog.SkillDefence,
	catalog.SkillStrength,
	catalog.SkillConstitution,
	catalog.SkillRanged,
	catalog.SkillPrayer,
	catalog.SkillMagic,
}

// CombatLevel computes the combat level:
//
//	floor((max(att+str, 2*mag, 2*rng)*1.3 + def + con + floor(pray/2) + floor(summ/2)) / 4)
//
// Summoning counts only when includeSummoning is set and the snapshot has it;
// otherwise it is taken as level 1. uncapped selects experience-derived
// levels.
func (s *Snapshot) CombatLevel(includeSummoning, uncapped bool) (int, error) {
	levels := make(map[catalog.SkillID]int, len(combatSkills))
	for _, id := range combatSkills {
		e, ok := s.Skill(id)
		if !ok {
			skill, _ := catalog.SkillByID(id)
			return 0, fmt.Errorf("%w: missing %s", ErrIncompleteSnapshot, skill.Name)
		}
		levels[id] = e.Level(uncapped)
	}

	summoning := 1
	if e, ok := s.Skill(catalog.SkillSummoning); ok && includeSummoning {
		summoning = e.Level(uncapped)
	}

	base := max(
		levels[catalog.SkillAttack]+levels[catalog.SkillStrength],
		2*levels[catalog.SkillMagic],
		2*levels[catalog.SkillRanged],
	)
	total := float64(base)*meleeWeight +
		float64(levels[catalog.SkillDefence]+levels[catalog.SkillConstitution]) +
		float64(levels[catalog.SkillPrayer]/2) +
		float64(summoning/2)

	return int(total / 4), nil
}
