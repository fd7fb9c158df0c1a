package catalog

// SkillID is the stable identity of a skill. Modern skills use their modern
// ordinal; skills shared with the legacy ruleset keep the modern ID.
type SkillID int

// Known skills.
const (
	SkillTotal SkillID = iota
	SkillAttack
	SkillDefence
	SkillStrength
	SkillConstitution
	SkillRanged
	SkillPrayer
	SkillMagic
	SkillCooking
	SkillWoodcutting
	SkillFletching
	SkillFishing
	SkillFiremaking
	SkillCrafting
	SkillSmithing
	SkillMining
	SkillHerblore
	SkillAgility
	SkillThieving
	SkillSlayer
	SkillFarming
	SkillRunecrafting
	SkillHunter
	SkillConstruction
	SkillSummoning
	SkillDungeoneering
	SkillDivination
	SkillInvention
	SkillArchaeology
	SkillNecromancy
	SkillSailing
)

const (
	standardMaxLevel = 99
	extendedMaxLevel = 120
	virtualMaxLevel  = 126
)

// Skill describes a skill identity.
type Skill struct {
	ID   SkillID
	Name string
	// MaxLevel is the highest level the upstream API reports. Zero for the
	// total skill, which has no cap.
	MaxLevel int
	// VirtualMaxLevel bounds levels derived from experience. Equal to
	// MaxLevel for skills without virtual levels.
	VirtualMaxLevel int
}

// IsTotal reports whether s is the aggregate "overall" skill.
func (s Skill) IsTotal() bool { return s.ID == SkillTotal }

func skill(id SkillID, name string, maxLevel int) Skill {
	return Skill{ID: id, Name: name, MaxLevel: maxLevel, VirtualMaxLevel: virtualMaxLevel}
}

var (
	totalSkill = Skill{ID: SkillTotal, Name: "Total"}

	modernSkills = []Skill{
		totalSkill,
		skill(SkillAttack, "Attack", standardMaxLevel),
		skill(SkillDefence, "Defence", standardMaxLevel),
		skill(SkillStrength, "Strength", standardMaxLevel),
		skill(SkillConstitution, "Constitution", standardMaxLevel),
		skill(SkillRanged, "Ranged", standardMaxLevel),
		skill(SkillPrayer, "Prayer", standardMaxLevel),
		skill(SkillMagic, "Magic", standardMaxLevel),
		skill(SkillCooking, "Cooking", standardMaxLevel),
		skill(SkillWoodcutting, "Woodcutting", standardMaxLevel),
		skill(SkillFletching, "Fletching", standardMaxLevel),
		skill(SkillFishing, "Fishing", standardMaxLevel),
		skill(SkillFiremaking, "Firemaking", standardMaxLevel),
		skill(SkillCrafting, "Crafting", standardMaxLevel),
		skill(SkillSmithing, "Smithing", 110),
		skill(SkillMining, "Mining", 110),
		skill(SkillHerblore, "Herblore", extendedMaxLevel),
		skill(SkillAgility, "Agility", standardMaxLevel),
		skill(SkillThieving, "Thieving", standardMaxLevel),
		skill(SkillSlayer, "Slayer", extendedMaxLevel),
		skill(SkillFarming, "Farming", extendedMaxLevel),
		skill(SkillRunecrafting, "Runecrafting", standardMaxLevel),
		skill(SkillHunter, "Hunter", standardMaxLevel),
		skill(SkillConstruction, "Construction", standardMaxLevel),
		skill(SkillSummoning, "Summoning", standardMaxLevel),
		skill(SkillDungeoneering, "Dungeoneering", extendedMaxLevel),
		skill(SkillDivination, "Divination", standardMaxLevel),
		// Invention follows the elite experience curve; no virtual levels.
		{ID: SkillInvention, Name: "Invention", MaxLevel: extendedMaxLevel, VirtualMaxLevel: extendedMaxLevel},
		skill(SkillArchaeology, "Archaeology", extendedMaxLevel),
		skill(SkillNecromancy, "Necromancy", extendedMaxLevel),
	}

	legacySkills = []Skill{
		totalSkill,
		skill(SkillAttack, "Attack", standardMaxLevel),
		skill(SkillDefence, "Defence", standardMaxLevel),
		skill(SkillStrength, "Strength", standardMaxLevel),
		skill(SkillConstitution, "Hitpoints", standardMaxLevel),
		skill(SkillRanged, "Ranged", standardMaxLevel),
		skill(SkillPrayer, "Prayer", standardMaxLevel),
		skill(SkillMagic, "Magic", standardMaxLevel),
		skill(SkillCooking, "Cooking", standardMaxLevel),
		skill(SkillWoodcutting, "Woodcutting", standardMaxLevel),
		skill(SkillFletching, "Fletching", standardMaxLevel),
		skill(SkillFishing, "Fishing", standardMaxLevel),
		skill(SkillFiremaking, "Firemaking", standardMaxLevel),
		skill(SkillCrafting, "Crafting", standardMaxLevel),
		skill(SkillSmithing, "Smithing", standardMaxLevel),
		skill(SkillMining, "Mining", standardMaxLevel),
		skill(SkillHerblore, "Herblore", standardMaxLevel),
		skill(SkillAgility, "Agility", standardMaxLevel),
		skill(SkillThieving, "Thieving", standardMaxLevel),
		skill(SkillSlayer, "Slayer", standardMaxLevel),
		skill(SkillFarming, "Farming", standardMaxLevel),
		skill(SkillRunecrafting, "Runecraft", standardMaxLevel),
		skill(SkillHunter, "Hunter", standardMaxLevel),
		skill(SkillConstruction, "Construction", standardMaxLevel),
		skill(SkillSailing, "Sailing", standardMaxLevel),
	}
)

// SkillByID returns the modern identity of a skill, falling back to the
// legacy table for skills that only exist there.
func SkillByID(id SkillID) (Skill, bool) {
	for _, s := range modernSkills {
		if s.ID == id {
			return s, true
		}
	}
	for _, s := range legacySkills {
		if s.ID == id {
			return s, true
		}
	}
	return Skill{}, false
}
