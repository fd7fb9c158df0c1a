package highscore

import "math"

const tableSize = 127

// experienceTable[l] is the experience required to reach level l.
var experienceTable = buildExperienceTable()

func buildExperienceTable() [tableSize]int64 {
	var table [tableSize]int64
	points := 0.0
	for level := 1; level < tableSize; level++ {
		table[level] = int64(math.Floor(points / 4))
		points += math.Floor(float64(level) + 300*math.Pow(2, float64(level)/7))
	}
	return table
}

// ExperienceForLevel returns the experience needed to reach level. Levels
// outside 1..126 are clamped.
func ExperienceForLevel(level int) int64 {
	if level < 1 {
		level = 1
	}
	if level >= tableSize {
		level = tableSize - 1
	}
	return experienceTable[level]
}

// LevelForExperience returns the highest level reachable with xp, bounded by
// maxLevel.
func LevelForExperience(xp int64, maxLevel int) int {
	if maxLevel >= tableSize {
		maxLevel = tableSize - 1
	}
	level := 1
	for l := 2; l <= maxLevel; l++ {
		if experienceTable[l] > xp {
			break
		}
		level = l
	}
	return level
}
