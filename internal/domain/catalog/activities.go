package catalog

// ActivityID is the stable identity of an activity. Legacy activities live at
// LegacyActivityOffset and above.
type ActivityID int

// Activity describes a minigame, clue tier or other scored activity.
type Activity struct {
	ID   ActivityID
	Name string
}

// Legacy reports whether the activity belongs to the legacy ruleset.
func (a Activity) Legacy() bool { return a.ID >= LegacyActivityOffset }

// Modern activities.
const (
	ActivityBountyHunter ActivityID = iota
	ActivityBountyHunterRogues
	ActivityDominionTower
	ActivityCrucible
	ActivityCastleWars
	ActivityBarbarianAssaultAttackers
	ActivityBarbarianAssaultDefenders
	ActivityBarbarianAssaultCollectors
	ActivityBarbarianAssaultHealers
	ActivityDuelTournament
	ActivityMobilisingArmies
	ActivityConquest
	ActivityFistOfGuthix
	ActivityGielinorGamesAthletics
	ActivityGielinorGamesResourceRace
	ActivityWorldEventArmadylContribution
	ActivityWorldEventBandosContribution
	ActivityWorldEventArmadylKills
	ActivityWorldEventBandosKills
	ActivityHeistGuard
	ActivityHeistRobber
	ActivityCabbageFacepunchBonanza
	ActivityCowTipping
	ActivityRatsKilled
	ActivityRuneScore
	ActivityCluesEasy
	ActivityCluesMedium
	ActivityCluesHard
	ActivityCluesElite
	ActivityCluesMaster
)

// Legacy activities.
const (
	ActivityLegacyLeaguePoints ActivityID = LegacyActivityOffset + iota
	ActivityLegacyBountyHunterHunter
	ActivityLegacyBountyHunterRogue
	ActivityLegacyCluesAll
	ActivityLegacyCluesBeginner
	ActivityLegacyCluesEasy
	ActivityLegacyCluesMedium
	ActivityLegacyCluesHard
	ActivityLegacyCluesElite
	ActivityLegacyCluesMaster
	ActivityLegacyLastManStanding
	ActivityLegacyPvPArena
	ActivityLegacySoulWarsZeal
	ActivityLegacyRiftsClosed
)

var (
	modernActivities = []Activity{
		{ActivityBountyHunter, "Bounty Hunter"},
		{ActivityBountyHunterRogues, "B.H. Rogues"},
		{ActivityDominionTower, "Dominion Tower"},
		{ActivityCrucible, "The Crucible"},
		{ActivityCastleWars, "Castle Wars Games"},
		{ActivityBarbarianAssaultAttackers, "B.A. Attackers"},
		{ActivityBarbarianAssaultDefenders, "B.A. Defenders"},
		{ActivityBarbarianAssaultCollectors, "B.A. Collectors"},
		{ActivityBarbarianAssaultHealers, "B.A. Healers"},
		{ActivityDuelTournament, "Duel Tournament"},
		{ActivityMobilisingArmies, "Mobilising Armies"},
		{ActivityConquest, "Conquest"},
		{ActivityFistOfGuthix, "Fist of Guthix"},
		{ActivityGielinorGamesAthletics, "GG: Athletics"},
		{ActivityGielinorGamesResourceRace, "GG: Resource Race"},
		{ActivityWorldEventArmadylContribution, "WE2: Armadyl Lifetime Contribution"},
		{ActivityWorldEventBandosContribution, "WE2: Bandos Lifetime Contribution"},
		{ActivityWorldEventArmadylKills, "WE2: Armadyl PvP Kills"},
		{ActivityWorldEventBandosKills, "WE2: Bandos PvP Kills"},
		{ActivityHeistGuard, "Heist Guard Level"},
		{ActivityHeistRobber, "Heist Robber Level"},
		{ActivityCabbageFacepunchBonanza, "CFP: 5 Game Average"},
		{ActivityCowTipping, "AF15: Cow Tipping"},
		{ActivityRatsKilled, "AF15: Rats Killed After The Miniquest"},
		{ActivityRuneScore, "RuneScore"},
		{ActivityCluesEasy, "Clue Scrolls Easy"},
		{ActivityCluesMedium, "Clue Scrolls Medium"},
		{ActivityCluesHard, "Clue Scrolls Hard"},
		{ActivityCluesElite, "Clue Scrolls Elite"},
		{ActivityCluesMaster, "Clue Scrolls Master"},
	}

	legacyActivities = []Activity{
		{ActivityLegacyLeaguePoints, "League Points"},
		{ActivityLegacyBountyHunterHunter, "Bounty Hunter - Hunter"},
		{ActivityLegacyBountyHunterRogue, "Bounty Hunter - Rogue"},
		{ActivityLegacyCluesAll, "Clue Scrolls (all)"},
		{ActivityLegacyCluesBeginner, "Clue Scrolls (beginner)"},
		{ActivityLegacyCluesEasy, "Clue Scrolls (easy)"},
		{ActivityLegacyCluesMedium, "Clue Scrolls (medium)"},
		{ActivityLegacyCluesHard, "Clue Scrolls (hard)"},
		{ActivityLegacyCluesElite, "Clue Scrolls (elite)"},
		{ActivityLegacyCluesMaster, "Clue Scrolls (master)"},
		{ActivityLegacyLastManStanding, "LMS - Rank"},
		{ActivityLegacyPvPArena, "PvP Arena - Rank"},
		{ActivityLegacySoulWarsZeal, "Soul Wars Zeal"},
		{ActivityLegacyRiftsClosed, "Rifts closed"},
	}
)

var (
	modernCatalog = Catalog{ruleset: Modern, skills: modernSkills, activities: modernActivities}
	legacyCatalog = Catalog{ruleset: Legacy, skills: legacySkills, activities: legacyActivities, offset: LegacyActivityOffset}
)

// ActivityByID returns the identity of an activity from either ruleset.
func ActivityByID(id ActivityID) (Activity, bool) {
	c := modernCatalog
	if id >= LegacyActivityOffset {
		c = legacyCatalog
	}
	return c.ActivityAt(int(id))
}
