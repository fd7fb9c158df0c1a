package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/okian/playerdata/internal/domain/catalog"
	"github.com/okian/playerdata/internal/domain/feed"
	"github.com/okian/playerdata/internal/domain/highscore"
	"github.com/okian/playerdata/pkg/logger"
)

const (
	// structuredDateLayout is the activity date format, e.g. "14-Oct-2026 18:02".
	structuredDateLayout = "02-Jan-2006 15:04"
	// Structured experience is reported in tenths.
	experienceScale = 10
)

type structuredProfile struct {
	Error            json.RawMessage      `json:"error"`
	Name             string               `json:"name"`
	Rank             json.RawMessage      `json:"rank"`
	TotalSkill       int                  `json:"totalskill"`
	TotalXP          int64                `json:"totalxp"`
	CombatLevel      int                  `json:"combatlevel"`
	QuestsComplete   int                  `json:"questscomplete"`
	QuestsStarted    int                  `json:"questsstarted"`
	QuestsNotStarted int                  `json:"questsnotstarted"`
	SkillValues      []structuredSkill    `json:"skillvalues"`
	Activities       []structuredHeadline `json:"activities"`
}

type structuredSkill struct {
	ID    int    `json:"id"`
	XP    int64  `json:"xp"`
	Level int    `json:"level"`
	Rank  *int64 `json:"rank"`
}

type structuredHeadline struct {
	Date    string `json:"date"`
	Text    string `json:"text"`
	Details string `json:"details"`
}

// ConvertStructured decodes the structured JSON profile format into a skill
// snapshot, an activity feed and the player's display name.
//
// Skill IDs in this format are zero-based, one below the lite ordinals, and
// experience is in tenths. A total entry is appended from the aggregate
// fields.
func (c *Converter) ConvertStructured(ctx context.Context, data []byte, opts ...highscore.Option) (Result, error) {
	const format = FormatStructured

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Result{}, failure(format, ErrMalformedInput, nil, "payload is not a JSON object")
	}

	var profile structuredProfile
	if err := json.Unmarshal(trimmed, &profile); err != nil {
		return Result{}, failure(format, ErrMalformedInput, err, "decode profile")
	}
	if len(profile.Error) > 0 && string(profile.Error) != "null" {
		return Result{}, failure(format, ErrRemoteError, nil, "upstream reported %s", string(profile.Error))
	}
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		return Result{}, failure(format, ErrMalformedInput, nil, "profile has no name")
	}

	cat := c.catalog(catalog.Modern)
	skills := make([]highscore.SkillEntry, 0, len(profile.SkillValues)+1)
	skipped := 0
	for _, sv := range profile.SkillValues {
		ordinal := sv.ID + 1
		skill, ok := cat.SkillAt(ordinal)
		// The total is built from the aggregate fields below.
		if !ok || skill.IsTotal() {
			skipped++
			c.logger.Debug(ctx, "skipping uncatalogued skill", logger.String("format", string(format)), logger.Int("ordinal", ordinal))
			continue
		}
		var rank int64
		if sv.Rank != nil {
			rank = *sv.Rank
		}
		skills = append(skills, highscore.NewSkillEntry(skill, rank, sv.Level, sv.XP/experienceScale))
	}

	total, _ := cat.SkillAt(int(catalog.SkillTotal))
	skills = append(skills, highscore.NewSkillEntry(total, aggregateRank(profile.Rank), profile.TotalSkill, profile.TotalXP))

	snapshot, err := highscore.New(string(data), skills, nil, opts...)
	if err != nil {
		return Result{}, failure(format, ErrMalformedInput, err, "build snapshot")
	}

	items := make([]feed.Item, 0, len(profile.Activities))
	for i, a := range profile.Activities {
		at, err := parseTime(a.Date, c.location, structuredDateLayout)
		if err != nil {
			return Result{}, failure(format, ErrMalformedInput, err, "activity %d date", i)
		}
		it, err := feed.NewItem(at, a.Text, a.Details)
		if err != nil {
			return Result{}, failure(format, ErrMalformedInput, err, "activity %d", i)
		}
		items = append(items, it)
	}
	activityFeed := feed.New(items...)

	return Result{
		Format:    format,
		Highscore: snapshot,
		Feed:      &activityFeed,
		RealName:  name,
		Profile: &Profile{
			CombatLevel:      profile.CombatLevel,
			QuestsComplete:   profile.QuestsComplete,
			QuestsStarted:    profile.QuestsStarted,
			QuestsNotStarted: profile.QuestsNotStarted,
		},
		Skipped: skipped,
	}, nil
}

// aggregateRank reads the overall rank, which upstream sends as a string with
// thousands separators ("1,234"). Absent or non-numeric ranks read as 0.
func aggregateRank(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(raw)
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
