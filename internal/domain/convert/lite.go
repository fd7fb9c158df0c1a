package convert

import (
	"context"
	"strconv"
	"strings"

	"github.com/okian/playerdata/internal/domain/catalog"
	"github.com/okian/playerdata/internal/domain/highscore"
	"github.com/okian/playerdata/pkg/logger"
)

const (
	skillFields    = 3 // rank,level,experience
	activityFields = 2 // rank,score
)

// ConvertLite decodes the comma-delimited lite format.
//
// Records are classified by field count alone. Skill and activity ordinals
// advance independently in order of appearance, including for records whose
// ordinal is not catalogued; those are skipped so later records stay aligned.
func (c *Converter) ConvertLite(ctx context.Context, data string, ruleset catalog.Ruleset, opts ...highscore.Option) (Result, error) {
	format := FormatLite
	if ruleset == catalog.Legacy {
		format = FormatLegacyLite
	}
	cat := c.catalog(ruleset)

	var (
		skills      []highscore.SkillEntry
		activities  []highscore.ActivityEntry
		skillPos    int
		activityPos int
		skipped     int
	)

	for i, line := range strings.Split(strings.TrimSpace(data), "\n") {
		fields := strings.Split(strings.TrimSuffix(line, "\r"), ",")

		switch len(fields) {
		case skillFields:
			ordinal := skillPos
			skillPos++
			skill, ok := cat.SkillAt(ordinal)
			if !ok {
				skipped++
				c.logger.Debug(ctx, "skipping uncatalogued skill",
					logger.String("ruleset", ruleset.String()), logger.Int("ordinal", ordinal))
				continue
			}
			nums, err := parseFields(fields)
			if err != nil {
				return Result{}, failure(format, ErrMalformedInput, err, "line %d", i+1)
			}
			skills = append(skills, highscore.NewSkillEntry(skill, nums[0], int(nums[1]), nums[2]))

		case activityFields:
			ordinal := cat.ActivityOrdinal(activityPos)
			activityPos++
			activity, ok := cat.ActivityAt(ordinal)
			if !ok {
				skipped++
				c.logger.Debug(ctx, "skipping uncatalogued activity",
					logger.String("ruleset", ruleset.String()), logger.Int("ordinal", ordinal))
				continue
			}
			nums, err := parseFields(fields)
			if err != nil {
				return Result{}, failure(format, ErrMalformedInput, err, "line %d", i+1)
			}
			activities = append(activities, highscore.NewActivityEntry(activity, nums[0], nums[1]))

		default:
			return Result{}, failure(format, ErrMalformedInput, nil,
				"line %d has %d fields, expected %d or %d", i+1, len(fields), activityFields, skillFields)
		}
	}

	if len(skills) == 0 && len(activities) == 0 {
		return Result{}, failure(format, ErrEmptyResult, nil, "no highscore entries in %d records", skillPos+activityPos)
	}

	snapshot, err := highscore.New(data, skills, activities, opts...)
	if err != nil {
		return Result{}, failure(format, ErrMalformedInput, err, "build snapshot")
	}

	return Result{Format: format, Highscore: snapshot, Skipped: skipped}, nil
}

func parseFields(fields []string) ([]int64, error) {
	nums := make([]int64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}
