package convert_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/okian/playerdata/internal/domain/catalog"
	"github.com/okian/playerdata/internal/domain/convert"
	"github.com/okian/playerdata/internal/domain/highscore"
	"github.com/okian/playerdata/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// liteRecords builds n skill records followed by m activity records.
func liteRecords(n, m int) []string {
	lines := make([]string, 0, n+m)
	for i := 0; i < n; i++ {
		lines = append(lines, "100,99,13034431")
	}
	for i := 0; i < m; i++ {
		lines = append(lines, "-1,-1")
	}
	return lines
}

func TestConvertLite(t *testing.T) {
	ctx := context.Background()
	c := convert.New()

	Convey("Given a modern lite payload", t, func() {
		data := strings.Join([]string{
			"12,2898,5400000000",
			"5,99,200000000",
			"-1,-1",
			"7,98,11805606",
			"40,1200",
		}, "\n") + "\n"

		Convey("When converting it", func() {
			res, err := c.ConvertLite(ctx, data, catalog.Modern)
			So(err, ShouldBeNil)

			Convey("Then skill ordinals ignore interleaved activity records", func() {
				skills := res.Highscore.Skills()
				So(len(skills), ShouldEqual, 3)
				So(skills[0].Skill().ID, ShouldEqual, catalog.SkillTotal)
				So(skills[1].Skill().ID, ShouldEqual, catalog.SkillAttack)
				So(skills[2].Skill().ID, ShouldEqual, catalog.SkillDefence)
				So(skills[2].Level(false), ShouldEqual, 98)
				So(skills[0].Experience(), ShouldEqual, int64(5_400_000_000))
			})

			Convey("Then activity ordinals count activity records only", func() {
				acts := res.Highscore.Activities()
				So(len(acts), ShouldEqual, 2)
				So(acts[0].Activity().ID, ShouldEqual, catalog.ActivityBountyHunter)
				So(acts[0].Ranked(), ShouldBeFalse)
				So(acts[1].Activity().ID, ShouldEqual, catalog.ActivityBountyHunterRogues)
				So(acts[1].Score(), ShouldEqual, int64(1200))
				So(acts[1].Rank(), ShouldEqual, uint64(40))
			})

			Convey("Then the named results point at the snapshot", func() {
				So(res.Keys(), ShouldResemble, []convert.Key{convert.KeySkillHighscore, convert.KeyActivityHighscore})
				So(res.Has(convert.KeyActivityFeed), ShouldBeFalse)
				named := res.Named()
				So(named[convert.KeySkillHighscore], ShouldEqual, res.Highscore)
				So(named[convert.KeyActivityHighscore], ShouldEqual, res.Highscore)
			})

			Convey("Then the raw text is kept verbatim", func() {
				So(res.Highscore.Raw(), ShouldEqual, data)
			})
		})

		Convey("When converting with snapshot options", func() {
			player, _ := model.NewPlayer("Zezima")
			at := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
			res, err := c.Convert(ctx, convert.FormatLite, []byte(data),
				highscore.WithPlayer(player), highscore.WithCapturedAt(at))
			So(err, ShouldBeNil)

			p, ok := res.Highscore.Player()
			So(ok, ShouldBeTrue)
			So(p.Name, ShouldEqual, "Zezima")
			So(res.Highscore.CapturedAt().Equal(at), ShouldBeTrue)
		})
	})

	Convey("Given more skill records than the catalog knows", t, func() {
		modern := catalog.ForRuleset(catalog.Modern)
		lines := liteRecords(modern.SkillCount()+2, 3)
		data := strings.Join(lines, "\n")

		Convey("Then unknown ordinals are skipped without error", func() {
			res, err := c.ConvertLite(ctx, data, catalog.Modern)
			So(err, ShouldBeNil)
			So(len(res.Highscore.Skills()), ShouldEqual, modern.SkillCount())
			So(res.Skipped, ShouldEqual, 2)
		})

		Convey("Then activities after the unknown skills stay aligned", func() {
			res, err := c.ConvertLite(ctx, data, catalog.Modern)
			So(err, ShouldBeNil)
			acts := res.Highscore.Activities()
			So(len(acts), ShouldEqual, 3)
			So(acts[2].Activity().ID, ShouldEqual, catalog.ActivityDominionTower)
		})
	})

	Convey("Given a record with an unsupported field count", t, func() {
		for _, bad := range []string{"1,2,3,4", "42", ""} {
			for pos := 0; pos < 3; pos++ {
				lines := liteRecords(2, 2)
				lines = append(lines[:pos], append([]string{bad}, lines[pos:]...)...)
				if bad == "" && pos == 0 {
					// A leading blank line is trimmed away.
					continue
				}

				_, err := c.ConvertLite(ctx, strings.Join(lines, "\n"), catalog.Modern)
				So(errors.Is(err, convert.ErrMalformedInput), ShouldBeTrue)
				So(convert.KindOf(err), ShouldEqual, convert.ErrMalformedInput)
			}
		}
	})

	Convey("Given a record with a non-numeric field", t, func() {
		_, err := c.ConvertLite(ctx, "1,99,abc\n-1,-1", catalog.Modern)
		So(errors.Is(err, convert.ErrMalformedInput), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "line 1")
	})

	Convey("Given an empty payload", t, func() {
		_, err := c.ConvertLite(ctx, "  \n ", catalog.Modern)
		So(errors.Is(err, convert.ErrMalformedInput), ShouldBeTrue)
	})

	Convey("Given Windows line endings", t, func() {
		res, err := c.ConvertLite(ctx, "1,99,13034431\r\n2,99,13034431\r\n", catalog.Modern)
		So(err, ShouldBeNil)
		So(len(res.Highscore.Skills()), ShouldEqual, 2)
	})

	Convey("Given a legacy lite payload", t, func() {
		data := strings.Join(liteRecords(5, 4), "\n")

		Convey("Then activities resolve in the offset range", func() {
			res, err := c.ConvertLite(ctx, data, catalog.Legacy)
			So(err, ShouldBeNil)
			So(res.Format, ShouldEqual, convert.FormatLegacyLite)
			acts := res.Highscore.Activities()
			So(len(acts), ShouldEqual, 4)
			So(acts[0].Activity().ID, ShouldEqual, catalog.ActivityLegacyLeaguePoints)
			So(acts[0].Ordinal(), ShouldEqual, catalog.LegacyActivityOffset)
			So(acts[3].Activity().ID, ShouldEqual, catalog.ActivityLegacyCluesAll)
			So(res.Keys(), ShouldResemble, []convert.Key{convert.KeyLegacySkillHighscore, convert.KeyLegacyActivityHighscore})
		})
	})

	Convey("Given a catalog that knows nothing", t, func() {
		empty := convert.New(convert.WithCatalog(catalog.New(catalog.Modern, nil, nil)))

		Convey("Then a well-formed payload yields an empty result", func() {
			_, err := empty.ConvertLite(ctx, strings.Join(liteRecords(3, 2), "\n"), catalog.Modern)
			So(errors.Is(err, convert.ErrEmptyResult), ShouldBeTrue)
			So(errors.Is(err, convert.ErrMalformedInput), ShouldBeFalse)
		})
	})
}

func TestConvertLite_SkillRecordCount(t *testing.T) {
	Convey("Given payloads mixing record kinds", t, func() {
		c := convert.New()
		for _, tc := range []struct{ skills, activities int }{{1, 0}, {5, 5}, {12, 1}, {24, 20}} {
			lines := liteRecords(tc.skills, tc.activities)
			// interleave by moving every other activity ahead of the skills
			for i := 0; i < tc.activities; i += 2 {
				lines = append([]string{"-1,-1"}, lines[:len(lines)-1]...)
			}

			res, err := c.ConvertLite(context.Background(), strings.Join(lines, "\n"), catalog.Modern)
			So(err, ShouldBeNil)
			skills := res.Highscore.Skills()
			So(len(skills), ShouldEqual, tc.skills)
			for i, s := range skills {
				So(s.Ordinal(), ShouldEqual, i)
			}
		}
	})
}
