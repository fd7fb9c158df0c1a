package convert_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/okian/playerdata/internal/domain/convert"
	. "github.com/smartystreets/goconvey/convey"
)

func rss(title string, items ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel>`)
	if title != "" {
		b.WriteString("<title>" + title + "</title>")
	}
	for _, it := range items {
		b.WriteString(it)
	}
	b.WriteString("</channel></rss>")
	return b.String()
}

func rssItem(title, description, pubDate string) string {
	return "<item><title>" + title + "</title><description>" + description +
		"</description><pubDate>" + pubDate + "</pubDate></item>"
}

func TestConvertMarkup(t *testing.T) {
	ctx := context.Background()
	c := convert.New()

	Convey("Given an adventurer's log feed", t, func() {
		doc := rss("Adventurer's log: Zezima",
			rssItem("Levelled up Invention.", "I levelled my Invention skill, I am now level 120.", "Wed, 14 Oct 2026 18:02:00 GMT"),
			rssItem("I killed 5 bosses.", "I killed 5 boss monsters in Daemonheim.", "Tue, 13 Oct 2026 00:00:00 +0100"),
		)

		Convey("When converting it", func() {
			res, err := c.ConvertMarkup(ctx, []byte(doc))
			So(err, ShouldBeNil)

			Convey("Then the name follows the last colon of the channel title", func() {
				So(res.RealName, ShouldEqual, "Zezima")
			})

			Convey("Then every item is kept in document order", func() {
				items := res.Feed.Items()
				So(len(items), ShouldEqual, 2)
				So(items[0].Title, ShouldEqual, "Levelled up Invention.")
				So(items[1].Description, ShouldEqual, "I killed 5 boss monsters in Daemonheim.")
				So(items[1].Time.Equal(time.Date(2026, 10, 12, 23, 0, 0, 0, time.UTC)), ShouldBeTrue)
			})

			Convey("Then only the feed and name are produced", func() {
				So(res.Highscore, ShouldBeNil)
				So(res.Keys(), ShouldResemble, []convert.Key{convert.KeyActivityFeed, convert.KeyRealName})
			})
		})
	})

	Convey("Given channel titles of different shapes", t, func() {
		item := rssItem("a", "b", "Wed, 14 Oct 2026 18:02:00 GMT")
		for title, want := range map[string]string{
			"Adventurer's log: Zezima":  "Zezima",
			"Log: of: many : Lord Ruby": "Lord Ruby",
			"Zezima":                    "Zezima",
		} {
			res, err := c.ConvertMarkup(ctx, []byte(rss(title, item)))
			So(err, ShouldBeNil)
			So(res.RealName, ShouldEqual, want)
		}
	})

	Convey("Given a feed with a blank item field", t, func() {
		for _, item := range []string{
			rssItem(" ", "description", "Wed, 14 Oct 2026 18:02:00 GMT"),
			rssItem("title", "", "Wed, 14 Oct 2026 18:02:00 GMT"),
		} {
			doc := rss("Adventurer's log: Zezima", rssItem("ok", "ok", "Wed, 14 Oct 2026 18:02:00 GMT"), item)
			_, err := c.ConvertMarkup(ctx, []byte(doc))
			So(errors.Is(err, convert.ErrMalformedInput), ShouldBeTrue)
		}
	})

	Convey("Given documents the feed cannot be read from", t, func() {
		item := rssItem("a", "b", "Wed, 14 Oct 2026 18:02:00 GMT")
		for name, doc := range map[string]string{
			"no items":        rss("Adventurer's log: Zezima"),
			"no title":        rss("", item),
			"empty name":      rss("Adventurer's log:  ", item),
			"bad date":        rss("Adventurer's log: Zezima", rssItem("a", "b", "last tuesday")),
			"unclosed tag":    strings.TrimSuffix(rss("Adventurer's log: Zezima", item), "</rss>"),
			"two roots":       rss("Adventurer's log: Zezima", item) + "<rss/>",
			"not xml":         "Zezima was here",
			"empty":           "",
			"mismatched tags": `<rss><channel><title>x: y</title><item></channel></item></rss>`,
			"trailing text":   rss("Adventurer's log: Zezima", item) + "garbage",
			"leading text":    "garbage" + strings.TrimPrefix(rss("Adventurer's log: Zezima", item), `<?xml version="1.0" encoding="UTF-8"?>`),
			"unknown zone":    rss("Adventurer's log: Zezima", rssItem("a", "b", "Wed, 14 Oct 2026 18:02:00 XYZ")),
		} {
			Convey("Then a document with "+name+" is malformed", func() {
				_, err := c.ConvertMarkup(ctx, []byte(doc))
				So(errors.Is(err, convert.ErrMalformedInput), ShouldBeTrue)
			})
		}
	})

	Convey("Given pubDates in named North American zones", t, func() {
		doc := rss("Adventurer's log: Zezima",
			rssItem("a", "b", "Wed, 14 Oct 2026 18:02:00 EST"),
			rssItem("c", "d", "Tue, 13 Oct 2026 17:00:00 PDT"),
			rssItem("e", "f", "Mon, 12 Oct 2026 09:15:00 GMT"))

		res, err := c.ConvertMarkup(ctx, []byte(doc))
		So(err, ShouldBeNil)
		items := res.Feed.Items()
		So(items[0].Time.Equal(time.Date(2026, 10, 14, 23, 2, 0, 0, time.UTC)), ShouldBeTrue)
		So(items[1].Time.Equal(time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)), ShouldBeTrue)
		So(items[2].Time.Equal(time.Date(2026, 10, 12, 9, 15, 0, 0, time.UTC)), ShouldBeTrue)
	})

	Convey("Given a feed declared in ISO-8859-1", t, func() {
		doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><rss version=\"2.0\"><channel>" +
			"<title>Adventurer's log: Jos\xe9</title>" +
			rssItem("Caf\xe9 visit", "I visited a caf\xe9.", "Wed, 14 Oct 2026 18:02:00 GMT") +
			"</channel></rss>"

		res, err := c.ConvertMarkup(ctx, []byte(doc))
		So(err, ShouldBeNil)
		So(res.RealName, ShouldEqual, "José")
		first, _ := res.Feed.First()
		So(first.Title, ShouldEqual, "Café visit")
	})
}

func TestConvert_Dispatch(t *testing.T) {
	ctx := context.Background()

	Convey("Given the format names", t, func() {
		for _, f := range convert.Formats {
			parsed, err := convert.ParseFormat(string(f))
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, f)
		}

		_, err := convert.ParseFormat("csv")
		So(errors.Is(err, convert.ErrUnknownFormat), ShouldBeTrue)

		So(convert.FormatMarkup.YieldsFeed(), ShouldBeTrue)
		So(convert.FormatMarkup.YieldsHighscore(), ShouldBeFalse)
		So(convert.FormatLite.YieldsFeed(), ShouldBeFalse)
		So(convert.FormatStructured.YieldsHighscore(), ShouldBeTrue)
	})

	Convey("Given Convert with each format", t, func() {
		c := convert.New()

		res, err := c.Convert(ctx, convert.FormatLegacyLite, []byte("1,99,13034431\n-1,-1"))
		So(err, ShouldBeNil)
		So(res.Format, ShouldEqual, convert.FormatLegacyLite)

		res, err = c.Convert(ctx, convert.FormatStructured, []byte(structuredProfile))
		So(err, ShouldBeNil)
		So(res.Format, ShouldEqual, convert.FormatStructured)

		res, err = c.Convert(ctx, convert.FormatMarkup, []byte(rss("Log: Zezima", rssItem("a", "b", "Wed, 14 Oct 2026 18:02:00 GMT"))))
		So(err, ShouldBeNil)
		So(res.Format, ShouldEqual, convert.FormatMarkup)

		_, err = c.Convert(ctx, convert.Format("csv"), nil)
		So(errors.Is(err, convert.ErrUnknownFormat), ShouldBeTrue)
		So(convert.KindOf(err), ShouldBeNil)
	})

	Convey("Given a failed conversion", t, func() {
		_, err := convert.New().Convert(ctx, convert.FormatLite, []byte("1,2,3,4"))

		var ce *convert.ConversionError
		So(errors.As(err, &ce), ShouldBeTrue)
		So(ce.Format, ShouldEqual, convert.FormatLite)
		So(ce.Kind, ShouldEqual, convert.ErrMalformedInput)
		So(err.Error(), ShouldStartWith, "convert lite: malformed input")
	})
}
