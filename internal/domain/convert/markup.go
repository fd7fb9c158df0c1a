package convert

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/okian/playerdata/internal/domain/feed"
	"golang.org/x/net/html/charset"
)

// rssDocument maps the parts of an RSS 2.0 document the feed needs:
// /rss/channel/title and /rss/channel/item.
type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title *string   `xml:"title"`
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// ConvertMarkup decodes an RSS activity feed and the player's display name,
// taken from the channel title after its last colon.
//
// Items are never dropped: the format has no ordinals to realign on, so an
// item with an empty title or description fails the whole conversion.
func (c *Converter) ConvertMarkup(ctx context.Context, data []byte) (Result, error) {
	const format = FormatMarkup

	if err := checkWellFormed(data); err != nil {
		return Result{}, failure(format, ErrMalformedInput, err, "document is not well-formed")
	}

	var doc rssDocument
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&doc); err != nil {
		return Result{}, failure(format, ErrMalformedInput, err, "decode rss")
	}
	if len(doc.Channel.Items) == 0 {
		return Result{}, failure(format, ErrMalformedInput, nil, "no items at /rss/channel/item")
	}

	items := make([]feed.Item, 0, len(doc.Channel.Items))
	for i, ri := range doc.Channel.Items {
		at, err := parseTime(ri.PubDate, time.UTC, markupDateLayouts...)
		if err != nil {
			return Result{}, failure(format, ErrMalformedInput, err, "item %d pubDate", i)
		}
		it, err := feed.NewItem(at, ri.Title, ri.Description)
		if err != nil {
			return Result{}, failure(format, ErrMalformedInput, err, "item %d", i)
		}
		items = append(items, it)
	}

	if doc.Channel.Title == nil || strings.TrimSpace(*doc.Channel.Title) == "" {
		return Result{}, failure(format, ErrMalformedInput, nil, "no title at /rss/channel/title")
	}
	name := displayName(*doc.Channel.Title)
	if name == "" {
		return Result{}, failure(format, ErrMalformedInput, nil, "channel title %q has no player name", *doc.Channel.Title)
	}

	activityFeed := feed.New(items...)
	return Result{Format: format, Feed: &activityFeed, RealName: name}, nil
}

// displayName returns the text after the last colon of a channel title such as
// "Adventurer's log: Zezima", or the whole title when it has no colon.
func displayName(title string) string {
	return strings.TrimSpace(title[strings.LastIndex(title, ":")+1:])
}

func checkWellFormed(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel
	roots := 0
	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		switch tok := tok.(type) {
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(tok)) > 0 {
				return errors.New("text outside the root element")
			}
		case xml.StartElement:
			if depth == 0 {
				roots++
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if roots != 1 {
		return errors.New("document must have exactly one root element")
	}
	return nil
}
