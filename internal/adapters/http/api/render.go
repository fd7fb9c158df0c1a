package api

import (
	"time"

	"github.com/okian/playerdata/internal/domain/convert"
	"github.com/okian/playerdata/internal/domain/feed"
	"github.com/okian/playerdata/internal/domain/highscore"
)

type itemResponse struct {
	Time        time.Time `json:"time"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

type feedResponse struct {
	Player string         `json:"player,omitempty"`
	Items  []itemResponse `json:"items"`
}

type skillResponse struct {
	Ordinal      int    `json:"ordinal"`
	Name         string `json:"name"`
	Rank         uint64 `json:"rank"`
	Level        int    `json:"level"`
	VirtualLevel int    `json:"virtualLevel"`
	Experience   int64  `json:"experience"`
}

type activityResponse struct {
	Ordinal int    `json:"ordinal"`
	Name    string `json:"name"`
	Rank    uint64 `json:"rank"`
	Score   int64  `json:"score"`
}

type snapshotResponse struct {
	Player      string             `json:"player,omitempty"`
	CapturedAt  time.Time          `json:"capturedAt"`
	CombatLevel int                `json:"combatLevel,omitempty"`
	Skills      []skillResponse    `json:"skills"`
	Activities  []activityResponse `json:"activities"`
}

type profileResponse struct {
	CombatLevel      int `json:"combatLevel"`
	QuestsComplete   int `json:"questsComplete"`
	QuestsStarted    int `json:"questsStarted"`
	QuestsNotStarted int `json:"questsNotStarted"`
}

type conversionResponse struct {
	Format    convert.Format    `json:"format"`
	Keys      []convert.Key     `json:"keys"`
	RealName  string            `json:"realName,omitempty"`
	Highscore *snapshotResponse `json:"highscore,omitempty"`
	Feed      *feedResponse     `json:"feed,omitempty"`
	Profile   *profileResponse  `json:"profile,omitempty"`
	Skipped   int               `json:"skipped"`
}

func renderFeed(player string, f feed.Feed) feedResponse {
	items := make([]itemResponse, 0, f.Len())
	for _, it := range f.Items() {
		items = append(items, itemResponse{Time: it.Time, Title: it.Title, Description: it.Description})
	}
	return feedResponse{Player: player, Items: items}
}

func renderSnapshot(s *highscore.Snapshot) snapshotResponse {
	out := snapshotResponse{
		CapturedAt: s.CapturedAt(),
		Skills:     make([]skillResponse, 0, len(s.Skills())),
		Activities: make([]activityResponse, 0, len(s.Activities())),
	}
	if p, ok := s.Player(); ok {
		out.Player = p.Name
	}
	if cl, err := s.CombatLevel(true, false); err == nil {
		out.CombatLevel = cl
	}
	for _, e := range s.Skills() {
		out.Skills = append(out.Skills, skillResponse{
			Ordinal:      e.Ordinal(),
			Name:         e.Name(),
			Rank:         e.Rank(),
			Level:        e.Level(false),
			VirtualLevel: e.Level(true),
			Experience:   e.Experience(),
		})
	}
	for _, e := range s.Activities() {
		out.Activities = append(out.Activities, activityResponse{
			Ordinal: e.Ordinal(),
			Name:    e.Name(),
			Rank:    e.Rank(),
			Score:   e.Score(),
		})
	}
	return out
}

func renderConversion(res convert.Result) conversionResponse {
	out := conversionResponse{
		Format:   res.Format,
		Keys:     res.Keys(),
		RealName: res.RealName,
		Skipped:  res.Skipped,
	}
	if res.Highscore != nil {
		s := renderSnapshot(res.Highscore)
		out.Highscore = &s
	}
	if res.Feed != nil {
		f := renderFeed("", *res.Feed)
		out.Feed = &f
	}
	if p := res.Profile; p != nil {
		out.Profile = &profileResponse{
			CombatLevel:      p.CombatLevel,
			QuestsComplete:   p.QuestsComplete,
			QuestsStarted:    p.QuestsStarted,
			QuestsNotStarted: p.QuestsNotStarted,
		}
	}
	return out
}
