package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/playerdata/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.MaxInputBytes, convey.ShouldEqual, 1<<20)
			convey.So(cfg.SnapshotHistory, convey.ShouldEqual, 10)
			convey.So(cfg.DedupeSize, convey.ShouldEqual, 10_000)
			convey.So(cfg.RequestTimeout(), convey.ShouldEqual, 30*time.Second)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then the default location is UTC", func() {
			loc, err := cfg.Location()
			convey.So(err, convey.ShouldBeNil)
			convey.So(loc, convey.ShouldEqual, time.UTC)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with one invalid setting", t, func() {
		cases := map[string]func(*config.Config){
			"log level":        func(c *config.Config) { c.LogLevel = "loud" },
			"log format":       func(c *config.Config) { c.LogFormat = "xml" },
			"addr":             func(c *config.Config) { c.Addr = " " },
			"max input bytes":  func(c *config.Config) { c.MaxInputBytes = 0 },
			"snapshot history": func(c *config.Config) { c.SnapshotHistory = -1 },
			"request timeout":  func(c *config.Config) { c.RequestTimeoutMS = 0 },
			"timezone":         func(c *config.Config) { c.UpstreamTimezone = "Mars/Olympus_Mons" },
			"dedupe size":      func(c *config.Config) { c.DedupeSize = -1 },
		}
		for name, mutate := range cases {
			convey.Convey("Then an invalid "+name+" is rejected", func() {
				cfg := config.New()
				mutate(cfg)
				err := cfg.Validate()
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})
}
