package model_test

import (
	"errors"
	"testing"

	"github.com/okian/playerdata/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewPlayer(t *testing.T) {
	Convey("Given display names", t, func() {
		Convey("When the name is valid", func() {
			p, err := model.NewPlayer("  Zezima ")
			So(err, ShouldBeNil)
			So(p.Name, ShouldEqual, "Zezima")
			So(p.String(), ShouldEqual, "Zezima")
		})

		Convey("When the name is empty or too long", func() {
			_, err := model.NewPlayer("   ")
			So(errors.Is(err, model.ErrInvalidName), ShouldBeTrue)

			_, err = model.NewPlayer("abcdefghijklm")
			So(errors.Is(err, model.ErrInvalidName), ShouldBeTrue)
		})

		Convey("When the name contains unsupported characters", func() {
			_, err := model.NewPlayer("bad/name")
			So(errors.Is(err, model.ErrInvalidName), ShouldBeTrue)
		})
	})
}

func TestPlayer_Key(t *testing.T) {
	Convey("Given names differing only in case and separators", t, func() {
		a, _ := model.NewPlayer("Iron_Man-1")
		b, _ := model.NewPlayer("iron man 1")

		Convey("Then they share a key", func() {
			So(a.Key(), ShouldEqual, "iron man 1")
			So(a.Same(b), ShouldBeTrue)
		})
	})
}
