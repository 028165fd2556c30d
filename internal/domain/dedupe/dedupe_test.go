package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	dedupe "github.com/okian/fittrack/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given a new InMemoryDeduper", t, func() {
		ctx := context.Background()

		Convey("When creating a deduper with default options", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("Then it should start empty", func() {
				So(d, ShouldNotBeNil)
				So(d.Size(), ShouldEqual, 0)
			})
		})

		Convey("When recording packages", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("And the package is new", func() {
				seen := d.SeenAndRecord(ctx, "pkg-1")

				Convey("Then it should return false and record the id", func() {
					So(seen, ShouldBeFalse)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the package was already seen", func() {
				d.SeenAndRecord(ctx, "pkg-1")
				seen := d.SeenAndRecord(ctx, "pkg-1")

				Convey("Then it should return true", func() {
					So(seen, ShouldBeTrue)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the id is empty", func() {
				So(d.SeenAndRecord(ctx, ""), ShouldBeFalse)
				So(d.SeenAndRecord(ctx, ""), ShouldBeFalse)

				Convey("Then nothing should be recorded", func() {
					So(d.Size(), ShouldEqual, 0)
				})
			})
		})

		Convey("When unrecording a package", func() {
			d := dedupe.NewInMemoryDeduper()
			d.SeenAndRecord(ctx, "pkg-1")
			d.Unrecord(ctx, "pkg-1")

			Convey("Then it should be accepted again", func() {
				So(d.Size(), ShouldEqual, 0)
				So(d.SeenAndRecord(ctx, "pkg-1"), ShouldBeFalse)
			})

			Convey("And unrecording an unknown id should be a no-op", func() {
				d.Unrecord(ctx, "missing")
				So(d.Size(), ShouldEqual, 0)
			})
		})
	})
}

func TestInMemoryDeduperBounds(t *testing.T) {
	Convey("Given a deduper bounded to 3 ids", t, func() {
		ctx := context.Background()
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))

		for i := 1; i <= 4; i++ {
			d.SeenAndRecord(ctx, fmt.Sprintf("pkg-%d", i))
		}

		Convey("Then the oldest id should be forgotten first", func() {
			So(d.Size(), ShouldEqual, 3)
			So(d.SeenAndRecord(ctx, "pkg-4"), ShouldBeTrue)
			So(d.SeenAndRecord(ctx, "pkg-3"), ShouldBeTrue)
			So(d.SeenAndRecord(ctx, "pkg-1"), ShouldBeFalse)
		})
	})

	Convey("Given a bounded deduper with an unrecorded id", t, func() {
		ctx := context.Background()
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))

		d.SeenAndRecord(ctx, "a")
		d.SeenAndRecord(ctx, "b")
		d.Unrecord(ctx, "b")
		d.SeenAndRecord(ctx, "c")
		d.SeenAndRecord(ctx, "d")

		Convey("Then the freed slot should not cost a live id", func() {
			So(d.Size(), ShouldEqual, 3)
			So(d.SeenAndRecord(ctx, "a"), ShouldBeTrue)
			So(d.SeenAndRecord(ctx, "c"), ShouldBeTrue)
			So(d.SeenAndRecord(ctx, "d"), ShouldBeTrue)
		})

		Convey("And the bound should apply once it is hit again", func() {
			So(d.SeenAndRecord(ctx, "e"), ShouldBeFalse)
			So(d.Size(), ShouldEqual, 3)
			So(d.SeenAndRecord(ctx, "c"), ShouldBeTrue)
			So(d.SeenAndRecord(ctx, "a"), ShouldBeFalse)
		})
	})

	Convey("Given an unbounded deduper", t, func() {
		ctx := context.Background()
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(0))

		for i := 0; i < 1000; i++ {
			d.SeenAndRecord(ctx, fmt.Sprintf("pkg-%d", i))
		}

		Convey("Then every id should be kept", func() {
			So(d.Size(), ShouldEqual, 1000)
			So(d.SeenAndRecord(ctx, "pkg-0"), ShouldBeTrue)
		})

		Convey("And unrecord should still work", func() {
			d.Unrecord(ctx, "pkg-0")
			So(d.Size(), ShouldEqual, 999)
		})
	})
}

func TestInMemoryDeduperConcurrency(t *testing.T) {
	Convey("Given a deduper shared by goroutines", t, func() {
		ctx := context.Background()
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(0))

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			fresh int
		)
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					if !d.SeenAndRecord(ctx, fmt.Sprintf("pkg-%d", i)) {
						mu.Lock()
						fresh++
						mu.Unlock()
					}
				}
			}()
		}
		wg.Wait()

		Convey("Then every id should be recorded exactly once", func() {
			So(fresh, ShouldEqual, 100)
			So(d.Size(), ShouldEqual, 100)
		})
	})
}
