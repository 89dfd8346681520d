package repository_test

import (
	"context"
	"testing"
	"time"

	repository "github.com/okian/regista/internal/adapters/repository"
	model "github.com/okian/regista/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func dataset(source, league string, names ...string) repository.Dataset {
	rows := make([]model.Player, len(names))
	for i, n := range names {
		rows[i] = model.Player{Name: n, League: league}
	}
	return repository.Dataset{
		Source:   source,
		League:   league,
		Rows:     rows,
		LoadedAt: time.Now(),
	}
}

func TestMemStore(t *testing.T) {
	Convey("Given an in-memory dataset registry", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()

		Convey("When the store is empty", func() {
			Convey("Then counts and views should be empty", func() {
				So(store.Count(ctx), ShouldEqual, 0)
				So(store.RowCount(ctx), ShouldEqual, 0)
				So(store.List(ctx), ShouldBeEmpty)
				So(store.Merged(ctx, ""), ShouldBeEmpty)
			})

			Convey("Then getting an unknown id should fail", func() {
				_, err := store.Get(ctx, "missing")
				So(err, ShouldEqual, repository.ErrNotFound)
			})
		})

		Convey("When datasets are stored", func() {
			So(store.Put(ctx, dataset("preloaded", "", "a", "b")), ShouldBeNil)
			So(store.Put(ctx, dataset("upload-1", "Serie A", "c")), ShouldBeNil)

			Convey("Then they should be listed in insertion order with row counts", func() {
				infos := store.List(ctx)
				So(infos, ShouldHaveLength, 2)
				So(infos[0].Source, ShouldEqual, "preloaded")
				So(infos[0].Rows, ShouldEqual, 2)
				So(infos[1].Source, ShouldEqual, "upload-1")
				So(infos[0].ID, ShouldNotBeEmpty)
			})

			Convey("Then counts should track datasets and rows", func() {
				So(store.Count(ctx), ShouldEqual, 2)
				So(store.RowCount(ctx), ShouldEqual, 3)
			})

			Convey("Then the merged view should preserve insertion order", func() {
				rows := store.Merged(ctx, "")
				So(rows, ShouldHaveLength, 3)
				So(rows[0].Name, ShouldEqual, "a")
				So(rows[1].Name, ShouldEqual, "b")
				So(rows[2].Name, ShouldEqual, "c")
			})

			Convey("Then the merged view should filter by league", func() {
				rows := store.Merged(ctx, "Serie A")
				So(rows, ShouldHaveLength, 1)
				So(rows[0].Name, ShouldEqual, "c")
			})

			Convey("And a dataset with the same source arrives", func() {
				So(store.Put(ctx, dataset("preloaded", "", "x", "y", "z")), ShouldBeNil)

				Convey("Then it should replace in place, keeping its slot", func() {
					So(store.Count(ctx), ShouldEqual, 2)
					infos := store.List(ctx)
					So(infos[0].Source, ShouldEqual, "preloaded")
					So(infos[0].Rows, ShouldEqual, 3)
					rows := store.Merged(ctx, "")
					So(rows[0].Name, ShouldEqual, "x")
				})
			})

			Convey("And a dataset is removed", func() {
				infos := store.List(ctx)
				So(store.Remove(ctx, infos[1].ID), ShouldBeNil)

				Convey("Then it should disappear from every view", func() {
					So(store.Count(ctx), ShouldEqual, 1)
					So(store.Merged(ctx, ""), ShouldHaveLength, 2)
					_, err := store.Get(ctx, infos[1].ID)
					So(err, ShouldEqual, repository.ErrNotFound)
				})
			})

			Convey("And removal of an unknown id is requested", func() {
				Convey("Then it should report not found", func() {
					So(store.Remove(ctx, "nope"), ShouldEqual, repository.ErrNotFound)
				})
			})
		})

		Convey("When an empty id is used", func() {
			Convey("Then Get and Remove should reject it", func() {
				_, err := store.Get(ctx, "")
				So(err, ShouldEqual, repository.ErrEmptyID)
				So(store.Remove(ctx, ""), ShouldEqual, repository.ErrEmptyID)
			})
		})
	})
}
