package file_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	file "github.com/okian/regista/internal/adapters/datasource/file"
	analysis "github.com/okian/regista/internal/domain/analysis"
	. "github.com/smartystreets/goconvey/convey"
)

const sampleCSV = `Rk,Player,Pos,Squad,Comp,Age,90s,PrgDist
1,Pedri,MF,Barcelona,es La Liga,21,28.5,5200
2,Bukayo Saka,FW,Arsenal,eng Premier League,22,30.1,3100
`

func TestLoader(t *testing.T) {
	Convey("Given a preloaded data file", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		path := filepath.Join(dir, "big5_data.csv")
		So(os.WriteFile(path, []byte(sampleCSV), 0o644), ShouldBeNil)

		Convey("When loading the file", func() {
			loader := file.NewLoader(path, nil)
			ds, err := loader.Load(ctx)

			Convey("Then the dataset should carry the preloaded source label", func() {
				So(err, ShouldBeNil)
				So(ds.Source, ShouldEqual, file.PreloadedSource)
				So(ds.Rows, ShouldHaveLength, 2)
				So(ds.LoadedAt, ShouldHappenWithin, time.Minute, time.Now())
			})
		})

		Convey("When the file does not exist", func() {
			loader := file.NewLoader(filepath.Join(dir, "missing.csv"), nil)
			_, err := loader.Load(ctx)

			Convey("Then loading should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the file is not an FBRef export", func() {
			bad := filepath.Join(dir, "bad.csv")
			So(os.WriteFile(bad, []byte("a,b,c\n1,2,3\n"), 0o644), ShouldBeNil)
			loader := file.NewLoader(bad, nil)
			_, err := loader.Load(ctx)

			Convey("Then the schema error should propagate", func() {
				So(err, ShouldNotBeNil)
				So(analysis.IsSchemaError(err), ShouldBeTrue)
			})
		})
	})
}

func TestMonitor(t *testing.T) {
	Convey("Given a monitor on a data file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "big5_data.csv")
		So(os.WriteFile(path, []byte(sampleCSV), 0o644), ShouldBeNil)

		monitor, err := file.NewMonitor(path, nil)
		So(err, ShouldBeNil)

		Convey("When the file is rewritten", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			reloaded := make(chan struct{}, 1)
			done := make(chan error, 1)
			go func() {
				done <- monitor.Watch(ctx, func(context.Context) error {
					select {
					case reloaded <- struct{}{}:
					default:
					}
					return nil
				})
			}()

			// Give the watch loop a moment to start before writing.
			time.Sleep(50 * time.Millisecond)
			So(os.WriteFile(path, []byte(sampleCSV), 0o644), ShouldBeNil)

			Convey("Then the reload callback should fire", func() {
				select {
				case <-reloaded:
				case <-time.After(2 * time.Second):
					So("reload did not fire", ShouldBeEmpty)
				}
				cancel()
				So(<-done, ShouldBeNil)
			})
		})

		Convey("When the file is rewritten in a quick burst", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			var reloads atomic.Int32
			reloaded := make(chan struct{}, 1)
			done := make(chan error, 1)
			go func() {
				done <- monitor.Watch(ctx, func(context.Context) error {
					reloads.Add(1)
					select {
					case reloaded <- struct{}{}:
					default:
					}
					return nil
				})
			}()

			time.Sleep(50 * time.Millisecond)
			for i := 0; i < 5; i++ {
				So(os.WriteFile(path, []byte(sampleCSV), 0o644), ShouldBeNil)
				time.Sleep(30 * time.Millisecond)
			}

			Convey("Then the burst should coalesce into a single reload after the writes settle", func() {
				select {
				case <-reloaded:
				case <-time.After(3 * time.Second):
					So("reload did not fire", ShouldBeEmpty)
				}
				// No further writes; a second fire here would mean the
				// burst was not coalesced.
				time.Sleep(700 * time.Millisecond)
				So(reloads.Load(), ShouldEqual, 1)
				cancel()
				So(<-done, ShouldBeNil)
			})
		})
	})
}
