package tmdb

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSubFetches(t *testing.T) {
	tests := []struct {
		name        string
		concurrency int
		wantMax     int32
	}{
		{name: "sequential by default", concurrency: 1, wantMax: 1},
		{name: "bounded concurrency", concurrency: 2, wantMax: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{subFetchConcurrency: tt.concurrency, logger: zerolog.Nop()}

			var running, peak atomic.Int32
			track := func(status Status, err error) func(context.Context) (Status, error) {
				return func(context.Context) (Status, error) {
					n := running.Add(1)
					for {
						p := peak.Load()
						if n <= p || peak.CompareAndSwap(p, n) {
							break
						}
					}
					time.Sleep(20 * time.Millisecond)
					running.Add(-1)
					return status, err
				}
			}

			report := c.runSubFetches(context.Background(), "movie", 1, []subFetch{
				{name: "a", run: track(StatusOK, nil)},
				{name: "b", run: track(StatusNotFound, errors.New("gone"))},
				{name: "c", run: track(StatusOK, nil)},
				{name: "d", run: track(StatusOK, nil)},
			})

			require.Len(t, report.Results, 4)
			assert.Equal(t, []string{"a", "b", "c", "d"}, []string{
				report.Results[0].Name, report.Results[1].Name, report.Results[2].Name, report.Results[3].Name,
			})
			assert.LessOrEqual(t, peak.Load(), tt.wantMax)
			require.Len(t, report.Failed(), 1)
			assert.Equal(t, StatusNotFound, report.Failed()[0].Status)
			assert.EqualError(t, report.Err(), "b: gone")
		})
	}
}

func TestSubFetchReportOK(t *testing.T) {
	var report SubFetchReport
	assert.True(t, report.OK())
	assert.NoError(t, report.Err())
}
