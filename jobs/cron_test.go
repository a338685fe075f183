package jobs

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/models"
	"hotel-booking/services/logger"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReporter struct {
	day    time.Time
	report *models.OccupancyReport
	err    error
}

func (s *stubReporter) DailyOccupancy(ctx context.Context, day time.Time) (*models.OccupancyReport, error) {
	s.day = day
	return s.report, s.err
}

func TestOccupancyJob_Run(t *testing.T) {
	var buf bytes.Buffer
	reporter := &stubReporter{report: &models.OccupancyReport{Date: "2030-06-01", Arrivals: 2, Departures: 1, InHouse: 5}}
	job := NewOccupancyJob(reporter, logger.NewLogrusLogger(logger.InfoLevel, &buf))
	now := time.Date(2030, 6, 1, 0, 0, 5, 0, time.UTC)
	job.now = func() time.Time { return now }

	job.Run()

	assert.Equal(t, now, reporter.day)
	assert.Contains(t, buf.String(), `"msg":"daily occupancy report"`)
	assert.Contains(t, buf.String(), `"in_house":5`)
	assert.Contains(t, buf.String(), `"date":"2030-06-01"`)
}

func TestOccupancyJob_RunLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	job := NewOccupancyJob(&stubReporter{err: errors.New("db down")}, logger.NewLogrusLogger(logger.InfoLevel, &buf))

	job.Run()

	assert.Contains(t, buf.String(), "occupancy report failed: db down")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestInitCronJobs(t *testing.T) {
	c := cron.New()
	defer c.Stop()
	job := NewOccupancyJob(&stubReporter{report: &models.OccupancyReport{}}, nil)

	require.NoError(t, InitCronJobs(c, "", job))
	assert.Len(t, c.Entries(), 1)

	assert.Error(t, InitCronJobs(cron.New(), "not a schedule", job))
}
