package jobs

import (
	"context"
	"time"

	"hotel-booking/models"
	"hotel-booking/services/logger"

	"github.com/robfig/cron/v3"
)

// DefaultOccupancySchedule runs the report at midnight every day.
const DefaultOccupancySchedule = "0 0 * * *"

// OccupancyReporter computes the occupancy summary of one day.
type OccupancyReporter interface {
	DailyOccupancy(ctx context.Context, day time.Time) (*models.OccupancyReport, error)
}

// OccupancyJob logs the arrivals, departures and in-house count of the day.
type OccupancyJob struct {
	reporter OccupancyReporter
	logger   logger.Logger
	now      func() time.Time
	timeout  time.Duration
}

func NewOccupancyJob(reporter OccupancyReporter, log logger.Logger) *OccupancyJob {
	if log == nil {
		log = logger.NewDiscardLogger()
	}
	return &OccupancyJob{reporter: reporter, logger: log, now: time.Now, timeout: time.Minute}
}

// Run produces the report for the current day. Failures are logged only.
func (j *OccupancyJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	report, err := j.reporter.DailyOccupancy(ctx, j.now())
	if err != nil {
		j.logger.Error("occupancy report failed: %v", err)
		return
	}
	j.logger.WithFields(map[string]interface{}{
		"date":       report.Date,
		"arrivals":   report.Arrivals,
		"departures": report.Departures,
		"in_house":   report.InHouse,
	}).Info("daily occupancy report")
}

// InitCronJobs registers the jobs on c and starts it.
func InitCronJobs(c *cron.Cron, schedule string, job *OccupancyJob) error {
	if schedule == "" {
		schedule = DefaultOccupancySchedule
	}
	if _, err := c.AddJob(schedule, job); err != nil {
		return err
	}

	c.Start()
	job.logger.Info("cron jobs initialized with schedule %q", schedule)
	return nil
}
