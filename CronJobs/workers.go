package CronJobs

import (
	"time"

	"MediTrack/Logger"
	"MediTrack/Models"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// defaultRetention is how long a soft-deleted patient is kept before the
// purge job removes it for good.
const defaultRetention = 30 * 24 * time.Hour

// PatientPurger permanently removes patients that were deleted through the
// API once their retention window has passed.
type PatientPurger struct {
	DB        *gorm.DB
	Retention time.Duration
}

func NewPatientPurger(db *gorm.DB) *PatientPurger {
	return &PatientPurger{
		DB:        db,
		Retention: defaultRetention,
	}
}

// StartPurgeCron schedules the nightly purge and starts the scheduler.
func (pp *PatientPurger) StartPurgeCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Day().At("03:00").Do(func() {
		purged, err := Models.PurgeDeletedPatients(pp.DB, pp.Retention)
		if err != nil {
			Logger.Error("patient purge failed:", err)
			return
		}
		if purged > 0 {
			Logger.Infof("patient purge removed %d record(s)", purged)
		}
	})

	scheduler.StartAsync()
	Logger.Info("patient purge cron job started")

	return scheduler
}
