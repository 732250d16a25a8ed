package jobs

import (
	"context"
	"database/sql"
	"time"

	"github.com/robfig/cron/v3"

	"financas-api/utils"
)

// StartSessionCleanup schedules a daily purge of expired refresh sessions.
// The returned cron can be stopped on shutdown.
func StartSessionCleanup(db *sql.DB) *cron.Cron {
	c := cron.New()
	c.AddFunc("@daily", func() {
		cleanExpiredSessions(db)
	})
	c.Start()

	// Run once at startup so stale rows never outlive a restart by a day.
	go cleanExpiredSessions(db)

	return c
}

func cleanExpiredSessions(db *sql.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < NOW()`)
	if err != nil {
		utils.Logger.WithError(err).Error("Session cleanup failed")
		return
	}
	if rows, _ := result.RowsAffected(); rows > 0 {
		utils.Logger.WithField("sessions", rows).Info("Cleaned expired sessions")
	}
}
