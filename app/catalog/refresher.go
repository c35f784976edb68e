package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher reloads the catalog on a fixed interval so a process that came
// up in demo mode recovers once the store becomes reachable. Stale results
// are handled by the synchronizer's sequence check.
type Refresher struct {
	sync  *Synchronizer
	sched *cron.Cron
}

func NewRefresher(s *Synchronizer) *Refresher {
	return &Refresher{sync: s, sched: cron.New()}
}

// Start schedules a refresh every interval.
func (r *Refresher) Start(interval time.Duration) error {
	spec := fmt.Sprintf("@every %s", interval)
	if _, err := r.sched.AddFunc(spec, func() {
		r.sync.Refresh(context.Background())
	}); err != nil {
		return err
	}
	r.sched.Start()
	zap.S().Infof("catalog auto-refresh scheduled %s", spec)
	return nil
}

// Stop halts the schedule. A refresh already in flight runs to completion.
func (r *Refresher) Stop() {
	r.sched.Stop()
}
