package discord

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	manualRefreshInterval = 5 * time.Second
	manualRefreshBurst    = 2
)

// Scheduler runs the periodic timer refresh and presence check, plus
// throttled on-demand refreshes after admin commands.
type Scheduler struct {
	cron    *cron.Cron
	limiter *rate.Limiter
	refresh func()
}

func NewScheduler(loc *time.Location, refreshSpec, presenceSpec string, refresh, presence func()) (*Scheduler, error) {
	logger := cronLogger{}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if _, err := c.AddFunc(refreshSpec, refresh); err != nil {
		return nil, fmt.Errorf("schedule refresh %q: %w", refreshSpec, err)
	}
	if _, err := c.AddFunc(presenceSpec, presence); err != nil {
		return nil, fmt.Errorf("schedule presence %q: %w", presenceSpec, err)
	}
	return &Scheduler{
		cron:    c,
		limiter: rate.NewLimiter(rate.Every(manualRefreshInterval), manualRefreshBurst),
		refresh: refresh,
	}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Int("jobs", len(s.cron.Entries())).Msg("✅ Scheduler started")
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RefreshSoon runs the refresh job in the background unless the limiter is
// exhausted; the next scheduled run picks up the change in that case.
func (s *Scheduler) RefreshSoon() bool {
	if !s.limiter.Allow() {
		log.Debug().Msg("Manual refresh throttled")
		return false
	}
	go s.refresh()
	return true
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error().Err(err).Fields(keysAndValues).Msg("❌ cron: " + msg)
}
