package menusync

import (
	"context"
	"fmt"
	"sync"

	"go-resto-admin/internal/model"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CronSync runs a pass on a wall-clock cron schedule.
type CronSync struct {
	runner   Runner
	schedule string
	logger   *zap.Logger

	mu          sync.Mutex
	initialized bool
	enabled     bool
	cron        *cron.Cron
}

func NewCronSync(runner Runner, schedule string, logger *zap.Logger) *CronSync {
	return &CronSync{runner: runner, schedule: schedule, logger: logger.Named("cron")}
}

// Start is idempotent. The enabled state is logged on the first call only.
func (c *CronSync) Start(enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	c.initialized = true
	c.enabled = enabled

	if !enabled {
		c.logger.Info("Cron menu sync disabled")
		return nil
	}

	cl := cronLogger{c.logger.Sugar()}
	cr := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := cr.AddFunc(c.schedule, c.tick); err != nil {
		c.enabled = false
		return fmt.Errorf("invalid cron schedule %q: %w", c.schedule, err)
	}
	cr.Start()
	c.cron = cr

	c.logger.Info("Cron menu sync enabled", zap.String("schedule", c.schedule))
	return nil
}

// Stop waits for a running pass to finish.
func (c *CronSync) Stop() {
	c.mu.Lock()
	cr := c.cron
	c.cron = nil
	c.mu.Unlock()

	if cr == nil {
		return
	}
	<-cr.Stop().Done()
	c.logger.Info("Cron menu sync stopped")
}

func (c *CronSync) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// tick errors are already logged by the Syncer; the schedule keeps firing regardless.
func (c *CronSync) tick() {
	_, _ = c.runner.Run(context.Background(), model.TriggerCron)
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
