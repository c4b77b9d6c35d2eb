// Package app wires the organizer together: config, logging, event bus,
// schedule service, analyzer, audit trail.
package app

import (
	"context"
	"errors"
	"io/fs"
	"sync"

	"dayplan/internal/analyze"
	"dayplan/internal/audit"
	"dayplan/internal/config"
	"dayplan/internal/eventbus"
	"dayplan/internal/schedule"
	logx "dayplan/pkg/logx"
)

type App struct {
	log    logx.Logger
	logSvc *logx.Service

	cfgMgr *config.Manager
	bus    eventbus.Bus

	sched    *schedule.Service
	analyzer *analyze.Analyzer

	auditStore audit.Store
	recorder   *audit.Recorder

	mu        sync.Mutex
	exportDir string

	cancel context.CancelFunc
	cfgSub chan *config.Config
	wg     sync.WaitGroup
}

// New builds the full object graph from the config file. A missing file is
// not an error: defaults apply, and the watcher picks the file up if it
// appears later.
func New(cfgPath string) (*App, error) {
	mgr := config.NewManager(cfgPath)
	cfg, err := mgr.Load()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = config.Default()
		mgr.Commit(cfg)
	}

	logSvc, log := logx.New(cfg.LogxConfig())
	mgr.SetLogger(log.With(logx.String("component", "config")))
	mgr.SetValidator(validateConfig)

	acfg, err := cfg.AnalyzeConfig()
	if err != nil {
		logSvc.Close()
		return nil, err
	}

	bus := eventbus.New()
	sched := schedule.New(log.With(logx.String("component", "schedule")), bus)
	analyzer := analyze.New(acfg)

	a := &App{
		log:       log,
		logSvc:    logSvc,
		cfgMgr:    mgr,
		bus:       bus,
		sched:     sched,
		analyzer:  analyzer,
		exportDir: cfg.Export.Dir,
	}

	storeCfg, err := cfg.AuditStoreConfig()
	if err != nil {
		logSvc.Close()
		return nil, err
	}
	store, err := audit.Open(storeCfg, log.With(logx.String("component", "audit")))
	if err != nil {
		// The audit trail is best-effort; the planner still works without it.
		log.Warn("audit storage unavailable", logx.Err(err))
	}
	a.auditStore = store
	ratePerSec := 0
	if cfg.Audit != nil {
		ratePerSec = cfg.Audit.RatePerSec
	}
	a.recorder = audit.NewRecorder(store, bus, ratePerSec, log.With(logx.String("component", "audit")))

	return a, nil
}

// validateConfig is the pre-publish hook for hot reloads: a config that
// fails it is rejected and the previous one stays committed.
func validateConfig(cfg *config.Config) error {
	if _, err := cfg.AnalyzeConfig(); err != nil {
		return err
	}
	if _, err := cfg.AuditStoreConfig(); err != nil {
		return err
	}
	return nil
}

// Start launches the audit recorder, the config watcher and the goroutine
// that applies config updates.
func (a *App) Start(ctx context.Context) {
	ctx, a.cancel = context.WithCancel(ctx)

	a.recorder.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		_ = a.cfgMgr.Watch(ctx)
	}()

	a.cfgSub = a.cfgMgr.Subscribe(4)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case cfg, ok := <-a.cfgSub:
				if !ok {
					return
				}
				a.apply(cfg)
			}
		}
	}()

	a.log.Info("app started")
}

func (a *App) apply(cfg *config.Config) {
	a.logSvc.Apply(cfg.LogxConfig())

	acfg, err := cfg.AnalyzeConfig()
	if err != nil {
		// Validator should have caught this; keep the old thresholds.
		a.log.Warn("analyzer config rejected", logx.Err(err))
	} else {
		a.analyzer.Apply(acfg)
	}

	a.mu.Lock()
	a.exportDir = cfg.Export.Dir
	a.mu.Unlock()

	a.log.Info("config applied")
}

// Stop shuts everything down in dependency order.
func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.cfgSub != nil {
		a.cfgMgr.Unsubscribe(a.cfgSub)
		a.cfgSub = nil
	}
	a.wg.Wait()
	a.recorder.Stop()
	if a.auditStore != nil {
		_ = a.auditStore.Close()
	}
	a.log.Info("app stopped")
	_ = a.logSvc.Close()
}

func (a *App) Log() logx.Logger            { return a.log }
func (a *App) Schedule() *schedule.Service { return a.sched }
func (a *App) Analyzer() *analyze.Analyzer { return a.analyzer }

// ExportDir returns the current export directory ("." when unset).
func (a *App) ExportDir() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.exportDir == "" {
		return "."
	}
	return a.exportDir
}
