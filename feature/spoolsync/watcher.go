package spoolsync

import (
	"context"
	"slices"
	"sync"
	"time"

	"spool-sync/core/bambu"
	"spool-sync/core/reconcile"
	"spool-sync/feature/spoolsync/models"

	"go.uber.org/zap"
)

// ReportClient is a printer connection delivering MQTT reports.
// *bambu.Client implements it.
type ReportClient interface {
	Connect(ctx context.Context) error
	SubscribeReports(ctx context.Context, handler bambu.ReportHandler) error
	RequestPushAll(ctx context.Context) error
	IsConnected() bool
	Close()
}

// Dialer creates an unconnected client for a printer.
type Dialer func(target bambu.Target) ReportClient

// Watcher listens to every enabled printer and runs a pass whenever a report
// carries a changed AMS state.
type Watcher struct {
	svc        *Service
	dial       Dialer
	interval   time.Duration
	retryDelay time.Duration
	logger     *zap.Logger
}

// NewWatcher creates a watcher connecting to printers over MQTT.
func NewWatcher(svc *Service, mqttCfg bambu.Config, cfg Config, logger *zap.Logger) *Watcher {
	dial := func(target bambu.Target) ReportClient {
		return bambu.NewClient(mqttCfg, target, logger)
	}
	return NewWatcherWithDialer(svc, dial, cfg, logger)
}

// NewWatcherWithDialer creates a watcher using dial to open connections.
func NewWatcherWithDialer(svc *Service, dial Dialer, cfg Config, logger *zap.Logger) *Watcher {
	return &Watcher{
		svc:        svc,
		dial:       dial,
		interval:   time.Duration(cfg.PollIntervalSeconds) * time.Second,
		retryDelay: 30 * time.Second,
		logger:     logger,
	}
}

// Run watches every enabled printer with a network address and blocks until
// ctx is done. Printers registered after Run starts are picked up on restart.
func (w *Watcher) Run(ctx context.Context) error {
	printers, err := w.svc.ListPrinters(ctx)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	for _, p := range printers {
		if !p.Enabled || p.Host == "" {
			continue
		}
		wg.Add(1)
		go func(p models.Printer) {
			defer wg.Done()
			w.watchPrinter(ctx, p)
		}(p)
	}
	wg.Wait()
	return nil
}

func (w *Watcher) watchPrinter(ctx context.Context, p models.Printer) {
	log := w.logger.With(zap.String("printer", p.Name))
	client := w.dial(bambu.Target{Name: p.Name, Host: p.Host, Serial: p.Serial, AccessCode: p.AccessCode})

	for {
		err := client.Connect(ctx)
		if err == nil {
			break
		}
		log.Warn("Printer connection failed, retrying", zap.Error(err), zap.Duration("retry_in", w.retryDelay))
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.retryDelay):
		}
	}
	defer client.Close()

	queue := make(chan []reconcile.Tray, 1)
	handler := func(payload []byte) {
		trays, ok, err := bambu.ParseReport(payload)
		if err != nil {
			log.Debug("Ignoring malformed report", zap.Error(err))
			return
		}
		if ok {
			offer(queue, trays)
		}
	}
	if err := client.SubscribeReports(ctx, handler); err != nil {
		log.Error("Failed to subscribe to printer reports", zap.Error(err))
		return
	}
	if err := client.RequestPushAll(ctx); err != nil {
		log.Warn("Failed to request full report", zap.Error(err))
	}

	var poll <-chan time.Time
	if w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		poll = ticker.C
	}

	var last []reconcile.Tray
	synced := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-poll:
			if !client.IsConnected() {
				log.Debug("Skipping poll while reconnecting")
				continue
			}
			if err := client.RequestPushAll(ctx); err != nil {
				log.Warn("Failed to request full report", zap.Error(err))
			}
		case trays := <-queue:
			if synced && slices.Equal(last, trays) {
				continue
			}
			if _, err := w.svc.SyncPrinter(ctx, p.Name, trays, PassOptions{Source: SourceMQTT}); err != nil {
				log.Warn("Sync pass failed", zap.Error(err))
				continue
			}
			last, synced = trays, true
		}
	}
}

// offer queues trays, replacing any state that has not been consumed yet.
func offer(queue chan []reconcile.Tray, trays []reconcile.Tray) {
	for {
		select {
		case queue <- trays:
			return
		default:
		}
		select {
		case <-queue:
		default:
		}
	}
}
