package worker

import (
	"context"
	"sync"
	"time"

	coreport "github.com/Tatang94/atz/internal/domain/port/core"
	orderUseCase "github.com/Tatang94/atz/internal/domain/usecase/order"
	"github.com/Tatang94/atz/internal/infrastructure/adapter/database"
)

// ExpirySweeper periodically fails pending transactions whose payment window
// has elapsed without any gateway confirmation.
type ExpirySweeper struct {
	orderService *orderUseCase.Service
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	interval     time.Duration
	stopChan     chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
}

// NewExpirySweeper creates a new expiry sweeper
func NewExpirySweeper(
	orderService *orderUseCase.Service,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	interval time.Duration,
) *ExpirySweeper {
	return &ExpirySweeper{
		orderService: orderService,
		timeProvider: timeProvider,
		logger:       logger,
		interval:     interval,
		stopChan:     make(chan struct{}),
	}
}

// Start launches the background sweep loop
func (w *ExpirySweeper) Start() {
	w.logger.Info("Starting expiry sweeper", map[string]any{
		"interval": w.interval.String(),
	})

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.sweep()
			case <-w.stopChan:
				return
			}
		}
	}()
}

// Stop terminates the sweep loop and waits for an in-flight sweep to finish
func (w *ExpirySweeper) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
	})
	w.wg.Wait()
	w.logger.Info("Expiry sweeper stopped", nil)
}

// sweep runs a single expiry pass, retrying on transient database errors
func (w *ExpirySweeper) sweep() {
	ctx, cancel := w.timeProvider.WithTimeout(context.Background(), w.interval)
	defer cancel()

	var expired int
	err := database.RetryOnTransientError(ctx, database.DefaultRetryConfig(), func() error {
		var sweepErr error
		expired, sweepErr = w.orderService.ExpireStalePending(ctx, w.timeProvider.Now())
		return sweepErr
	}, w.logger)

	if err != nil {
		w.logger.Error("Expiry sweep failed", map[string]any{
			"error": err.Error(),
		})
		return
	}

	if expired > 0 {
		w.logger.Info("Expiry sweep completed", map[string]any{
			"expired": expired,
		})
	}
}
