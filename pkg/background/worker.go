package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"courier-booking/pkg/logger"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

// Worker управляет периодическими задачами, каждая из которых адресуется своим ключом.
// Задачу можно запустить и остановить в любой момент, независимо от остальных.
type Worker struct {
	log   handlerLogger
	clock clockwork.Clock
	ctx   context.Context
	group errgroup.Group

	mu     sync.Mutex
	tasks  map[string]*runningTask
	closed bool
}

type runningTask struct {
	info   string
	cancel context.CancelFunc
	done   chan struct{}
}

// New создает Worker. Все задачи останавливаются при отмене ctx или вызове Close.
func New(ctx context.Context, log handlerLogger, clock clockwork.Clock) *Worker {
	return &Worker{
		log:   log,
		clock: clock,
		ctx:   ctx,
		tasks: make(map[string]*runningTask),
	}
}

// Start запускает задачу под ключом key. Первое выполнение происходит через TTL.
// Тикер создается до возврата из Start, поэтому ни один тик не теряется.
func (w *Worker) Start(key string, task Task) error {
	ttl := task.TTL()
	if ttl <= 0 {
		return fmt.Errorf("start %q: %w", task.Info(), ErrInvalidTTL)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWorkerClosed
	}
	if _, ok := w.tasks[key]; ok {
		return fmt.Errorf("start %q: %w", key, ErrTaskExists)
	}

	ctx, cancel := context.WithCancel(w.ctx)
	rt := &runningTask{
		info:   task.Info(),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	w.tasks[key] = rt

	ticker := w.clock.NewTicker(ttl)
	w.group.Go(func() error {
		defer close(rt.done)
		defer ticker.Stop()

		w.runBackgroundTask(ctx, task, ticker)
		return nil
	})

	w.log.Info("Starting periodic execution",
		logger.NewField("task", rt.info),
		logger.NewField("key", key),
		logger.NewField("TTL", ttl),
	)
	return nil
}

// Stop останавливает задачу и дожидается выхода ее горутины.
// После возврата из Stop задача больше не выполнится. Неизвестный ключ игнорируется.
func (w *Worker) Stop(key string) bool {
	w.mu.Lock()
	rt, ok := w.tasks[key]
	delete(w.tasks, key)
	w.mu.Unlock()

	if !ok {
		return false
	}

	rt.cancel()
	<-rt.done

	w.log.Info("Task stopped",
		logger.NewField("task", rt.info),
		logger.NewField("key", key),
	)
	return true
}

func (w *Worker) Running(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, ok := w.tasks[key]
	return ok
}

func (w *Worker) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.tasks)
}

// Close останавливает все задачи и ждет их завершения. Новые задачи после Close не принимаются.
func (w *Worker) Close() error {
	w.mu.Lock()
	w.closed = true
	for key, rt := range w.tasks {
		rt.cancel()
		delete(w.tasks, key)
	}
	w.mu.Unlock()

	return w.group.Wait()
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task, ticker clockwork.Ticker) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			// отмена могла случиться одновременно с тиком
			if ctx.Err() != nil {
				return
			}
			w.executeTaskSafely(ctx, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
