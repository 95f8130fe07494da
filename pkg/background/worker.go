package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"samecity/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task is a periodic job.
type Task interface {
	// TTL is the pause between two runs.
	TTL() time.Duration

	Do(context.Context) error

	// Info names the task in logs.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker runs a fixed set of tasks until its context is cancelled.
type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New runs every task once, concurrently, and fails if any of those first
// runs fails or panics. After that each task repeats every TTL in its own
// goroutine.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("init panic: %v\n%s", r, stack)
					log.Error("task panic during init",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", stack),
					)
				}
			}()
			log.Info("initializing task",
				logger.NewField("task", task.Info()),
			)
			return task.Do(initCtx)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go func() {
			defer worker.wg.Done()
			worker.runBackgroundTask(ctx, task)
		}()
	}

	return worker, nil
}

// Wait blocks until every task goroutine has returned.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}
	w.log.Info("starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopping task, context cancelled",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.executeTaskSafely(ctx, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, task Task) {
	started := time.Now()
	defer func() {
		TaskDuration.WithLabelValues(task.Info()).Observe(time.Since(started).Seconds())

		if r := recover(); r != nil {
			TaskRunsTotal.WithLabelValues(task.Info(), resultPanic).Inc()
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", debug.Stack()),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		TaskRunsTotal.WithLabelValues(task.Info(), resultError).Inc()
		w.log.Error("background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("duration", time.Since(started)),
			logger.NewField("error", err),
		)
		return
	}
	TaskRunsTotal.WithLabelValues(task.Info(), resultOK).Inc()
}
