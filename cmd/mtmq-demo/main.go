// Command mtmq-demo runs a producer/consumer pair over a small queue.
// Ctrl-C finalizes the queue; the consumer drains whatever is buffered and
// both goroutines exit cleanly.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/mtmq/pkg/logger"
	"github.com/huynhanx03/mtmq/pkg/mtmq"
	"github.com/huynhanx03/mtmq/pkg/settings"
	"github.com/huynhanx03/mtmq/pkg/utils"
)

func defaultConfig() *settings.Config {
	return &settings.Config{
		Logger: settings.Logger{
			LogLevel: "info",
		},
		Demo: settings.Demo{
			QueueCapacity:  5,
			Messages:       16,
			PopTimeoutMs:   250,
			ConsumeDelayMs: 1000,
		},
	}
}

func main() {
	cfg := defaultConfig()
	if err := validator.New().Struct(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&cfg.Logger)
	defer func() { _ = log.Sync() }()

	queue, err := mtmq.New[string](cfg.Demo.QueueCapacity)
	if err != nil {
		log.Fatal("create queue", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("press Ctrl-C to exit",
		zap.Int("capacity", cfg.Demo.QueueCapacity),
		zap.Int("messages", cfg.Demo.Messages))

	// Finalize on signal so blocked producers and consumers unblock.
	go func() {
		<-ctx.Done()
		if !queue.IsFinalized() {
			log.Info("finalizing queue")
			queue.Finalize()
		}
	}()

	var g errgroup.Group
	g.Go(func() error { return produce(log, queue, cfg.Demo.Messages) })
	g.Go(func() error { return consume(log, queue, &cfg.Demo) })
	_ = g.Wait()

	if err := queue.Destroy(); err != nil {
		log.Error("destroy queue", zap.Error(err))
		os.Exit(1)
	}
}

func produce(log *zap.Logger, queue *mtmq.Queue[string], messages int) error {
	defer log.Info("producer exiting")
	// Producer finalizes once its batch is pushed so the consumer can stop
	// after draining.
	defer queue.Finalize()

	for i := 0; i < messages; i++ {
		rc := queue.Push(i, fmt.Sprintf("message-%d", i), -1)
		switch rc {
		case mtmq.Ok:
			log.Debug("pushed", zap.Int("code", i))
		case mtmq.Finalized:
			log.Info("producer: queue is finalized")
			return nil
		default:
			log.Error("push failed", zap.Stringer("outcome", rc))
			return nil
		}
	}
	return nil
}

func consume(log *zap.Logger, queue *mtmq.Queue[string], cfg *settings.Demo) error {
	defer log.Info("consumer exiting")

	for {
		time.Sleep(utils.ToDurationMs(cfg.ConsumeDelayMs))

		elt, rc := queue.Pop(cfg.PopTimeoutMs)
		switch rc {
		case mtmq.Ok:
			log.Info("popped", zap.Int("code", elt.Code), zap.String("payload", elt.Payload))
		case mtmq.TimedOut:
			log.Info("consumer: timeout reading from queue")
		case mtmq.Finalized:
			log.Info("consumer: queue is finalized")
			return nil
		default:
			log.Error("pop failed", zap.Stringer("outcome", rc))
			return nil
		}
	}
}
