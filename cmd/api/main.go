package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"meeting-task-converter/config"
	_ "meeting-task-converter/docs" // Swagger docs
	"meeting-task-converter/internal/extract"
	"meeting-task-converter/internal/httpserver"
	"meeting-task-converter/internal/media"
	"meeting-task-converter/internal/middleware"
	"meeting-task-converter/internal/speech"
	"meeting-task-converter/internal/task"
	taskHTTP "meeting-task-converter/internal/task/delivery/http"
	"meeting-task-converter/internal/task/repository/memory"
	"meeting-task-converter/internal/task/usecase"
	"meeting-task-converter/internal/watcher"
	"meeting-task-converter/pkg/executor"
	"meeting-task-converter/pkg/log"
	"meeting-task-converter/pkg/openai"
)

// @title       Meeting Task Converter API
// @description Turns meeting transcripts and recordings into structured, prioritized tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration (.env is optional, real env wins)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Meeting Task Converter...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Pipeline components
	aiClient := openai.NewClient(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		aiClient.SetAPIURL(cfg.OpenAI.BaseURL)
	}
	aiClient.SetChatModel(cfg.OpenAI.ChatModel)
	aiClient.SetTranscriptionModel(cfg.OpenAI.TranscriptionModel)

	extractor, err := extract.New(logger, aiClient)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize extractor: %v", err)
	}
	transcriber := speech.New(logger, aiClient)
	normalizer := media.New(logger, executor.New())

	// 4. Task domain
	repo := memory.New()
	taskUC := usecase.New(logger, extractor, transcriber, normalizer, repo)
	taskHandler := taskHTTP.New(logger, taskUC)

	// 5. HTTP server
	mw := middleware.New(logger, cfg.Environment.Name, cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	httpServer, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TaskHandler: taskHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 6. Recording inbox (optional)
	if cfg.Watcher.Dir != "" {
		w, wErr := watcher.New(logger, cfg.Watcher.Dir, inboxHandler(logger, taskUC), cfg.Watcher.MaxConcurrent)
		if wErr != nil {
			logger.Errorf(ctx, "Failed to initialize inbox watcher: %v", wErr)
			return
		}
		defer w.Stop()

		go func() {
			if sErr := w.Start(ctx); sErr != nil && sErr != context.Canceled {
				logger.Errorf(ctx, "Inbox watcher exited: %v", sErr)
			}
		}()
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// inboxHandler runs dropped recordings through the same pipeline as the
// upload endpoint.
func inboxHandler(logger log.Logger, uc task.UseCase) watcher.EventHandler {
	return func(ctx context.Context, filePath string) error {
		f, err := os.Open(filePath)
		if err != nil {
			return err
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return err
		}

		out, err := uc.ProcessAudio(ctx, task.ProcessAudioInput{
			FileName: filepath.Base(filePath),
			Data:     data,
		})
		if err != nil {
			return err
		}

		logger.Infof(ctx, "Inbox: created %d tasks from %s", out.Count, filePath)

		// Processed recordings are removed so a restart does not re-bill them.
		if rmErr := os.Remove(filePath); rmErr != nil {
			logger.Warnf(ctx, "Inbox: could not remove %s: %v", filePath, rmErr)
		}
		return nil
	}
}
