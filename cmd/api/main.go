package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mvp90terminal/internal/auth"
	"mvp90terminal/internal/catalog"
	"mvp90terminal/internal/config"
	"mvp90terminal/internal/digest"
	"mvp90terminal/internal/llm"
	"mvp90terminal/internal/logging"
	"mvp90terminal/internal/shell"
	transporthttp "mvp90terminal/internal/transport/http"
)

var (
	cfg    config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "api",
		Short:         "MVP90 Terminal: session-scoped VC intelligence dashboard API",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.FromEnv(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if logger, err = logging.New(cfg.LogLevel); err != nil {
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(newServeCmd(), newDigestCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newDigestCmd() *cobra.Command {
	var (
		format  string
		week    string
		charts  bool
		details bool
		pretty  bool
	)
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Print the weekly LP digest report to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f, err := digest.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := catalog.Open(ctx, cfg.DatasetPath)
			if err != nil {
				return err
			}
			summarizer, err := newSummarizer(ctx)
			if err != nil {
				return err
			}
			gen := digest.Generator{Summarizer: summarizer}
			opts := digest.Options{Week: digest.Week(week), IncludeCharts: charts, IncludeDetails: details}
			report, err := gen.Generate(ctx, data.Digest, opts, f)
			if err != nil {
				return err
			}
			out := report.Markdown
			if pretty {
				if out, err = digest.RenderTerminal(out, "", 100); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			logger.Info(report.Message, zap.String("format", string(report.Format)))
			return nil
		},
	}
	defaults := digest.DefaultOptions()
	cmd.Flags().StringVar(&format, "format", string(digest.FormatHTML), "report format: html or pdf")
	cmd.Flags().StringVar(&week, "week", string(defaults.Week), "reporting week: current, last or custom")
	cmd.Flags().BoolVar(&charts, "charts", defaults.IncludeCharts, "include charts")
	cmd.Flags().BoolVar(&details, "details", defaults.IncludeDetails, "include investment reasoning")
	cmd.Flags().BoolVar(&pretty, "render", false, "style the markdown for the terminal")
	return cmd
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	data, err := catalog.Open(ctx, cfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	tokens, err := auth.NewTokens(cfg.SessionSecret, cfg.SessionTTL, nil)
	if err != nil {
		return err
	}
	summarizer, err := newSummarizer(ctx)
	if err != nil {
		return err
	}

	store := shell.NewStore(data, shell.Options{
		TTL:           cfg.SessionTTL,
		SearchLatency: catalog.Latency(cfg.SearchLatency),
		Logger:        logger.Named("sessions"),
	})
	server := transporthttp.NewServer(transporthttp.Deps{
		Store:         store,
		Tokens:        tokens,
		Authenticator: auth.Authenticator{Verifier: auth.AnyCredentials{Latency: catalog.Latency(cfg.AuthLatency)}},
		Reports: digest.Generator{
			Latency:    catalog.Latency(cfg.ReportLatency),
			Summarizer: summarizer,
		},
		Logger: logger.Named("http"),
	})

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      server.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("api listening", zap.String("addr", cfg.ListenAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return store.RefreshLoop(gctx, shell.RefreshConfig{
			FeedEvery:   cfg.FeedRefresh,
			TrendsEvery: cfg.TrendsRefresh,
			Settle:      cfg.RefreshSettle,
		})
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown failed", zap.Error(err))
		}
		return nil
	})
	return g.Wait()
}

// newSummarizer picks the digest summary source from config. Without a
// provider the fixed template is used.
func newSummarizer(ctx context.Context) (digest.Summarizer, error) {
	var client llm.ChatClient
	switch cfg.LLMProvider {
	case config.ProviderNone:
		return digest.TemplateSummarizer{}, nil
	case config.ProviderVibeRouter:
		client = llm.NewClient(cfg.LLMAPIKey)
	case config.ProviderGemini:
		gemini, err := llm.NewGeminiClient(ctx, cfg.LLMAPIKey)
		if err != nil {
			return nil, fmt.Errorf("init gemini: %w", err)
		}
		client = gemini
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
	logger.Info("llm digest summary enabled",
		zap.String("provider", cfg.LLMProvider),
		zap.String("model", cfg.LLMModel),
	)
	return &digest.LLMSummarizer{
		Client:      client,
		Model:       cfg.LLMModel,
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
		Fallback:    digest.TemplateSummarizer{},
		CacheTTL:    10 * time.Minute,
		Logger:      logger.Named("digest"),
	}, nil
}
