package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpclient "github.com/listenupapp/listenup-client/internal/client/api"
	"github.com/listenupapp/listenup-client/internal/client/iocli"
	"github.com/listenupapp/listenup-client/internal/client/netmon"
	"github.com/listenupapp/listenup-client/internal/client/search"
	searchsqlite "github.com/listenupapp/listenup-client/internal/client/search/sqlite"
	"github.com/listenupapp/listenup-client/internal/client/session"
	"github.com/listenupapp/listenup-client/internal/client/storage/boltdb"
	"github.com/listenupapp/listenup-client/internal/client/sync"
	"github.com/listenupapp/listenup-client/internal/config"
)

var (
	buildVersion = "dev"
	buildDate    = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "listenup",
	Short: "Offline-first ListenUp audiobook client",
	Long: `listenup keeps a local copy of your audiobook library and syncs
edits, listening progress and preferences with the server whenever it
is reachable. Edits made offline are queued and pushed on the next
sync.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.AddCommand(
		loginCmd,
		logoutCmd,
		syncCmd,
		pullCmd,
		searchCmd,
		statusCmd,
		retryCmd,
		dismissCmd,
		versionCmd,
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the wired client for one command invocation.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	io       iocli.IO
	store    *boltdb.Storage
	index    *searchsqlite.Index
	client   *httpclient.Client
	monitor  *netmon.PingMonitor
	sess     *session.Session
	service  *sync.Service
	observer *sync.StatusObserver
	repo     *search.Repository
}

// newApp opens storage and wires the engine. With requireSession the
// caller gets an error directing the user to login when no valid
// session exists.
func newApp(ctx context.Context, requireSession bool) (*app, func(), error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	store, err := boltdb.New(ctx, cfg.ClientDBPath())
	if err != nil {
		return nil, nil, err
	}
	index, err := searchsqlite.New(ctx, cfg.SearchIndexPath())
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	cleanup := func() {
		_ = index.Close()
		_ = store.Close()
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		io:     iocli.NewStdio(),
		store:  store,
		index:  index,
	}

	a.sess, err = session.Load(ctx, store)
	if err != nil && !errors.Is(err, session.ErrNotAuthenticated) {
		cleanup()
		return nil, nil, err
	}
	if requireSession && !a.sess.Valid() {
		cleanup()
		return nil, nil, fmt.Errorf("not logged in, run 'listenup login' first")
	}

	serverURL := cfg.ServerURL
	if a.sess != nil && a.sess.ServerURL != "" {
		serverURL = a.sess.ServerURL
	}
	a.client = httpclient.NewClient(serverURL)
	a.monitor = netmon.NewPingMonitor(a.client, cfg.Sync.PingInterval, logger)

	tokenSource := func(ctx context.Context) (string, error) {
		if !a.sess.Valid() {
			return "", session.ErrNotAuthenticated
		}
		return a.sess.AccessToken, nil
	}

	retryCfg := sync.RetryConfig{
		MaxRetries:   cfg.Sync.MaxRetries,
		InitialDelay: cfg.Sync.InitialDelay,
		MaxDelay:     cfg.Sync.MaxDelay,
		Multiplier:   2.0,
	}
	handlers := sync.NewHandlers(a.client, store, store, store, store, store, tokenSource, logger)
	registry := sync.NewRegistry(handlers...)
	resyncer := sync.NewEntityResyncer(store, store, store, store)
	queue := sync.NewQueue(store, registry, resyncer, retryCfg, logger)

	pullers := []sync.Puller{
		sync.NewBookPuller(a.client, store, store, queue, index, logger),
		sync.NewContributorPuller(a.client, store, store, queue, index, logger),
		sync.NewSeriesPuller(a.client, store, store, index, logger),
		sync.NewProgressPuller(a.client, store, store, queue, logger),
	}

	a.service = sync.NewService(queue, pullers, tokenSource, logger)
	a.observer = sync.NewStatusObserver(a.service)
	a.repo = search.NewRepository(a.client, a.monitor, index, logger)

	return a, cleanup, nil
}

// printProgress renders pull/push progress lines on stderr.
func printProgress(p sync.Progress) {
	switch {
	case p.Message != "":
		fmt.Fprintf(os.Stderr, "%s...\n", p.Message)
	case p.Total > 0:
		fmt.Fprintf(os.Stderr, "\r%s: %d/%d", p.Phase, p.Synced, p.Total)
		if p.Synced == p.Total {
			fmt.Fprintln(os.Stderr)
		}
	}
}
