package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"github.com/thecodeteam/goodbye"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/simplesurance/mergebot/internal/actions"
	"github.com/simplesurance/mergebot/internal/cfg"
	"github.com/simplesurance/mergebot/internal/comment"
	"github.com/simplesurance/mergebot/internal/githubclt"
	"github.com/simplesurance/mergebot/internal/idcache"
	"github.com/simplesurance/mergebot/internal/logfields"
	"github.com/simplesurance/mergebot/internal/mergebot"
	"github.com/simplesurance/mergebot/internal/reconcile"
	"github.com/simplesurance/mergebot/internal/retry"
)

const appName = "mergebot"

var logger *zap.Logger

// Version is set via a ldflag on compilation
var Version = "unknown"

const metricsEndpoint = "/metrics"

func exitOnErr(msg string, err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "ERROR:", msg+", error:", err.Error())
	os.Exit(1)
}

func panicHandler() {
	if r := recover(); r != nil {
		logger.Info(
			"panic caught, terminating gracefully",
			zap.String("panic", fmt.Sprintf("%v", r)),
			zap.StackSkip("stacktrace", 1),
		)

		ctx, cancelFn := context.WithTimeout(context.Background(), time.Minute)
		defer cancelFn()

		goodbye.Exit(ctx, 1)
	}
}

func startHTTPServer(listenAddr string, mux *http.ServeMux) {
	httpServer := http.Server{
		Addr:              listenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 30 * time.Second,
	}

	goodbye.Register(func(context.Context, os.Signal) {
		const shutdownTimeout = 30 * time.Second
		ctx, cancelFn := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelFn()

		logger.Debug(
			"terminating http server",
			logfields.Event("http_server_terminating"),
			zap.Duration("shutdown_timeout", shutdownTimeout),
		)

		err := httpServer.Shutdown(ctx)
		if err != nil {
			logger.Warn(
				"shutting down http server failed",
				logfields.Event("http_server_termination_failed"),
				zap.Error(err),
			)
		}
	})

	go func() {
		defer panicHandler()

		logger.Info(
			"http server started",
			logfields.Event("http_server_started"),
			zap.String("listenAddr", listenAddr),
		)

		err := httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			logger.Info("http server terminated", logfields.Event("http_server_terminated"))
			return
		}

		logger.Fatal(
			"http server terminated unexpectedly",
			logfields.Event("http_server_terminated_unexpectedly"),
			zap.Error(err),
		)
	}()
}

type arguments struct {
	Verbose     *bool
	ConfigFile  *string
	ShowVersion *bool
	PullRequest *int
	ActionsFile *string
	DryRun      *bool
}

var args arguments

const defConfigFile = "/etc/mergebot/config.toml"

func mustParseCommandlineParams() {
	args = arguments{
		Verbose: pflag.BoolP(
			"verbose",
			"v",
			false,
			"enable verbose logging",
		),
		ConfigFile: pflag.StringP(
			"cfg-file",
			"c",
			defConfigFile,
			"path to the mergebot configuration file",
		),
		ShowVersion: pflag.Bool(
			"version",
			false,
			"print the version and exit",
		),
		PullRequest: pflag.Int(
			"pr",
			0,
			"reconcile the pull request with this number once and exit,\n"+
				"when unset the http server is started",
		),
		ActionsFile: pflag.String(
			"actions",
			"",
			"path to a JSON file describing the desired pull request state,\n"+
				"when unset the actions_query from the configuration file is evaluated",
		),
		DryRun: pflag.Bool(
			"dry-run",
			false,
			"only print the changes, do not apply them",
		),
	}

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTION]\nBring GitHub pull requests into a desired state.\n", appName)
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()
}

func mustParseCfg() *cfg.Config {
	// we use exitOnErr in this function instead of logger.Fatal() because
	// the logger is not initialized yet

	file, err := os.Open(*args.ConfigFile)
	exitOnErr("could not open configuration files", err)
	defer file.Close()

	config, err := cfg.Load(file)
	if err != nil {
		exitOnErr(fmt.Sprintf("could not load configuration file: %s", *args.ConfigFile), err)
	}

	return config
}

func mustLoadActionsFile(path string) *reconcile.Actions {
	file, err := os.Open(path)
	exitOnErr("could not open actions file", err)
	defer file.Close()

	result, err := actions.Load(file)
	exitOnErr(fmt.Sprintf("could not load actions file: %s", path), err)

	return result
}

func initLogFmtLogger(config *cfg.Config, logLevel zapcore.Level) *zap.Logger {
	cfg := zapEncoderConfig(config)

	logger := zap.New(zapcore.NewCore(
		zaplogfmt.NewEncoder(cfg),
		os.Stderr,
		logLevel),
	)

	return logger
}

func zapEncoderConfig(config *cfg.Config) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()

	cfg.LevelKey = "loglevel"
	cfg.TimeKey = config.LogTimeKey
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder

	return cfg
}

func mustInitZapFormatLogger(config *cfg.Config, logLevel zapcore.Level) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil
	cfg.EncoderConfig = zapEncoderConfig(config)
	cfg.OutputPaths = []string{"stderr"}
	cfg.Encoding = config.LogFormat
	cfg.Level = zap.NewAtomicLevelAt(logLevel)

	logger, err := cfg.Build()
	exitOnErr("could not initialize logger", err)

	return logger
}

func mustInitLogger(config *cfg.Config) {
	var logLevel zapcore.Level
	if *args.Verbose {
		logLevel = zapcore.DebugLevel
	} else {
		if err := (&logLevel).Set(config.LogLevel); err != nil {
			fmt.Fprintf(os.Stderr, "can not set log level to %q: %s \n", config.LogLevel, err)
			os.Exit(2)
		}
	}

	switch config.LogFormat {
	case "logfmt":
		logger = initLogFmtLogger(config, logLevel)
	case "console", "json":
		logger = mustInitZapFormatLogger(config, logLevel)
	default:
		fmt.Fprintf(os.Stderr, "unsupported log-format argument: %q\n", config.LogFormat)
		os.Exit(2)
	}

	logger = logger.Named("main")
	zap.ReplaceGlobals(logger)

	goodbye.Register(func(context.Context, os.Signal) {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "flushing logs failed: %s\n", err)
		}
	})
}

func hide(in string) string {
	if in == "" {
		return in
	}

	return "**hidden**"
}

func newBot(config *cfg.Config) *mergebot.Bot {
	owner := config.Repository.Owner
	repo := config.Repository.RepositoryName

	ghClient := githubclt.New(config.GithubAPIToken)

	labels := idcache.NewLabels(
		func(ctx context.Context) (map[string]string, error) {
			return ghClient.Labels(ctx, owner, repo)
		},
		config.IDCacheTTL,
	)

	columns := idcache.NewColumns(
		func(ctx context.Context) (map[string]string, error) {
			return ghClient.ProjectColumns(ctx, owner, repo, config.Project.Number)
		},
		config.IDCacheTTL,
	)

	reconciler := reconcile.NewReconciler(
		&reconcile.Config{
			RepositoryOwner:       owner,
			Repository:            repo,
			BotLogin:              config.Bot.Login,
			ProjectNumber:         config.Project.Number,
			DoneColumn:            config.Project.DoneColumn,
			CIComplaintPrefix:     config.CI.ComplaintTagPrefix,
			CIMarker:              config.CI.TagMarker,
			DeleteIfNotPostedTags: config.Bot.DeleteIfNotPostedTags,
			ManagedLabels:         config.Bot.ManagedLabels,
		},
		labels,
		columns,
		comment.NewCodec(config.Bot.CommentMarker),
		ghClient,
		ghClient,
	)

	opts := []mergebot.Opt{mergebot.WithRetryer(retry.NewRetryer(config.RetryTimeout))}

	if config.ActionsQuery != "" {
		query, err := actions.NewQuery(config.ActionsQuery)
		exitOnErr("could not parse actions_query from configuration file", err)

		opts = append(opts, mergebot.WithDefaultActions(query))
	}

	return mergebot.New(owner, repo, ghClient, reconciler, opts...)
}

func runOnce(bot *mergebot.Bot) {
	var src actions.Source
	if *args.ActionsFile != "" {
		src = actions.NewStatic(mustLoadActionsFile(*args.ActionsFile))
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	goodbye.Register(func(context.Context, os.Signal) {
		cancelFn()
	})

	plan, err := bot.Reconcile(ctx, *args.PullRequest, src, *args.DryRun)
	if plan != nil {
		fmt.Println(strings.TrimSuffix(plan.String(), "\n"))
	}

	exitOnErr(fmt.Sprintf("reconciling pull request #%d failed", *args.PullRequest), err)
}

func serve(config *cfg.Config, bot *mergebot.Bot) {
	if config.HTTPListenAddr == "" {
		fmt.Fprintf(os.Stderr, "http_server_listen_addr must be defined in the config file when --pr is not set\n")
		os.Exit(1)
	}

	mux := http.NewServeMux()

	mux.HandleFunc(config.HTTPEndpoint, bot.HTTPHandler)
	logger.Info(
		"registered reconcile http endpoint",
		logfields.Event("reconcile_http_handler_registered"),
		zap.String("endpoint", config.HTTPEndpoint),
	)

	mux.Handle(metricsEndpoint, promhttp.Handler())
	logger.Info(
		"registered prometheus metrics http endpoint",
		logfields.Event("metrics_http_handler_registered"),
		zap.String("endpoint", metricsEndpoint),
	)

	startHTTPServer(config.HTTPListenAddr, mux)

	// terminated via goodbye.Exit() when a signal is received
	select {}
}

func main() {
	defer panicHandler()

	defer goodbye.Exit(context.Background(), 1)
	goodbye.Notify(context.Background())

	mustParseCommandlineParams()

	if *args.ShowVersion {
		fmt.Printf("%s %s\n", appName, Version)
		os.Exit(0) // nolint:gocritic // defer functions won't run
	}

	config := mustParseCfg()

	mustInitLogger(config)

	logger.Info(
		"loaded cfg file",
		logfields.Event("cfg_loaded"),
		zap.String("cfg_file", *args.ConfigFile),
		zap.String("http_server_listen_addr", config.HTTPListenAddr),
		zap.String("http_endpoint", config.HTTPEndpoint),
		zap.String("github_api_token", hide(config.GithubAPIToken)),
		logfields.RepositoryOwner(config.Repository.Owner),
		logfields.Repository(config.Repository.RepositoryName),
		zap.String("bot_login", config.Bot.Login),
		zap.Int("project_number", config.Project.Number),
		zap.Duration("retry_timeout", config.RetryTimeout),
		zap.Duration("idcache_ttl", config.IDCacheTTL),
		zap.String("log_format", config.LogFormat),
		zap.String("log_time_key", config.LogTimeKey),
		zap.String("log_level", config.LogLevel),
	)

	goodbye.Register(func(_ context.Context, sig os.Signal) {
		if sig != nil {
			logger.Info(fmt.Sprintf("terminating, received signal %s", sig.String()))
		}
	})

	bot := newBot(config)
	goodbye.Register(func(context.Context, os.Signal) {
		logger.Debug("stopping retryer", logfields.Event("retryer_stopping"))
		bot.Stop()
	})

	if *args.PullRequest > 0 {
		runOnce(bot)
		goodbye.Exit(context.Background(), 0)
	}

	serve(config, bot)
}
