package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"redsquare/internal/modkit"
	"redsquare/internal/modkit/module"
	"redsquare/internal/platform/config"
	"redsquare/internal/platform/logger"
	"redsquare/internal/platform/store"

	identmod "redsquare/internal/services/api/ident/module"
	identrepo "redsquare/internal/services/ident/repo"
	identsvc "redsquare/internal/services/ident/service"

	digestmod "redsquare/internal/services/digest/module"
	mailermod "redsquare/internal/services/mailer/module"
)

func main() {
	root := config.New()
	cfg := root.Prefix("CORE_DIGEST_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	deps := modkit.Deps{Cfg: cfg, PG: st.PG}

	mailer := mailermod.New(deps, mailermod.FromConfig(cfg))
	sender := module.MustPortsOf[mailermod.Ports](mailer).Mailer

	// sessions service doubles as the expired-session sweeper
	sessions := identsvc.New(st.PG, identrepo.NewPG(), identmod.FromConfig(cfg), nil)

	worker := digestmod.New(deps, digestmod.FromConfig(cfg), sender, sessions)
	ports := module.MustPortsOf[digestmod.Ports](worker)

	once := flag.Bool("once", false, "run a single digest pass and exit")
	flag.Parse()

	if *once {
		if err := ports.Digest.Run(context.Background()); err != nil {
			l.Error().Err(err).Msg("digest run failed")
			os.Exit(1)
		}
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(ports.Schedule, func() {
		if err := ports.Digest.Run(context.Background()); err != nil {
			l.Error().Err(err).Msg("digest run failed")
		}
	}); err != nil {
		l.Panic().Err(err).Str("schedule", ports.Schedule).Msg("bad digest schedule")
	}
	c.Start()
	l.Info().Str("schedule", ports.Schedule).Msg("digest worker started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx := c.Stop()
	<-ctx.Done()
	l.Info().Msg("digest worker stopped")
}
