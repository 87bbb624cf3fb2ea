package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "flex_reviews/internal/adapters/http_server"
	"flex_reviews/internal/adapters/hostaway"
	"flex_reviews/internal/adapters/observability"
	redisad "flex_reviews/internal/adapters/redis"
	"flex_reviews/internal/app"
	"flex_reviews/internal/shared"
	"flex_reviews/internal/store"
	mysqlrepo "flex_reviews/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db: the approval log is optional. A dead database must not keep
	// the dashboard from serving, so we degrade instead of exiting.
	var repo *mysqlrepo.Repo
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Warn().Err(err).Msg("sql.Open failed, approvals will not persist")
	} else if err := db.Ping(); err != nil {
		log.Warn().Err(err).Msg("db.Ping failed, approvals will not persist")
	} else {
		log.Info().Msg("database connection ok")
		repo = mysqlrepo.New(db)
	}

	client, err := hostaway.New(cfg.HostawayBase, cfg.HostawayAccount, cfg.HostawayKey, cfg.ReviewLimit, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Hostaway client")
	}

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	st := newStore(client, repo)
	q := app.NewQueryService(st, cache, cfg.StatsTTL)

	// cached statistics belong to the collection that produced them;
	// drop them whenever the collection is replaced
	st.OnLoad(func() { q.InvalidateStats(ctx) })
	st.Load(ctx) // falls back to the bundled sample on fetch failure

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, S: st})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// newStore avoids handing store.New a non-nil interface wrapping a nil
// *Repo when the database is unavailable.
func newStore(client *hostaway.Client, repo *mysqlrepo.Repo) *store.Store {
	if repo == nil {
		return store.New(client, nil)
	}
	return store.New(client, repo)
}
