package pgsql_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	"github.com/SscSPs/currency_calculator/internal/repositories/database/pgsql"
	"github.com/SscSPs/currency_calculator/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const migrationsSource = "file://../../../../migrations"

var (
	db      *pgxpool.Pool
	connStr string
)

func TestMain(m *testing.M) {
	if os.Getenv("SKIP_DOCKER_TESTS") != "" {
		log.Println("SKIP_DOCKER_TESTS set, skipping Postgres integration tests")
		os.Exit(0)
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Printf("Could not construct pool, skipping: %s", err)
		os.Exit(0)
	}
	if err := pool.Client.Ping(); err != nil {
		log.Printf("Could not connect to Docker, skipping: %s", err)
		os.Exit(0)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=pass",
			"POSTGRES_USER=user",
			"POSTGRES_DB=rates",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	_ = resource.Expire(120)

	connStr = fmt.Sprintf("postgres://user:pass@%s/rates?sslmode=disable", resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 30 * time.Second
	if err := pool.Retry(func() error {
		var err error
		db, err = database.NewPgxPool(context.Background(), connStr)
		return err
	}); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("Could not connect to postgres: %s", err)
	}

	if err := database.RunMigrations(migrationsSource, connStr); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("Could not migrate: %s", err)
	}

	code := m.Run()

	database.ClosePgxPool(db)
	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

type PgxStoreTestSuite struct {
	suite.Suite
	store      *pgsql.LocalStore
	timestamps *pgsql.PgxTimestampRepository
	ctx        context.Context
}

func (s *PgxStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	_, err := db.Exec(s.ctx, `TRUNCATE currencies, quotes, cache_timestamps;`)
	s.Require().NoError(err)
	s.store = pgsql.NewLocalStore(db)
	s.timestamps = pgsql.NewPgxTimestampRepository(db)
}

func TestPgxStoreTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Postgres integration tests in short mode")
	}
	suite.Run(t, new(PgxStoreTestSuite))
}

func (s *PgxStoreTestSuite) TestEmptyStore() {
	currencies, err := s.store.GetCurrencies(s.ctx)
	s.NoError(err)
	s.Empty(currencies)

	quotes, err := s.store.GetQuotes(s.ctx)
	s.NoError(err)
	s.Empty(quotes)
}

func (s *PgxStoreTestSuite) TestSaveCurrencies_ReplacesAndOrders() {
	s.Require().NoError(s.store.SaveCurrencies(s.ctx, []domain.Currency{
		{ID: "USD", FullName: "United States Dollar"},
		{ID: "OLD", FullName: "Retired"},
	}))

	latest := []domain.Currency{
		{ID: "TWD", FullName: "New Taiwan Dollar"},
		{ID: "JPY", FullName: "Japanese Yen"},
	}
	s.Require().NoError(s.store.SaveCurrencies(s.ctx, latest))
	s.Require().NoError(s.store.SaveCurrencies(s.ctx, latest))

	got, err := s.store.GetCurrencies(s.ctx)
	s.Require().NoError(err)
	s.Equal([]domain.Currency{
		{ID: "JPY", FullName: "Japanese Yen"},
		{ID: "TWD", FullName: "New Taiwan Dollar"},
	}, got)
}

func (s *PgxStoreTestSuite) TestSaveQuotes_KeepsPrecision() {
	rate := decimal.RequireFromString("0.000012345678901234")
	s.Require().NoError(s.store.SaveQuotes(s.ctx, []domain.Quote{
		{ID: "USD", Rate: decimal.NewFromInt(1)},
		{ID: "BTC", Rate: rate},
	}))

	got, err := s.store.GetQuotes(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("BTC", got[0].ID)
	s.True(rate.Equal(got[0].Rate), "got %s", got[0].Rate)
	s.Equal("USD", got[1].ID)
}

func (s *PgxStoreTestSuite) TestSaveQuotes_EmptyClears() {
	s.Require().NoError(s.store.SaveQuotes(s.ctx, []domain.Quote{{ID: "USD", Rate: decimal.NewFromInt(1)}}))
	s.Require().NoError(s.store.SaveQuotes(s.ctx, nil))

	got, err := s.store.GetQuotes(s.ctx)
	s.NoError(err)
	s.Empty(got)
}

func (s *PgxStoreTestSuite) TestTimestamps() {
	ts, err := s.timestamps.GetTimestamp(s.ctx, domain.CacheKeyQuotes)
	s.Require().NoError(err)
	s.Zero(ts)

	s.Require().NoError(s.timestamps.SetTimestamp(s.ctx, domain.CacheKeyQuotes, 1744891200))
	s.Require().NoError(s.timestamps.SetTimestamp(s.ctx, domain.CacheKeyQuotes, 1744893000))

	ts, err = s.timestamps.GetTimestamp(s.ctx, domain.CacheKeyQuotes)
	s.Require().NoError(err)
	s.Equal(int64(1744893000), ts)

	ts, err = s.timestamps.GetTimestamp(s.ctx, domain.CacheKeyCurrencies)
	s.Require().NoError(err)
	s.Zero(ts)
}

func (s *PgxStoreTestSuite) TestConcurrentSaves_LeaveOneSnapshot() {
	snapshots := [][]domain.Currency{
		{{ID: "AAA", FullName: "A"}, {ID: "BBB", FullName: "B"}},
		{{ID: "CCC", FullName: "C"}},
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(snap []domain.Currency) {
			defer wg.Done()
			_ = s.store.SaveCurrencies(s.ctx, snap)
		}(snapshots[i%2])
	}
	wg.Wait()

	got, err := s.store.GetCurrencies(s.ctx)
	s.Require().NoError(err)
	s.True(len(got) == 1 || len(got) == 2, "unexpected snapshot %v", got)
	if len(got) == 1 {
		s.Equal(snapshots[1], got)
	} else {
		s.Equal(snapshots[0], got)
	}
}

func (s *PgxStoreTestSuite) TestRollbackAfterCommitIsNoop() {
	base := &pgsql.BaseRepository{Pool: db}

	tx, err := base.Begin(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(base.Commit(s.ctx, tx))

	s.NoError(base.Rollback(s.ctx, tx))
}
