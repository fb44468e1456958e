package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"
	"github.com/ngrok/sqlmw"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	sqliteMetricsDriver   = "sqlite3_metrics"
	postgresMetricsDriver = "pgx_metrics"
)

var (
	statementRegex = regexp.MustCompile(`^\s*(\w+)`)

	dbOpLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:      "db_op_duration_milliseconds",
		Help:      "Time spent on a database operation",
		Subsystem: "switch_inventory",
		Buckets:   []float64{1, 5, 20, 100, 500, 1000},
	}, []string{"op", "statement"})

	dbOpTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "db_op_total",
		Help:      "Number of database operations",
		Subsystem: "switch_inventory",
	}, []string{"op"})

	registerDrivers sync.Once
)

func init() {
	prometheus.MustRegister(dbOpLatency)
	prometheus.MustRegister(dbOpTotal)
}

// registerMetricsDrivers registers the instrumented sqlite and postgres drivers once per process.
func registerMetricsDrivers() {
	registerDrivers.Do(func() {
		sql.Register(sqliteMetricsDriver, sqlmw.Driver(&sqlite3.SQLiteDriver{}, &metricInterceptor{}))
		sql.Register(postgresMetricsDriver, sqlmw.Driver(stdlib.GetDefaultDriver(), &metricInterceptor{}))
	})
}

type metricInterceptor struct {
	sqlmw.NullInterceptor
}

func (mi *metricInterceptor) ConnBeginTx(ctx context.Context, conn driver.ConnBeginTx, opts driver.TxOptions) (context.Context, driver.Tx, error) {
	defer mi.measure("begin-tx", "begin", time.Now())

	tx, err := conn.BeginTx(ctx, opts)
	return ctx, tx, err
}

func (mi *metricInterceptor) ConnPrepareContext(ctx context.Context, conn driver.ConnPrepareContext, query string) (context.Context, driver.Stmt, error) {
	defer mi.measure("prepare", statement(query), time.Now())

	stmt, err := conn.PrepareContext(ctx, query)
	return ctx, stmt, err
}

func (mi *metricInterceptor) ConnExecContext(ctx context.Context, conn driver.ExecerContext, query string, args []driver.NamedValue) (driver.Result, error) {
	defer mi.measure("exec", statement(query), time.Now())

	return conn.ExecContext(ctx, query, args)
}

func (mi *metricInterceptor) ConnQueryContext(ctx context.Context, conn driver.QueryerContext, query string, args []driver.NamedValue) (context.Context, driver.Rows, error) {
	defer mi.measure("query", statement(query), time.Now())

	rows, err := conn.QueryContext(ctx, query, args)
	return ctx, rows, err
}

func (mi *metricInterceptor) StmtExecContext(ctx context.Context, conn driver.StmtExecContext, query string, args []driver.NamedValue) (driver.Result, error) {
	defer mi.measure("stmt-exec", statement(query), time.Now())
	return conn.ExecContext(ctx, args)
}

func (mi *metricInterceptor) StmtQueryContext(ctx context.Context, conn driver.StmtQueryContext, query string, args []driver.NamedValue) (context.Context, driver.Rows, error) {
	defer mi.measure("stmt-query", statement(query), time.Now())

	rows, err := conn.QueryContext(ctx, args)
	return ctx, rows, err
}

func (mi *metricInterceptor) TxCommit(ctx context.Context, conn driver.Tx) error {
	defer mi.measure("tx-commit", "commit", time.Now())
	return conn.Commit()
}

func (mi *metricInterceptor) TxRollback(ctx context.Context, conn driver.Tx) error {
	defer mi.measure("tx-rollback", "rollback", time.Now())
	return conn.Rollback()
}

func (mi *metricInterceptor) measure(op, stmt string, start time.Time) {
	dbOpTotal.WithLabelValues(op).Inc()
	dbOpLatency.WithLabelValues(op, stmt).Observe(float64(time.Since(start).Milliseconds()))
}

// statement returns the lower cased leading keyword of query (select, insert, ...).
func statement(query string) string {
	matches := statementRegex.FindStringSubmatch(query)
	if len(matches) < 2 {
		return "other"
	}
	return strings.ToLower(matches[1])
}
