package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/BRB-ScheduleService/pkg/metrics"
)

// DBExecutor интерфейс выполнения запросов
// Реализуется *sql.DB, *DB и транзакциями
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// DB обёртка над *sql.DB, записывающая метрики каждого запроса
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает *sql.DB сбором метрик запросов
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault оборачивает *sql.DB и запускает периодический сбор
// статистики connection pool до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go wrapped.collectPoolStats(stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBPoolStats.WithLabelValues("open").Set(float64(stats.OpenConnections))
			d.metrics.DBPoolStats.WithLabelValues("in_use").Set(float64(stats.InUse))
			d.metrics.DBPoolStats.WithLabelValues("idle").Set(float64(stats.Idle))
		}
	}
}

// ExecContext выполняет запрос с записью метрик
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, err, time.Since(start))
	return result, err
}

// QueryContext выполняет запрос с записью метрик
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, err, time.Since(start))
	return rows, err
}

// QueryRowContext выполняет запрос с записью метрик
// Ошибка выполнения доступна только при Scan, поэтому статус всегда ok
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, nil, time.Since(start))
	return row
}

// BeginTx начинает транзакцию, запросы внутри неё тоже пишут метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &metricTx{tx: tx, parent: d}, nil
}

func (d *DB) observe(query string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.ObserveDBQuery(queryOperation(query), status, duration.Seconds())
}

// queryOperation извлекает первое слово запроса (SELECT, INSERT, ...) как label
// Произвольный текст запроса в label не попадает, чтобы не раздувать кардинальность
func queryOperation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

// metricTx транзакция с метриками
type metricTx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *metricTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.parent.observe(query, err, time.Since(start))
	return result, err
}

func (t *metricTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.parent.observe(query, err, time.Since(start))
	return rows, err
}

func (t *metricTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.parent.observe(query, nil, time.Since(start))
	return row
}

func (t *metricTx) Commit() error   { return t.tx.Commit() }
func (t *metricTx) Rollback() error { return t.tx.Rollback() }

// SqlTxWrapper адаптер *sql.Tx под интерфейс TxExecutor (без метрик)
type SqlTxWrapper struct {
	Tx *sql.Tx
}

func (w *SqlTxWrapper) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return w.Tx.ExecContext(ctx, query, args...)
}

func (w *SqlTxWrapper) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return w.Tx.QueryContext(ctx, query, args...)
}

func (w *SqlTxWrapper) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return w.Tx.QueryRowContext(ctx, query, args...)
}

func (w *SqlTxWrapper) Commit() error   { return w.Tx.Commit() }
func (w *SqlTxWrapper) Rollback() error { return w.Tx.Rollback() }
