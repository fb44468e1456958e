package store

import (
	"context"
	"errors"
	"time"

	"github.com/kubev2v/switch-inventory/pkg/requestid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type contextKey int

const (
	transactionKey contextKey = iota
)

var errTxNotStarted = errors.New("transaction hasn't started yet")

// Tx is a database transaction carried by a context. Store calls made with that
// context join it until Commit or Rollback.
type Tx struct {
	txID    int64
	tx      *gorm.DB
	started time.Time
	// fields are logged when the transaction ends
	fields []any
	log    *zap.SugaredLogger
}

func Commit(ctx context.Context) (context.Context, error) {
	tx := txFromContext(ctx)
	if tx == nil {
		return ctx, nil
	}
	return context.WithValue(ctx, transactionKey, nil), tx.Commit()
}

func Rollback(ctx context.Context) (context.Context, error) {
	tx := txFromContext(ctx)
	if tx == nil {
		return ctx, nil
	}
	return context.WithValue(ctx, transactionKey, nil), tx.Rollback()
}

// Annotate attaches key/value pairs to the transaction of ctx, if any.
// They are part of the log line written when the transaction ends.
func Annotate(ctx context.Context, keysAndValues ...any) {
	if tx := txFromContext(ctx); tx != nil {
		tx.fields = append(tx.fields, keysAndValues...)
	}
}

func FromContext(ctx context.Context) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx.tx
	}
	return nil
}

func txFromContext(ctx context.Context) *Tx {
	tx, _ := ctx.Value(transactionKey).(*Tx)
	return tx
}

func newTransactionContext(ctx context.Context, db *gorm.DB) (context.Context, error) {
	if txFromContext(ctx) != nil {
		return ctx, nil
	}

	tx, err := newTransaction(db.Session(&gorm.Session{Context: ctx}))
	if err != nil {
		return ctx, err
	}
	if id := requestid.FromContext(ctx); id != "" {
		tx.fields = append(tx.fields, "request_id", id)
	}

	return context.WithValue(ctx, transactionKey, tx), nil
}

func newTransaction(db *gorm.DB) (*Tx, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	// postgres ids are recycled after vacuum; they only correlate log lines
	var txid struct{ ID int64 }
	if db.Dialector.Name() == "postgres" {
		tx.Raw("select txid_current() as id").Scan(&txid)
	}

	return &Tx{
		txID:    txid.ID,
		tx:      tx,
		started: time.Now(),
		log:     zap.S().Named("store"),
	}, nil
}

func (t *Tx) Commit() error {
	return t.end("commit", "committed", func() error { return t.tx.Commit().Error })
}

func (t *Tx) Rollback() error {
	return t.end("rollback", "rolled back", func() error { return t.tx.Rollback().Error })
}

func (t *Tx) end(action, done string, finish func() error) error {
	if t.tx == nil {
		return errTxNotStarted
	}

	fields := append([]any{"txid", t.txID, "duration", time.Since(t.started)}, t.fields...)
	if err := finish(); err != nil {
		t.log.Errorw("failed to "+action+" transaction", append(fields, "error", err)...)
		return err
	}

	t.tx = nil
	t.log.Debugw("transaction "+done, fields...)
	return nil
}
