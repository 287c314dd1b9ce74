package invoice

import (
	"context"
	"database/sql"

	"github.com/lotusspa/SPA-OrderService/pkg/dbmetrics"
)

// Database interfaces are reused from dbmetrics so the repository works
// both with a plain *sql.DB and with the metric-collecting wrapper.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
