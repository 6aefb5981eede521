package reservation

import (
	"github.com/ysiverio/reservasBarberia/pkg/dbmetrics"
)

// Reuse the executor interfaces from dbmetrics so the repository runs the
// same against *sql.DB, the instrumented wrapper, or an open transaction.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
