package booking

import "github.com/anuratyres/ATS-ShopService/pkg/dbmetrics"

// Reuse the dbmetrics interfaces so the repository works against the plain
// pool, the instrumented wrapper and open transactions alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
