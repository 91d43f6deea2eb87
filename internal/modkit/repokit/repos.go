// Package repokit carries the shared seams repository implementations
// bind against
package repokit

import (
	"vibecheck/internal/platform/store"
)

// Queryer is the statement surface a bound repo runs on; a pool and a
// transaction both satisfy it
type Queryer = store.RowQuerier

// TxRunner executes a function inside a transaction
type TxRunner = store.TxRunner
