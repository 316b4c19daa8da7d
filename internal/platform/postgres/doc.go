// Package postgres contains the PostgreSQL implementations of the store
// interfaces. Stores accept a store.DBTX so they run equally over a
// connection pool or a transaction, and translate driver errors into the
// sentinel errors defined in internal/store.
package postgres
