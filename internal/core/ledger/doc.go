// Package ledger derives the store's financial views from raw records.
//
// Every function is a pure computation over in-memory collections: nothing is
// cached between calls and no record is mutated. Callers are expected to pass
// collections read at approximately the same instant (see domain.Snapshot);
// the package cannot detect a sale fetched before its receivable was written.
// All sums use exact decimal arithmetic, so results do not depend on the order
// of records within a collection.
//
// Failures come in three kinds:
//   - ErrInvalidInput fails the whole call and nothing partial is returned.
//   - domain.LookupMiss degrades one line to zero and is returned as data.
//   - domain.DuplicateCashEvent is returned as data for a human to resolve.
package ledger
