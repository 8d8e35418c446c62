// Package payproc computes final per-client account balances from an
// ordered stream of financial activity records.
//
// The core functionalities include:
//   - Account Ledger: Per-client balance bookkeeping (available, held,
//     total) driven exclusively by activity events, including the full
//     dispute lifecycle (dispute, resolve, chargeback) and account
//     locking after a chargeback.
//   - Activity Processing: Folding a finite sequence of parsed
//     activity records, keyed by client, into a final set of account
//     snapshots. Records that fail to parse or to apply are reported
//     through an Observer and skipped; nothing aborts a run.
//   - Exact Arithmetic: All amounts are exact decimals, so
//     total == available + held holds without floating-point drift.
//
// This package serves as the foundational logic for the `ppc`
// command-line tool; format adapters live in the csvio and jsonio
// subpackages.
package payproc
