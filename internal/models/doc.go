// Package models defines the core domain records for Splittab.
//
// The ledger is made of three record kinds:
//   - Expense: a cost paid by one user and divided among participants,
//     created atomically with its ExpenseSplits
//   - ExpenseSplit: one participant's share of an expense, owned by it
//   - Settlement: an immutable direct payment between two users
//
// Users, friendships, and groups reference these records but carry no
// balance state of their own: balances are always derived from the
// current ledger contents, never stored.
//
// All monetary amounts are shopspring decimals with at most two
// fractional digits; timestamps are Unix seconds.
package models
