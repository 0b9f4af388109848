// Package daybook provides the types and operations for tracking one
// restaurant day: the menu catalog, the order cart and ledger, ad-hoc
// expenses, and the profit figures derived from them. It is designed to be
// local-first and single-user, ensuring the operator has full control and
// transparency over the day's data.
//
// The core functionalities include:
//   - Menu Management: Creating, editing and deleting sellable items with a
//     sale price, a unit cost, and optional stock tracking.
//   - Order Ledger: A cart that snapshots prices and costs when a line is
//     added, atomic order placement over tracked stock, and voiding.
//   - Daily Summary: A stateless computation of revenue, cost of goods sold,
//     gross profit, expense total and net profit, using exact decimal
//     arithmetic throughout.
//   - Data Persistence: A versioned, deterministic JSON form of the whole
//     day state, written under a fixed key of a flat key-value store, plus a
//     CSV export of the order ledger.
//
// This package serves as the foundational logic for the `dbk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package daybook
