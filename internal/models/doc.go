// Package models defines the persisted domain records of the profit-sharing
// ledger.
//
// # Records
//
//   - Transaction: a profit or cost event on a calendar date
//   - Stakeholder: a party entitled to an equal share of positive monthly balances
//   - Payment: a disbursement to a stakeholder, either scoped to one period
//     or global (settling against the cumulative balance)
//   - User: an operator account allowed to mutate the ledger
//
// Derived structures (monthly calculations, balances, the financial summary)
// live in package calculator and are never persisted.
//
// # Design Principles
//
// 1. **Integer identities**: ledger records use store-assigned int64 ids that are never reused
// 2. **Exact money**: amounts are decimal.Decimal, never float64
// 3. **No cached derived state**: records carry only what was entered
// 4. **References by id**: payments point at stakeholders by StakeholderID, not by pointer
package models
