// Package models defines the core domain models for the roommate backend.
//
// # Models
//
// The household is described by a small set of plain records:
//   - User: a roommate, with presence status and optional room metadata
//   - Group: the one shared residence in scope, with its members and invite code
//   - Todo: a personal or group task (group tasks carry a GroupID)
//   - Expense: a shared expense with one ExpenseSplit per participant
//   - ShoppingItem: an entry on the shared shopping list
//   - CleaningDuty: a round-robin cleaning rotation with its history
//   - Notice, LostAndFound, BillReminder, Document: the household board
//
// Records carry no behaviour. Invariants (settled flags, the cleaning ring,
// purchase pairing) are enforced by the calculator and store packages.
//
// # Design Principles
//
//  1. **Closed enums**: every string union is a named type with typed constants
//     and a Parse helper, so unknown values are rejected at the edges
//  2. **IDs, not pointers**: relationships are expressed with ID strings
//  3. **One shape**: json and yaml tags match, so seeds and RPC payloads agree
package models
