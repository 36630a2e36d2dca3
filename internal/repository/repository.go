// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
// Interfaces here are strictly persistence operations; no business logic.
//
// Delete operations report database/sql.ErrNoRows when no row matched so the
// caller can distinguish "deleted" from "was never there".
package repository
