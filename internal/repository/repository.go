// Package repository handles all interactions with the database.
//
// It contains the visitor query catalog and the methods that run it,
// abstracting SQL away from the service layer. Repositories talk to the
// store only through DBTX, so tests can substitute a recording fake
package repository
