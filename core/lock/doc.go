// Package lock serializes reconciliation passes per printer.
//
// Two passes for the same printer must never overlap: both could decide a
// tray needs a new spool record and create duplicates. RedisLocker gives
// that guarantee across processes; MemoryLocker within one process.
package lock
