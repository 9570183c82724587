// Package models defines the records exchanged with the Lufa backend.
//
// Records are plain structs with json tags. Every money, boolean, date,
// timestamp and collection field uses a type from the decode package, so the
// tolerant decoding rules live in one place and a malformed field fails the
// whole record.
package models
