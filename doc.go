// Package kuuid provides a UUID value type whose single textual form is the
// 22-character url-safe unpadded base64 encoding, instead of the canonical
// 36-character hyphenated hex.
//
// The short form is friendlier for URLs, log lines and human eyes: it is
// shorter, and being case-sensitive the shape of an ID helps tell two IDs
// apart at a glance. The raw value stays an ordinary 16-byte UUID, so
// database columns and external systems keep their native representation.
//
//	known := kcore.Must(uuid.FromString("b0c1ee86-6f46-4f1b-8d8b-7849e75dbcee"))
//	id := kuuid.From(known)
//	id.String() // "sMHuhm9GTxuNi3hJ51287g"
//
// New generates version 4 IDs. Any UUID version converts through From; the
// package never inspects version or variant bits.
package kuuid
