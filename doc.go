// Package plist implements the old-style (OpenStep/NeXT) ASCII property
// list format: nested dictionaries, arrays, strings, numbers and raw
// binary data in a human-readable text syntax.
// Parse turns a document into a Value tree and Write turns a Value tree
// back into a document; the writer's quoting decisions exist to guarantee
// the parser recovers the original value kinds.
package plist
