// Package io reads and writes factorization trees.
//
// # Snapshot Format
//
// A snapshot is a plain-text, line-oriented depth-first dump of a tree. Each
// node opens with its serial factorization followed by "[" and closes with a
// line holding "]". Leaves are written the same way, so every node takes
// exactly two lines:
//
//	0,1[
//	0,2[
//	]
//	1,1[
//	]
//	]
//
// The first line is the root. Snapshots round-trip exactly: [ReadSnapshot]
// of the output of [WriteSnapshot] yields a tree of the same shape and values.
//
// Reading is strict. A line that is neither "serial[" nor "]", a serial that
// does not parse, content after the root closes, or end of input before the
// root closes all yield a [*MalformedError] with the 1-based line number.
//
// # Import and Export
//
// Use [ImportSnapshot] and [ExportSnapshot] for files, [ReadSnapshot] and
// [WriteSnapshot] for any reader or writer:
//
//	t, err := io.ImportSnapshot("tree.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # JSON Export
//
// [WriteJSON] writes the tree as a node/edge list for external tools:
//
//	{
//	  "nodes": [{"id": 0, "serial": "0,1", "label": "{(1,1)}", "depth": 0}],
//	  "edges": [{"from": 0, "to": 1}]
//	}
//
// JSON is an export format only; snapshots are the way to store and reload
// trees.
package io
