// Package optinst reads combinatorial-optimization instance files — weighted
// set-cover problems, sparse undirected graphs, and Steiner-tree problems —
// into validated, immutable in-memory structures for downstream solvers.
//
// 🚀 What is optinst?
//
//	A small, dependency-light library that brings together:
//		• scan/        — line splitting, tokenizing, section location & the shared error set
//		• setcover/    — OR-Library-style weighted set-cover instances
//		• graphmatrix/ — sparse-matrix edge lists as undirected graphs
//		• steiner/     — SteinerLib-style sectioned files, directed & undirected
//
// ✨ Why choose optinst?
//
//   - Strict grammars – field order, 1-based indexing, and case-insensitive
//     section markers match the existing instance corpora bit-exactly
//   - Fail-fast – every grammar violation aborts the parse with a sentinel
//     error carrying the offending line, token, or bound
//   - Immutable results – each parse returns a value object with no hidden
//     references to its source; concurrent independent parses need no locks
//
// Quick example, an undirected Steiner file:
//
//	SECTION Graph
//	Nodes 4
//	Edges 3
//	E 1 2 5
//	E 2 3 3
//	E 3 4 2
//	SECTION Terminals
//	Terminals 2
//	T 1
//	T 4
//
// parses into an Instance with 4 vertices, 3 weighted links and terminals {1, 4}.
//
// Dive into each subpackage's doc.go for grammar details and error taxonomy.
//
//	go get github.com/kraussvitor/optinst
package optinst
