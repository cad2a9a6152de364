// Package pkg provides the core libraries for pkgreach email harvesting.
//
// # Overview
//
// pkgreach walks npm registry search results for a list of queries and
// collects maintainer contact emails that have not been seen before. The
// pkg directory is organized into four main areas:
//
//  1. [registry] - The cached, retrying search client
//  2. [harvest] - The per-query walk, extraction, and dedupe pipeline
//  3. [sentstore] - Sent-set persistence (file or redis)
//  4. [report] - Markdown run reports
//
// # Architecture
//
// The typical data flow through pkgreach:
//
//	queries file
//	         ↓
//	    [harvest] package (walk pages per query)
//	         ↓
//	    [registry/npm] package (cached search requests)
//	         ↓
//	    [harvest] extraction + dedupe against [sentstore]
//	         ↓
//	    per-query output files + [report] summary
//
// Supporting packages: [httputil] (response cache and retry pacing),
// [errors] (structured error codes), [observability] (progress and
// metrics hooks), [buildinfo] (version metadata).
package pkg
