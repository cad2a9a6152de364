// Package harvest implements the email harvesting core: walking paged search
// results for each query, extracting publisher and maintainer addresses,
// deduplicating them against the already-contacted set, and writing per-query
// output files.
//
// # Flow
//
// For each query, a [Walker] fetches a fixed number of result pages in
// arrival order. Every package's contacts pass through [ExtractEmails] and
// then [Dedupe], which retains an address only if it is the first occurrence
// for the query, absent from the sent set, and absent from the running
// new-email set. The [Runner] threads that state explicitly through the
// query loop, so an address is never emitted for two queries in one run.
//
// # Failure Model
//
// A page fetch that exhausts its retry budget aborts the remaining pages for
// that query. By default the runner logs the failure and moves on to the
// next query; with FailFast set it aborts the whole run instead. Output
// write failures are logged and never block subsequent queries.
package harvest
