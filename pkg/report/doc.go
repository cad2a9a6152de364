// Package report renders run summaries as Markdown for sharing and
// record-keeping. The harvest command writes one report per run when
// asked to.
package report
