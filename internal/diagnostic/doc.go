// Package diagnostic collects non-fatal issues found during a generation
// run, so one bad class never aborts generation of the remaining thousands.
// Errors are aggregated and surfaced once, at the end of the run.
package diagnostic
