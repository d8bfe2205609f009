// Package runlog persists a history of pipeline invocations in SQLite.
//
// Each processing run gets one row recording its source, language, options,
// written artifacts, warnings, and final status. The log is bookkeeping
// only: nothing in it ever feeds back into caption processing.
package runlog
