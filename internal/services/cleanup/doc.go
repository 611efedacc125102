// Package cleanup orchestrates a full run: archive directory creation, the
// three allow-list partitions, the temp-artifact sweep, the printed summary,
// and the archive index write.
//
// Dry run is the default and performs zero filesystem mutation, directory
// creation included. There is no rollback: if a step fails partway, earlier
// moves stay applied and the error propagates.
package cleanup
