// Package recorder holds selector.Recorder implementations.
//
//   - Memory keeps every report in process; safe for concurrent readers.
//   - CSV writes the run to a directory as GraphEdges.csv, TrafficCounts.csv,
//     RoadEvaluations.csv and SelectedRoads.csv.
//
// ReadEdges loads a GraphEdges.csv back into edge records, so a finished
// network can seed the next run.
package recorder
