// Package isocsv loads graph.EdgeInput rows from a flat CSV file, for
// ad-hoc debugging and for feeding small fixtures into command-line tools
// without a database.
//
// The expected columns are:
//
//	id,source,target,cost,reverse_cost,length,geometry
//
// geometry is a JSON array of [x, y] pairs, e.g. [[0,0],[1,0],[2,1]]. A
// header row is required and its column names are matched case-sensitively
// against the names above; extra columns are ignored, missing required
// columns are an error.
package isocsv
