// SPDX-License-Identifier: MIT

// Package loader reads the network, source groups, targets and unit tables from disk
// and writes analysis results back out.
//
// Supported inputs: edge and vertex lists as CSV, unit tables as CSV, XLSX or the
// attribute table of a polygon shapefile. Unit polygons together with vertex
// coordinates yield each unit's access points.
package loader
