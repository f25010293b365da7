// Package services provides domain services that derive values spanning several
// domain objects in shipdesk.
//
// The package includes:
//   - StatsAggregator: builds the dashboard KPI tiles for a principal
package services
