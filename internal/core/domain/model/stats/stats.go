// Package stats holds the KPI values shown on the shipdesk dashboard strip.
package stats

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DashboardStats is the aggregate the backend computes for administrators.
type DashboardStats struct {
	TotalPackages     int64
	CreatedPackages   int64
	InTransitPackages int64
	DeliveredPackages int64
	CancelledPackages int64
	TotalUsers        int64
	TotalCustomers    int64
	TotalCouriers     int64
}

// Icon references the glyph drawn on a tile.
type Icon string

const (
	IconPackage     Icon = "package"
	IconTruck       Icon = "truck"
	IconCheckCircle Icon = "check-circle"
	IconClock       Icon = "clock"
)

// Color tags the accent of a tile.
type Color string

const (
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
)

// Tile is one summary statistic. Change is empty when no trend is known.
type Tile struct {
	Label  string
	Value  int64
	Icon   Icon
	Color  Color
	Change string
}

var numberPrinter = message.NewPrinter(language.English)

// DisplayValue renders Value with thousands separators, e.g. "12,480".
func (t Tile) DisplayValue() string {
	return numberPrinter.Sprintf("%d", t.Value)
}

// HasChange reports whether a trend delta is attached.
func (t Tile) HasChange() bool {
	return t.Change != ""
}

// Positive reports whether the attached trend is an increase.
func (t Tile) Positive() bool {
	return len(t.Change) > 0 && t.Change[0] == '+'
}
