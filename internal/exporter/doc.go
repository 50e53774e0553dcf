// Package exporter writes the machine-readable build artifacts: the clean
// roster and match tables, the chart-ready cumulative series as CSV, and a
// season.json snapshot consumed by the preview server. Exports are a side
// output of the build; the HTML pages do not read them.
package exporter
