// Package dataprocessing turns raw tabular season exports (CSV or XLSX) into
// typed domain records. It applies per-column coercion with a non-strict
// policy: a cell that cannot be parsed becomes null, never a row failure.
// Rows are only dropped when their discriminator column (Partits for players,
// Jornada for matches) is null after coercion.
package dataprocessing
