// Package service connects the people store to the data table: Directory
// owns the table state and IngestService imports people from CSV.
package service
