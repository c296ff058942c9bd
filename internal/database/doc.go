// Package database opens the sqlite store that backs the people table and
// applies its embedded schema migrations.
package database
