// Package tui is the bubbletea viewer for the people table. All table state
// lives in service.Directory; the App only maps keys onto it and draws the
// derived page with the widgets package.
package tui
