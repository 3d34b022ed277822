// Package report renders a check.Collection at the program boundary: as
// Nagios plugin output through go-nagios, as JSON, or as a styled terminal
// table.
package report
