// Package style holds the lipgloss colours and styles used for terminal
// output, plus the terminal capability checks that decide whether any
// styling is applied at all.
package style
