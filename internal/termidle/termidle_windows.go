//go:build windows

package termidle

// Probe has no who(1) equivalent on Windows; the terminal idle signal is
// always unknown and idle detection degrades to file timestamps alone.
func Probe() Minutes {
	return Unknown()
}
