//go:build unix

package termidle

import "os/exec"

func defaultRunner(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

// Probe queries who(1) for the idle time of interactive terminal sessions.
// Any failure — command missing, exit error, unparseable output — degrades
// to Unknown so callers fall back to the file-based signal alone.
func Probe() Minutes {
	return probe(defaultRunner)
}

func probe(run Runner) Minutes {
	out, err := run("who", "-u")
	if err != nil {
		return Unknown()
	}
	return parseWho(out)
}
