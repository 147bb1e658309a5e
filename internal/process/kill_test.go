package process

import "testing"

// Real termination is covered by closing a live browser; unit tests only
// check that bogus PIDs are ignored without panicking. PID 0 and negative
// values must never reach syscall.Kill since they target our own group.

func TestKillProcessGroup_IgnoresNonPositivePID(t *testing.T) {
	t.Parallel()

	for _, pid := range []int{0, -1, -12345} {
		KillProcessGroup(pid)
	}
}

func TestKillProcessGroup_UnknownPID(t *testing.T) {
	t.Parallel()

	KillProcessGroup(999999999)
}
