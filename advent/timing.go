package main

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

type timing struct {
	wall time.Duration
	cpu  time.Duration // utime+stime
}

func (t timing) String() string {
	return fmt.Sprintf("wall %s, cpu %s",
		t.wall.Round(time.Microsecond),
		t.cpu.Round(time.Microsecond),
	)
}

type timer struct {
	start time.Time
	cpu0  time.Duration
}

// startTiming begins measuring wall and CPU time. The CPU time is for the
// whole process, so with -parallel it includes the other solutions.
func startTiming() timer {
	return timer{start: time.Now(), cpu0: cpuTime()}
}

func (t timer) stop() timing {
	return timing{
		wall: time.Since(t.start),
		cpu:  cpuTime() - t.cpu0,
	}
}

func cpuTime() time.Duration {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano())
}
