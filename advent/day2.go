package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const day2Sample = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
2 5 4 3 2
`

func init() {
	register("2a", solution{fn: day2a, sample: day2Sample, want: 2})
	register("2b", solution{fn: day2b, sample: day2Sample, want: 5})
}

func day2a(r io.Reader) (uint64, error) {
	return countSafe(r, func(levels []int64) bool {
		safe, _ := checkReport(levels)
		return safe
	})
}

func day2b(r io.Reader) (uint64, error) {
	return countSafe(r, dampenedSafe)
}

func countSafe(r io.Reader, safe func([]int64) bool) (uint64, error) {
	reports, err := parseMatrix(r)
	if err != nil {
		return 0, err
	}
	var n uint64
	for _, levels := range reports {
		if safe(levels) {
			n++
		}
	}
	return n, nil
}

// checkReport reports whether levels is strictly increasing or strictly
// decreasing by steps of 1 to 3. If not, it also returns the index i such
// that the step from levels[i] to levels[i+1] is the first bad one.
// Reports with fewer than two levels are not safe.
func checkReport(levels []int64) (safe bool, bad int) {
	if len(levels) < 2 || levels[0] == levels[1] {
		return false, 0
	}
	increasing := levels[0] < levels[1]
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if !increasing {
			d = -d
		}
		if d < 1 || d > 3 {
			return false, i - 1
		}
	}
	return true, 0
}

// dampenedSafe reports whether levels is safe after removing at most one
// level. Only the levels around the first bad step can help: either end of
// that step, or the level before it (which may have set the wrong
// direction).
func dampenedSafe(levels []int64) bool {
	safe, bad := checkReport(levels)
	if safe {
		return true
	}
	for _, i := range []int{bad, bad + 1, bad - 1} {
		if i < 0 || i >= len(levels) {
			continue
		}
		if safe, _ := checkReport(without(levels, i)); safe {
			return true
		}
	}
	return false
}

func without(s []int64, i int) []int64 {
	s1 := make([]int64, 0, len(s)-1)
	s1 = append(s1, s[:i]...)
	return append(s1, s[i+1:]...)
}

func parseMatrix(r io.Reader) ([][]int64, error) {
	var mat [][]int64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int64, len(fields))
		for i, field := range fields {
			n, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, err
			}
			row[i] = n
		}
		mat = append(mat, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return mat, nil
}
