package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

const day1Sample = `3   4
4   3
2   5
1   3
3   9
3   3
`

func init() {
	register("1a", solution{fn: day1a, sample: day1Sample, want: 11})
	register("1b", solution{fn: day1b, sample: day1Sample, want: 31})
}

func day1a(r io.Reader) (uint64, error) {
	left, right, err := parseLists(r)
	if err != nil {
		return 0, err
	}
	sort.Ints(left)
	sort.Ints(right)
	var dist uint64
	for i := range left {
		d := left[i] - right[i]
		if d < 0 {
			d = -d
		}
		dist += uint64(d)
	}
	return dist, nil
}

func day1b(r io.Reader) (uint64, error) {
	left, right, err := parseLists(r)
	if err != nil {
		return 0, err
	}
	counts := make(map[int]int)
	for _, n := range right {
		counts[n]++
	}
	var similarity uint64
	for _, n := range left {
		similarity += uint64(n * counts[n])
	}
	return similarity, nil
}

// parseLists reads two columns of non-negative numbers.
func parseLists(r io.Reader) (left, right []int, err error) {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d: got %d fields; want 2", line, len(fields))
		}
		var pair [2]int
		for i, field := range fields {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %s", line, err)
			}
			if n < 0 {
				return nil, nil, fmt.Errorf("line %d: negative location ID %d", line, n)
			}
			pair[i] = n
		}
		left = append(left, pair[0])
		right = append(right, pair[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return left, right, nil
}
