package main

import (
	"io"

	"github.com/cespare/advent2024/mulscan"
)

const (
	day3aSample = "xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))\n"
	day3bSample = "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))\n"
)

func init() {
	register("3a", day3(mulscan.Mul, day3aSample, 161))
	register("3b", day3(mulscan.Mul|mulscan.Toggle, day3bSample, 48))
}

func day3(k mulscan.Kinds, sample string, want uint64) solution {
	return solution{
		fn: func(r io.Reader) (uint64, error) {
			b, err := io.ReadAll(r)
			if err != nil {
				return 0, err
			}
			return mulscan.Scan(string(b), k), nil
		},
		sample: sample,
		want:   want,
		explain: func(input string) any {
			return mulscan.Instructions(input, k)
		},
	}
}
