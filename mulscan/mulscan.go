// Package mulscan scans corrupted program memory for mul(A,B)
// instructions, optionally honoring do() and don't() toggles, and adds up
// the products.
//
// Anything that doesn't form a complete instruction is skipped. A failed
// partial match is not rewound, but the byte that broke the match is never
// consumed, and none of the bytes that can be consumed along the way (u, l,
// o, n, the apostrophe, t, digits and punctuation) start an instruction.
// So "mul(mul(2,3)" still counts 2*3.
package mulscan

import (
	"fmt"
	"strings"
)

// Kinds is a set of instruction kinds to recognize.
type Kinds uint8

const (
	Mul    Kinds = 1 << iota // mul(A,B)
	Toggle                   // do() and don't()
)

// Has reports whether every kind in k1 is in k.
func (k Kinds) Has(k1 Kinds) bool { return k&k1 == k1 }

// String returns the kinds in k as a comma-separated list, or "none".
func (k Kinds) String() string {
	var parts []string
	if k.Has(Mul) {
		parts = append(parts, "mul")
	}
	if k.Has(Toggle) {
		parts = append(parts, "toggle")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// An Instruction is one instruction found by Instructions.
type Instruction struct {
	Kind Kinds
	Off  int // byte offset of the leading 'm' or 'd'

	// For Mul.
	A, B    uint64
	Counted bool // whether the product went into the total

	// For Toggle.
	Enable bool
}

func (in Instruction) String() string {
	if in.Kind == Toggle {
		if in.Enable {
			return fmt.Sprintf("%d: do()", in.Off)
		}
		return fmt.Sprintf("%d: don't()", in.Off)
	}
	s := fmt.Sprintf("%d: mul(%d,%d) = %d", in.Off, in.A, in.B, in.A*in.B)
	if !in.Counted {
		s += " (disabled)"
	}
	return s
}

// Scan returns the sum of the products of every enabled mul instruction
// in input. Only the kinds in k are recognized; without Toggle, every mul
// counts.
func Scan(input string, k Kinds) uint64 {
	var sum uint64
	scan(input, k, func(in Instruction) {
		if in.Counted {
			sum += in.A * in.B
		}
	})
	return sum
}

// Instructions returns the instructions Scan would see, in order.
func Instructions(input string, k Kinds) []Instruction {
	var ins []Instruction
	scan(input, k, func(in Instruction) { ins = append(ins, in) })
	return ins
}

func scan(input string, k Kinds, emit func(Instruction)) {
	c := NewCursor(input)
	enabled := true
	for {
		off := c.Pos()
		b, ok := c.Next()
		if !ok {
			return
		}
		switch b {
		case 'm':
			if !k.Has(Mul) || !c.ConsumeAll("ul(") {
				continue
			}
			x, ok := c.Digits(',')
			if !ok {
				continue
			}
			y, ok := c.Digits(')')
			if !ok {
				continue
			}
			emit(Instruction{Kind: Mul, Off: off, A: x, B: y, Counted: enabled})
		case 'd':
			if !k.Has(Toggle) || !c.Consume('o') {
				continue
			}
			switch {
			case c.ConsumeAll("()"):
				enabled = true
			case c.ConsumeAll("n't()"):
				enabled = false
			default:
				continue
			}
			emit(Instruction{Kind: Toggle, Off: off, Enable: enabled})
		}
	}
}
