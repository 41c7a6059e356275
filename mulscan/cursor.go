package mulscan

// A Cursor reads a string one byte at a time, front to back.
// Lookahead (Peek) never moves the cursor.
type Cursor struct {
	s   string
	pos int
}

// NewCursor returns a Cursor positioned at the start of s.
func NewCursor(s string) *Cursor {
	return &Cursor{s: s}
}

// Pos reports the index of the next byte to be read.
func (c *Cursor) Pos() int { return c.pos }

// Next returns the current byte and advances. It reports false once the
// input is exhausted.
func (c *Cursor) Next() (byte, bool) {
	b, ok := c.Peek()
	if c.pos < len(c.s) {
		c.pos++
	}
	return b, ok
}

// Peek returns the current byte without advancing.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.s) {
		return 0, false
	}
	return c.s[c.pos], true
}

// Advance moves forward one byte regardless of content.
func (c *Cursor) Advance() {
	if c.pos < len(c.s) {
		c.pos++
	}
}

// Consume advances past b if it is the current byte.
func (c *Cursor) Consume(b byte) bool {
	if p, ok := c.Peek(); !ok || p != b {
		return false
	}
	c.Advance()
	return true
}

// ConsumeAll consumes each byte of s in turn. On a mismatch the cursor
// stays wherever the partial match stopped; it does not rewind to where
// ConsumeAll began.
func (c *Cursor) ConsumeAll(s string) bool {
	for i := 0; i < len(s); i++ {
		if !c.Consume(s[i]) {
			return false
		}
	}
	return true
}

// Digits reads a run of decimal digits ending in term and returns its
// value. term is consumed. If any other byte (or the end of input) shows
// up first, Digits reports false and leaves the cursor on that byte; the
// digits read so far stay consumed.
//
// There is no overflow check: large values wrap.
func (c *Cursor) Digits(term byte) (uint64, bool) {
	var n uint64
	for {
		b, ok := c.Peek()
		switch {
		case !ok:
			return 0, false
		case b >= '0' && b <= '9':
			n = n*10 + uint64(b-'0')
			c.Advance()
		case b == term:
			c.Advance()
			return n, true
		default:
			return 0, false
		}
	}
}
