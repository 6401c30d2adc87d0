package syllable

import (
	"fmt"

	"github.com/lingora/phonetics"
	"github.com/lingora/phonetics/phone"
)

// Boundary markers over the unified sequence. End markers are
// past-the-end positions, half-open interval style: the onset occupies
// [OnsetBegin, OnsetEnd), and so on. A cursor parked on an end marker
// has no value under it.

// Begin returns the position of the first segment: always 0.
func (s *Syllable) Begin() int { return 0 }

// End returns the past-the-end position of the whole syllable.
func (s *Syllable) End() int { return s.Len() }

// OnsetBegin returns the position of the first onset segment.
func (s *Syllable) OnsetBegin() int { return 0 }

// OnsetEnd returns the past-the-end position of the onset.
func (s *Syllable) OnsetEnd() int { return len(s.onset) }

// NucleusBegin returns the position of the first nucleus segment.
func (s *Syllable) NucleusBegin() int { return len(s.onset) }

// NucleusEnd returns the past-the-end position of the nucleus.
func (s *Syllable) NucleusEnd() int { return len(s.onset) + len(s.nucleus) }

// CodaBegin returns the position of the first coda segment.
func (s *Syllable) CodaBegin() int { return len(s.onset) + len(s.nucleus) }

// CodaEnd returns the past-the-end position of the coda: equal to End.
func (s *Syllable) CodaEnd() int { return s.Len() }

// Cursor is a positional view over the unified sequence. Valid
// positions are [Begin, End]; End carries no value. Any insertion or
// removal on the syllable invalidates every open cursor, and every
// cursor operation afterwards reports ErrInvalidValue.
type Cursor struct {
	s       *Syllable
	pos     int
	version uint64
}

// View opens a cursor parked on Begin.
func (s *Syllable) View() *Cursor { return &Cursor{s: s, version: s.version} }

// ViewAt opens a cursor parked on the given marker position, e.g.
// s.ViewAt(s.NucleusBegin()).
//
// Errors:
//   - ErrIndexOutOfRange - pos outside [Begin, End].
func (s *Syllable) ViewAt(pos int) (*Cursor, error) {
	if pos < 0 || pos > s.Len() {
		return nil, fmt.Errorf("%w: position %d of %d", phonetics.ErrIndexOutOfRange, pos, s.Len())
	}

	return &Cursor{s: s, pos: pos, version: s.version}, nil
}

// stale guards every cursor operation against post-mutation use.
func (c *Cursor) stale() error {
	if c.version != c.s.version {
		return fmt.Errorf("%w: cursor invalidated by mutation", phonetics.ErrInvalidValue)
	}

	return nil
}

// Position returns the cursor's position in [Begin, End].
func (c *Cursor) Position() int { return c.pos }

// InversePosition returns the position counted from End: 0 on End,
// Len on Begin.
func (c *Cursor) InversePosition() int { return c.s.Len() - c.pos }

// Done reports whether the cursor sits on End.
func (c *Cursor) Done() bool { return c.pos >= c.s.Len() }

// Seek moves the cursor to pos in [Begin, End]; marker positions from
// the boundary accessors are always valid seeks. The cursor does not
// move on error.
func (c *Cursor) Seek(pos int) error {
	if err := c.stale(); err != nil {
		return err
	}
	if pos < 0 || pos > c.s.Len() {
		return fmt.Errorf("%w: position %d of %d", phonetics.ErrIndexOutOfRange, pos, c.s.Len())
	}
	c.pos = pos

	return nil
}

// Next advances one segment; advancing from the final segment parks the
// cursor on End.
//
// Errors:
//   - ErrIndexOutOfRange - the cursor already sits on End.
func (c *Cursor) Next() error {
	if err := c.stale(); err != nil {
		return err
	}
	if c.pos >= c.s.Len() {
		return fmt.Errorf("%w: past end of syllable", phonetics.ErrIndexOutOfRange)
	}
	c.pos++

	return nil
}

// Prev moves back one segment.
//
// Errors:
//   - ErrIndexOutOfRange - the cursor already sits on Begin.
func (c *Cursor) Prev() error {
	if err := c.stale(); err != nil {
		return err
	}
	if c.pos <= 0 {
		return fmt.Errorf("%w: before start of syllable", phonetics.ErrIndexOutOfRange)
	}
	c.pos--

	return nil
}

// Value returns the owned segment under the cursor.
//
// Errors:
//   - ErrIndexOutOfRange - the cursor sits on End.
//   - ErrInvalidValue - the cursor was invalidated by mutation.
func (c *Cursor) Value() (phone.Segment, error) {
	if err := c.stale(); err != nil {
		return nil, err
	}
	if c.pos >= c.s.Len() {
		return nil, fmt.Errorf("%w: no segment at end marker", phonetics.ErrIndexOutOfRange)
	}

	return c.s.at(c.pos), nil
}
