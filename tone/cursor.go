package tone

import (
	"fmt"

	"github.com/lingora/phonetics"
)

// Cursor is a positional view over a tone's three pitches. It reads
// through to the Tone it was opened on, so writes made after opening
// are observed; Set writes through to the Tone.
//
// A Cursor is cheap and single-goroutine, like the Tone it views.
type Cursor struct {
	t   *Tone
	pos int
}

// View opens a cursor positioned on the first pitch.
func (t *Tone) View() *Cursor { return &Cursor{t: t} }

// Position returns the cursor's current position in [0, Positions).
func (c *Cursor) Position() int { return c.pos }

// InversePosition returns the current position counted from the end:
// 0 on the final pitch, Positions-1 on the first.
func (c *Cursor) InversePosition() int { return Positions - 1 - c.pos }

// Seek moves the cursor to the given position; negative positions count
// from the end. The cursor does not move on error.
func (c *Cursor) Seek(pos int) error {
	p, err := resolve(pos)
	if err != nil {
		return err
	}
	c.pos = p

	return nil
}

// Next advances the cursor one pitch.
//
// Errors:
//   - ErrIndexOutOfRange - the cursor already sits on the final pitch.
func (c *Cursor) Next() error {
	if c.pos >= Positions-1 {
		return fmt.Errorf("%w: past final pitch", phonetics.ErrIndexOutOfRange)
	}
	c.pos++

	return nil
}

// Prev moves the cursor back one pitch.
//
// Errors:
//   - ErrIndexOutOfRange - the cursor already sits on the first pitch.
func (c *Cursor) Prev() error {
	if c.pos <= 0 {
		return fmt.Errorf("%w: before first pitch", phonetics.ErrIndexOutOfRange)
	}
	c.pos--

	return nil
}

// Value returns the pitch under the cursor.
func (c *Cursor) Value() int { return c.t.pitches[c.pos] }

// Set writes the pitch under the cursor through to the tone, with the
// usual pitch bounds check.
func (c *Cursor) Set(pitch int) error {
	if err := checkPitch(pitch); err != nil {
		return err
	}
	c.t.pitches[c.pos] = pitch

	return nil
}

// At reads the pitch at a signed offset from the cursor without moving
// it.
//
// Errors:
//   - ErrIndexOutOfRange - the offset lands outside the three slots.
func (c *Cursor) At(offset int) (int, error) {
	p := c.pos + offset
	if p < 0 || p >= Positions {
		return 0, fmt.Errorf("%w: offset %d from position %d", phonetics.ErrIndexOutOfRange, offset, c.pos)
	}

	return c.t.pitches[p], nil
}
