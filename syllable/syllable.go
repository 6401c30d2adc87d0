package syllable

import (
	"fmt"
	"strings"

	"github.com/lingora/phonetics"
	"github.com/lingora/phonetics/phone"
	"github.com/lingora/phonetics/tone"
	"github.com/lingora/phonetics/vowel"
)

// PhoneticSequence is an ordered list of syllables. The model stops
// here: word- and sentence-level structure is the caller's business.
type PhoneticSequence []*Syllable

// Syllable owns three ordered sub-sequences of segments and one tone.
// Segments passed in are cloned, and segments handed out are the owned
// instances: mutating a returned segment mutates the syllable, but no
// outside alias can.
//
// The zero value is not usable (its nucleus is empty); construct
// through New or NewSchwa.
type Syllable struct {
	onset   []phone.Segment
	nucleus []phone.Segment
	coda    []phone.Segment
	tone    tone.Tone

	// version counts length-changing mutations; open cursors check it.
	version uint64
}

// cloneAll clones a sub-sequence, rejecting nil entries.
func cloneAll(name string, in []phone.Segment) ([]phone.Segment, error) {
	out := make([]phone.Segment, len(in))
	for i, s := range in {
		if s == nil {
			return nil, fmt.Errorf("%w: nil segment at %s[%d]", phonetics.ErrInvalidValue, name, i)
		}
		out[i] = s.Clone()
	}

	return out, nil
}

// New constructs a syllable from explicit sub-sequences and a tone.
// Every segment is cloned. Onset and coda may be empty or nil.
//
// Errors:
//   - ErrImpossibleArticulation - empty nucleus (a syllable needs one).
//   - ErrInvalidValue - a nil segment in any sub-sequence.
func New(onset, nucleus, coda []phone.Segment, t tone.Tone) (*Syllable, error) {
	if len(nucleus) == 0 {
		return nil, fmt.Errorf("%w: syllable without a nucleus", phonetics.ErrImpossibleArticulation)
	}

	on, err := cloneAll("onset", onset)
	if err != nil {
		return nil, err
	}
	nu, err := cloneAll("nucleus", nucleus)
	if err != nil {
		return nil, err
	}
	co, err := cloneAll("coda", coda)
	if err != nil {
		return nil, err
	}

	return &Syllable{onset: on, nucleus: nu, coda: co, tone: t}, nil
}

// NewSchwa returns the minimal pronounceable syllable: a lone schwa
// nucleus under the level tone.
func NewSchwa() *Syllable {
	return &Syllable{nucleus: []phone.Segment{vowel.Default()}}
}

// Len returns the total logical length onset + nucleus + coda.
func (s *Syllable) Len() int { return len(s.onset) + len(s.nucleus) + len(s.coda) }

// OnsetLen returns the number of onset segments.
func (s *Syllable) OnsetLen() int { return len(s.onset) }

// NucleusLen returns the number of nucleus segments (always >= 1).
func (s *Syllable) NucleusLen() int { return len(s.nucleus) }

// CodaLen returns the number of coda segments.
func (s *Syllable) CodaLen() int { return len(s.coda) }

// resolveIndex maps a possibly negative position onto [0, n).
func resolveIndex(pos, n int) (int, error) {
	p := pos
	if p < 0 {
		p += n
	}
	if p < 0 || p >= n {
		return 0, fmt.Errorf("%w: position %d of %d", phonetics.ErrIndexOutOfRange, pos, n)
	}

	return p, nil
}

// at returns the owned segment at a resolved unified position.
func (s *Syllable) at(p int) phone.Segment {
	if p < len(s.onset) {
		return s.onset[p]
	}
	p -= len(s.onset)
	if p < len(s.nucleus) {
		return s.nucleus[p]
	}

	return s.coda[p-len(s.nucleus)]
}

// At returns the segment at the given position of the unified sequence
// onset + nucleus + coda. Negative positions count from the end: -1 is
// the final segment of the syllable. The returned segment is the owned
// instance, not a copy.
func (s *Syllable) At(pos int) (phone.Segment, error) {
	p, err := resolveIndex(pos, s.Len())
	if err != nil {
		return nil, err
	}

	return s.at(p), nil
}

// insert clones seg into *seq at pos; pos may equal the length (append)
// and may be negative, counting from the end of that sub-sequence.
func (s *Syllable) insert(seq *[]phone.Segment, seg phone.Segment, pos int) error {
	if seg == nil {
		return fmt.Errorf("%w: nil segment", phonetics.ErrInvalidValue)
	}
	n := len(*seq)
	p := pos
	if p < 0 {
		p += n
	}
	if p < 0 || p > n {
		return fmt.Errorf("%w: insert position %d of %d", phonetics.ErrIndexOutOfRange, pos, n)
	}

	*seq = append(*seq, nil)
	copy((*seq)[p+1:], (*seq)[p:])
	(*seq)[p] = seg.Clone()
	s.version++

	return nil
}

// remove deletes position pos from *seq, negative positions counting
// from the end of that sub-sequence.
func (s *Syllable) remove(seq *[]phone.Segment, pos int) error {
	p, err := resolveIndex(pos, len(*seq))
	if err != nil {
		return err
	}

	*seq = append((*seq)[:p], (*seq)[p+1:]...)
	s.version++

	return nil
}

// InsertOnset inserts a clone of seg into the onset at pos. pos ranges
// over [-len, len] of the onset alone; len appends.
func (s *Syllable) InsertOnset(seg phone.Segment, pos int) error {
	return s.insert(&s.onset, seg, pos)
}

// InsertNucleus inserts a clone of seg into the nucleus at pos.
func (s *Syllable) InsertNucleus(seg phone.Segment, pos int) error {
	return s.insert(&s.nucleus, seg, pos)
}

// InsertCoda inserts a clone of seg into the coda at pos.
func (s *Syllable) InsertCoda(seg phone.Segment, pos int) error {
	return s.insert(&s.coda, seg, pos)
}

// RemoveOnset removes the onset segment at pos.
func (s *Syllable) RemoveOnset(pos int) error { return s.remove(&s.onset, pos) }

// RemoveNucleus removes the nucleus segment at pos.
//
// Errors:
//   - ErrImpossibleArticulation - the removal would empty the nucleus.
//   - ErrIndexOutOfRange - pos outside the nucleus.
func (s *Syllable) RemoveNucleus(pos int) error {
	if len(s.nucleus) == 1 {
		if _, err := resolveIndex(pos, 1); err != nil {
			return err
		}

		return fmt.Errorf("%w: removing the only nucleus segment", phonetics.ErrImpossibleArticulation)
	}

	return s.remove(&s.nucleus, pos)
}

// RemoveCoda removes the coda segment at pos.
func (s *Syllable) RemoveCoda(pos int) error { return s.remove(&s.coda, pos) }

// Onset returns the onset segments. The slice is a copy; the segments
// are the owned instances.
func (s *Syllable) Onset() []phone.Segment { return append([]phone.Segment(nil), s.onset...) }

// Nucleus returns the nucleus segments, same sharing rule as Onset.
func (s *Syllable) Nucleus() []phone.Segment { return append([]phone.Segment(nil), s.nucleus...) }

// Coda returns the coda segments, same sharing rule as Onset.
func (s *Syllable) Coda() []phone.Segment { return append([]phone.Segment(nil), s.coda...) }

// Segments returns the unified sequence onset + nucleus + coda as one
// fresh slice of the owned segments.
func (s *Syllable) Segments() []phone.Segment {
	out := make([]phone.Segment, 0, s.Len())
	out = append(out, s.onset...)
	out = append(out, s.nucleus...)
	out = append(out, s.coda...)

	return out
}

// Tone returns the syllable's tone pattern by value.
func (s *Syllable) Tone() tone.Tone { return s.tone }

// SetTone replaces the tone pattern. A tone.Tone is always in range by
// construction, so this cannot fail.
func (s *Syllable) SetTone(t tone.Tone) { s.tone = t }

// Clone returns a deep, independent copy of the syllable.
func (s *Syllable) Clone() *Syllable {
	cp := &Syllable{
		onset:   make([]phone.Segment, len(s.onset)),
		nucleus: make([]phone.Segment, len(s.nucleus)),
		coda:    make([]phone.Segment, len(s.coda)),
		tone:    s.tone,
	}
	for i, seg := range s.onset {
		cp.onset[i] = seg.Clone()
	}
	for i, seg := range s.nucleus {
		cp.nucleus[i] = seg.Clone()
	}
	for i, seg := range s.coda {
		cp.coda[i] = seg.Clone()
	}

	return cp
}

// Equal reports structural equality: element-wise equality of all three
// sub-sequences plus tone equality.
func (s *Syllable) Equal(o *Syllable) bool {
	return segmentsEqual(s.onset, o.onset) &&
		segmentsEqual(s.nucleus, o.nucleus) &&
		segmentsEqual(s.coda, o.coda) &&
		s.tone.Equal(o.tone)
}

func segmentsEqual(a, b []phone.Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// Description renders each segment's description in order, one per
// line, followed by the tone pattern.
func (s *Syllable) Description() string {
	var b strings.Builder
	for _, seg := range s.Segments() {
		b.WriteString(seg.Description())
		b.WriteByte('\n')
	}
	b.WriteString("tone ")
	b.WriteString(s.tone.String())

	return b.String()
}
