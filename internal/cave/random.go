package cave

// Sequence reproduces the 8-bit pseudo-random generator the cave format was
// authored against. It is stateful and must not be shared between goroutines.
type Sequence struct {
	s0, s1 uint8
}

// NewSequence starts a sequence from state (0, seed).
func NewSequence(seed uint8) *Sequence {
	return &Sequence{s0: 0, s1: seed}
}

// lowBitToTop moves bit 0 into bit 7, the value a right rotate through a
// cleared carry leaves behind.
func lowBitToTop(v uint8) uint16 {
	return uint16(v&0x01) << 7
}

// Next advances the generator and returns the new first state byte.
func (s *Sequence) Next() uint8 {
	tmp1 := lowBitToTop(s.s0)
	tmp2 := uint16(s.s1 >> 1)

	r := uint16(s.s1) + lowBitToTop(s.s1)
	r = (r & 0xFF) + (r >> 8) + 0x13
	s1 := uint8(r & 0xFF)

	r = uint16(s.s0) + (r >> 8) + tmp1
	r = (r & 0xFF) + (r >> 8) + tmp2
	s.s0 = uint8(r & 0xFF)
	s.s1 = s1

	return s.s0
}

// State returns both state bytes.
func (s *Sequence) State() (s0, s1 uint8) {
	return s.s0, s.s1
}
