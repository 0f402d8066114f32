package encoder

// maxDelayChunk is the largest wait a single delay pair can carry; longer
// delays are chained in full chunks.
const maxDelayChunk = 255

// DelayBytes encodes a millisecond delay as byte pairs the payload consumer
// special-cases: keycode 0x00 means "sleep for the modifier byte's value in
// milliseconds". ms/255 full (0x00,0xFF) chunks are followed by one final
// (0x00, ms%255) pair, so a zero delay still emits (0x00,0x00).
func DelayBytes(ms int) []byte {
	if ms < 0 {
		ms = 0
	}
	count := ms / maxDelayChunk
	remain := ms % maxDelayChunk
	out := make([]byte, 0, 2*(count+1))
	for i := 0; i < count; i++ {
		out = append(out, 0x00, 0xFF)
	}
	return append(out, 0x00, byte(remain))
}
