package vnspell

// tokenMask classifies a whitespace-delimited raw token by the
// tokenizability of its first, interior, and last bytes. Bit 2 is the
// first byte, bit 1 is every interior byte (vacuously true for
// single-byte tokens), bit 0 is the last byte.
type tokenMask uint8

const (
	maskFirst tokenMask = 1 << 2
	maskMid   tokenMask = 1 << 1
	maskLast  tokenMask = 1 << 0

	maskAll      = maskFirst | maskMid | maskLast // 0b111
	maskLeadBad  = maskMid | maskLast             // 0b011
	maskTrailBad = maskFirst | maskMid            // 0b110
)

func classifyToken(token string) tokenMask {
	var m tokenMask
	if IsTokenizable(token[0]) {
		m |= maskFirst
	}
	if IsTokenizable(token[len(token)-1]) {
		m |= maskLast
	}
	mid := true
	for i := 1; i < len(token)-1; i++ {
		if !IsTokenizable(token[i]) {
			mid = false
			break
		}
	}
	if mid {
		m |= maskMid
	}
	return m
}
