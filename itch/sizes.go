package itch

// messageSize maps an ITCH 5.0 type byte to its fixed wire size. A zero
// entry means the type is not one of the 22 known variants.
var messageSize = [256]byte{
	'S': 12,
	'R': 39,
	'H': 25,
	'Y': 20,
	'L': 26,
	'V': 35,
	'W': 12,
	'K': 28,
	'h': 21,
	'A': 36,
	'F': 40,
	'E': 31,
	'C': 36,
	'X': 23,
	'D': 19,
	'U': 35,
	'P': 44,
	'Q': 40,
	'B': 19,
	'I': 50,
	'N': 20,
	'J': 35,
}

// SizeOf returns the fixed wire size of the given ITCH type byte, or 0 if it
// is not a known message type.
func SizeOf(t byte) int {
	return int(messageSize[t])
}

// KnownType reports whether t names one of the 22 ITCH 5.0 message variants.
func KnownType(t byte) bool {
	return messageSize[t] != 0
}
