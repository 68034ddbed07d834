package simd

// ByteFrequencies contains empirical byte frequency ranks based on analysis
// of English text, source code, and binary data.
//
// Lower rank = rarer byte (better candidate for SIMD search).
// Higher rank = more common byte (worse candidate).
//
// The table is derived from:
//   - English text corpus analysis
//   - Source code repositories (Go, Rust, C, Python)
//   - Binary file sampling
var ByteFrequencies = [256]byte{
	// 0x00-0x0F: Control characters (generally rare)
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	// 0x10-0x1F: More control characters
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0x20-0x2F: Space, punctuation
	// ' '=255 (most common), '!'=60, '"'=140, '#'=50, '$'=40, '%'=35, '&'=30, '\''=160
	// '('=130, ')'=130, '*'=80, '+'=55, ','=200, '-'=140, '.'=210, '/'=100
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	// 0x30-0x3F: Digits and more punctuation
	// '0'=180, '1'=190, '2'=170, '3'=150, '4'=140, '5'=140, '6'=130, '7'=120
	// '8'=120, '9'=120, ':'=150, ';'=100, '<'=70, '='=160, '>'=70, '?'=50
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	// 0x40-0x4F: '@' and uppercase A-O
	// '@'=25 (rare!), 'A'=120, 'B'=80, 'C'=90, 'D'=85, 'E'=130, 'F'=75, 'G'=70
	// 'H'=80, 'I'=115, 'J'=30, 'K'=35, 'L'=90, 'M'=85, 'N'=100, 'O'=105
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	// 0x50-0x5F: Uppercase P-Z and brackets
	// 'P'=80, 'Q'=15, 'R'=100, 'S'=110, 'T'=115, 'U'=70, 'V'=45, 'W'=55
	// 'X'=20, 'Y'=50, 'Z'=10, '['=90, '\\'=60, ']'=90, '^'=20, '_'=110
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	// 0x60-0x6F: Backtick and lowercase a-o
	// '`'=30, 'a'=225, 'b'=140, 'c'=170, 'd'=165, 'e'=245, 'f'=135, 'g'=130
	// 'h'=150, 'i'=200, 'j'=25, 'k'=65, 'l'=175, 'm'=155, 'n'=195, 'o'=205
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	// 0x70-0x7F: Lowercase p-z and braces
	// 'p'=145, 'q'=15, 'r'=195, 's'=200, 't'=215, 'u'=150, 'v'=75, 'w'=95
	// 'x'=45, 'y'=120, 'z'=20, '{'=85, '|'=40, '}'=85, '~'=15, DEL=0
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	// 0x80-0xFF: Extended ASCII / UTF-8 continuation bytes (generally rare in text)
	// These are less common in typical text/code, so they get low ranks
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}

// ByteRank returns the frequency rank of a byte.
// Lower values indicate rarer bytes (better for search optimization).
func ByteRank(b byte) byte {
	return ByteFrequencies[b]
}

// RareByteIndex returns the position of the rarest byte in needle according
// to ByteFrequencies, or -1 for an empty needle. Ties keep the leftmost byte.
func RareByteIndex(needle string) int {
	if len(needle) == 0 {
		return -1
	}

	index := 0
	minRank := ByteFrequencies[needle[0]]
	for i := 1; i < len(needle); i++ {
		if rank := ByteFrequencies[needle[i]]; rank < minRank {
			index = i
			minRank = rank
		}
	}
	return index
}
