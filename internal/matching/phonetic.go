package matching

// Lead consonants (chosung) of precomposed Hangul syllables, in Unicode
// jamo order. Syllable U+AC00 + n decomposes with lead index n/588.
var leadConsonants = [19]rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ',
	'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

const (
	hangulBase = 0xAC00
	hangulEnd  = 0xD7A3
)

// phoneticSkeleton extracts the lead-sound sequence of a string: for each
// Hangul syllable, its lead consonant. Non-Hangul runes contribute nothing,
// so Latin text yields an empty skeleton and the caller skips the bonus.
func phoneticSkeleton(s string) string {
	var out []rune
	for _, r := range s {
		if r >= hangulBase && r <= hangulEnd {
			out = append(out, leadConsonants[(r-hangulBase)/588])
		}
	}
	return string(out)
}
