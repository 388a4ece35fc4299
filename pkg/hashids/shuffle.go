package hashids

import "unicode"

// consistentShuffle permutes alphabet in place as a pure function of salt.
// Encoding and decoding both depend on this being bit-exact, including the
// use of code points as the salt values. A blank salt leaves alphabet as is.
func consistentShuffle(alphabet, salt []rune) {
	if isBlank(salt) {
		return
	}

	for i, v, p := len(alphabet)-1, 0, 0; i > 0; i, v = i-1, v+1 {
		v %= len(salt)
		n := int(salt[v])
		p += n
		j := (n + v + p) % i
		alphabet[i], alphabet[j] = alphabet[j], alphabet[i]
	}
}

func isBlank(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
