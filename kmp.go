package patchingo

// matches reports whether signature position j accepts byte b.
func (s Signature) matches(j int, b byte) bool {
	return s[j].Wildcard || s[j].Value == b
}

// equal compares two signature positions for the failure function. A
// wildcard compares equal to everything here too, the same rule the scan
// applies.
func (s Signature) equal(i, j int) bool {
	return s[i].Wildcard || s[j].Wildcard || s[i].Value == s[j].Value
}

// computeLPS builds the KMP failure function for sig.
func computeLPS(sig Signature) []int {
	lps := make([]int, len(sig))
	i, j := 1, 0
	for i < len(sig) {
		if sig.equal(i, j) {
			j++
			lps[i] = j
			i++
		} else if j != 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}
	return lps
}

// searchFirst returns the lowest offset at which sig matches data. Runs in
// O(len(data)+len(sig)).
func searchFirst(data []byte, sig Signature) (int, error) {
	if len(sig) == 0 {
		return 0, ErrInvalidPattern
	}
	lps := computeLPS(sig)
	i, j := 0, 0
	for i < len(data) {
		if sig.matches(j, data[i]) {
			i++
			j++
			if j == len(sig) {
				return i - j, nil
			}
		} else if j != 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}
	return 0, ErrPatternNotFound
}

// searchAll returns every match offset in ascending order. After each hit the
// scan resumes through the failure function, so overlapping matches are
// reported too.
func searchAll(data []byte, sig Signature) ([]int, error) {
	if len(sig) == 0 {
		return nil, ErrInvalidPattern
	}
	lps := computeLPS(sig)
	var hits []int
	i, j := 0, 0
	for i < len(data) {
		if sig.matches(j, data[i]) {
			i++
			j++
			if j == len(sig) {
				hits = append(hits, i-j)
				j = lps[j-1]
			}
		} else if j != 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}
	if len(hits) == 0 {
		return nil, ErrPatternNotFound
	}
	return hits, nil
}
