package patchingo

import (
	"fmt"
	"strconv"
	"strings"
)

// SigByte is one position of a compiled signature. A wildcard position
// matches any byte; a literal zero byte is a real zero, not a wildcard.
type SigByte struct {
	Value    byte
	Wildcard bool
}

// Signature is a compiled byte pattern. A successful compile never returns
// an empty one.
type Signature []SigByte

const wildcardToken = "??"

// ConvertPattern compiles a textual signature such as "48 8B ?? ?? 89" into
// a Signature. Tokens are separated by whitespace; each must be exactly two
// hex digits (either case) or the wildcard marker "??".
func ConvertPattern(text string) (Signature, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	sig := make(Signature, 0, len(tokens))
	for _, tok := range tokens {
		if tok == wildcardToken {
			sig = append(sig, SigByte{Wildcard: true})
			continue
		}
		if len(tok) != 2 {
			return nil, fmt.Errorf("%w: token %q", ErrInvalidPattern, tok)
		}
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: token %q", ErrInvalidPattern, tok)
		}
		sig = append(sig, SigByte{Value: byte(v)})
	}
	return sig, nil
}
