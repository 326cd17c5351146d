package ir

// Replacement palette codes, one per variant. Codes within the palette
// are pairwise distinct.
const (
	CharTrue   = 't'
	CharFalse  = 'f'
	CharArray  = 'a'
	CharObject = 'o'
)

// ReplaceChars returns the codes this type accepts for a structural
// retype.
func ReplaceChars() []rune {
	return []rune{CharTrue, CharFalse, CharArray, CharObject}
}

// FromReplaceChar constructs a fresh default value of the variant
// denoted by c: a bool leaf for CharTrue/CharFalse, an empty array for
// CharArray, an empty object for CharObject. It returns (nil, false) for
// any other code; callers treat that as a no-op. It never inspects or
// retains existing state.
func FromReplaceChar(c rune) (*Node, bool) {
	switch c {
	case CharTrue:
		return True(), true
	case CharFalse:
		return False(), true
	case CharArray:
		return &Node{Type: ArrayType}, true
	case CharObject:
		return &Node{Type: ObjectType}, true
	default:
		return nil, false
	}
}
