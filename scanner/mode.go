package scanner

// Mode classifies the lexical region the scanner is currently inside.
// Exactly one mode holds at any input position, and the mode carries
// across line boundaries (a block comment may span many lines).
type Mode uint8

const (
	// ModeNormal is ordinary code outside any comment or literal.
	ModeNormal Mode = iota

	// ModeComment is the inside of a /* ... */ block comment.
	ModeComment

	// ModeString is the inside of a "..." string literal.
	ModeString

	// ModeChar is the inside of a '...' character literal.
	ModeChar
)

var modeNames = map[Mode]string{
	ModeNormal:  "code",
	ModeComment: "comment",
	ModeString:  "string",
	ModeChar:    "char",
}

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}
