package ansi

// C0 (7-bit) control characters the encoder emits or strips.
//
// see chapter 3 for detail information about control characters:
// https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
const (
	NUL = 0x00 // NUL is the null character (Caret: ^@, Char: \0).
	HT  = 0x09 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  = 0x0A // LF is the line feed character (Caret: ^J, Char: \n).
	CR  = 0x0D // CR is the carriage return character (Caret: ^M, Char: \r).
	ESC = 0x1B // ESC is the Escape character (Caret: ^[).
	DEL = 0x7F // DEL is the delete character.
)

// IsControl reports whether r is a C0 control character or DEL. Such runes
// must never reach the output as glyphs: they would move the cursor of the
// terminal reading the snapshot.
func IsControl(r rune) bool {
	return (r >= NUL && r < 0x20) || r == DEL
}
