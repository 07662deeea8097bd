package glyph

// Default is the built-in sign font: uppercase letters, digits and common
// punctuation. Lookup maps lowercase input onto the uppercase glyphs.
var Default = mustFont(defaultArt)

func mustFont(art map[rune][]string) *Font {
	f, err := NewFont(art)
	if err != nil {
		panic(err)
	}
	return f
}

var defaultArt = map[rune][]string{
	' ': {
		".....",
		".....",
		".....",
		".....",
		".....",
		".....",
	},
	'A': {
		".XXX.",
		"X...X",
		"X...X",
		"XXXXX",
		"X...X",
		"X...X",
	},
	'B': {
		"XXXX.",
		"X...X",
		"XXXX.",
		"X...X",
		"X...X",
		"XXXX.",
	},
	'C': {
		".XXXX",
		"X....",
		"X....",
		"X....",
		"X....",
		".XXXX",
	},
	'D': {
		"XXXX.",
		"X...X",
		"X...X",
		"X...X",
		"X...X",
		"XXXX.",
	},
	'E': {
		"XXXXX",
		"X....",
		"XXXX.",
		"X....",
		"X....",
		"XXXXX",
	},
	'F': {
		"XXXXX",
		"X....",
		"XXXX.",
		"X....",
		"X....",
		"X....",
	},
	'G': {
		".XXXX",
		"X....",
		"X..XX",
		"X...X",
		"X...X",
		".XXXX",
	},
	'H': {
		"X...X",
		"X...X",
		"XXXXX",
		"X...X",
		"X...X",
		"X...X",
	},
	'I': {
		"XXXXX",
		"..X..",
		"..X..",
		"..X..",
		"..X..",
		"XXXXX",
	},
	'J': {
		"..XXX",
		"...X.",
		"...X.",
		"...X.",
		"X..X.",
		".XX..",
	},
	'K': {
		"X...X",
		"X..X.",
		"XXX..",
		"X..X.",
		"X...X",
		"X...X",
	},
	'L': {
		"X....",
		"X....",
		"X....",
		"X....",
		"X....",
		"XXXXX",
	},
	'M': {
		"X...X",
		"XX.XX",
		"X.X.X",
		"X...X",
		"X...X",
		"X...X",
	},
	'N': {
		"X...X",
		"XX..X",
		"X.X.X",
		"X..XX",
		"X...X",
		"X...X",
	},
	'O': {
		".XXX.",
		"X...X",
		"X...X",
		"X...X",
		"X...X",
		".XXX.",
	},
	'P': {
		"XXXX.",
		"X...X",
		"XXXX.",
		"X....",
		"X....",
		"X....",
	},
	'Q': {
		".XXX.",
		"X...X",
		"X...X",
		"X.X.X",
		"X..X.",
		".XX.X",
	},
	'R': {
		"XXXX.",
		"X...X",
		"XXXX.",
		"X..X.",
		"X...X",
		"X...X",
	},
	'S': {
		".XXXX",
		"X....",
		".XXX.",
		"....X",
		"....X",
		"XXXX.",
	},
	'T': {
		"XXXXX",
		"..X..",
		"..X..",
		"..X..",
		"..X..",
		"..X..",
	},
	'U': {
		"X...X",
		"X...X",
		"X...X",
		"X...X",
		"X...X",
		".XXX.",
	},
	'V': {
		"X...X",
		"X...X",
		"X...X",
		"X...X",
		".X.X.",
		"..X..",
	},
	'W': {
		"X...X",
		"X...X",
		"X...X",
		"X.X.X",
		"XX.XX",
		"X...X",
	},
	'X': {
		"X...X",
		".X.X.",
		"..X..",
		"..X..",
		".X.X.",
		"X...X",
	},
	'Y': {
		"X...X",
		".X.X.",
		"..X..",
		"..X..",
		"..X..",
		"..X..",
	},
	'Z': {
		"XXXXX",
		"...X.",
		"..X..",
		".X...",
		"X....",
		"XXXXX",
	},
	'0': {
		".XXX.",
		"X..XX",
		"X.X.X",
		"XX..X",
		"X...X",
		".XXX.",
	},
	'1': {
		"..X..",
		".XX..",
		"..X..",
		"..X..",
		"..X..",
		".XXX.",
	},
	'2': {
		".XXX.",
		"X...X",
		"...X.",
		"..X..",
		".X...",
		"XXXXX",
	},
	'3': {
		"XXXX.",
		"....X",
		"..XX.",
		"....X",
		"....X",
		"XXXX.",
	},
	'4': {
		"...X.",
		"..XX.",
		".X.X.",
		"XXXXX",
		"...X.",
		"...X.",
	},
	'5': {
		"XXXXX",
		"X....",
		"XXXX.",
		"....X",
		"....X",
		"XXXX.",
	},
	'6': {
		".XXX.",
		"X....",
		"XXXX.",
		"X...X",
		"X...X",
		".XXX.",
	},
	'7': {
		"XXXXX",
		"....X",
		"...X.",
		"..X..",
		".X...",
		".X...",
	},
	'8': {
		".XXX.",
		"X...X",
		".XXX.",
		"X...X",
		"X...X",
		".XXX.",
	},
	'9': {
		".XXX.",
		"X...X",
		"X...X",
		".XXXX",
		"....X",
		".XXX.",
	},
	'!': {
		"..X..",
		"..X..",
		"..X..",
		"..X..",
		".....",
		"..X..",
	},
	'?': {
		".XXX.",
		"X...X",
		"...X.",
		"..X..",
		".....",
		"..X..",
	},
	'.': {
		".....",
		".....",
		".....",
		".....",
		".XX..",
		".XX..",
	},
	',': {
		".....",
		".....",
		".....",
		".....",
		"..X..",
		".X...",
	},
	':': {
		".....",
		"..X..",
		".....",
		".....",
		"..X..",
		".....",
	},
	';': {
		".....",
		"..X..",
		".....",
		".....",
		"..X..",
		".X...",
	},
	'-': {
		".....",
		".....",
		"XXXXX",
		".....",
		".....",
		".....",
	},
	'+': {
		".....",
		"..X..",
		"XXXXX",
		"..X..",
		".....",
		".....",
	},
	'\'': {
		"..X..",
		"..X..",
		".....",
		".....",
		".....",
		".....",
	},
	'/': {
		"....X",
		"...X.",
		"..X..",
		".X...",
		"X....",
		".....",
	},
	'=': {
		".....",
		"XXXXX",
		".....",
		"XXXXX",
		".....",
		".....",
	},
	'(': {
		"...X.",
		"..X..",
		"..X..",
		"..X..",
		"..X..",
		"...X.",
	},
	')': {
		".X...",
		"..X..",
		"..X..",
		"..X..",
		"..X..",
		".X...",
	},
}
