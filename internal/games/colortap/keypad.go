package colortap

// Tiles are laid out like a numeric keypad: 7 8 9 on the top row,
// 1 2 3 on the bottom.
var keypad = [TileCount]rune{'7', '8', '9', '4', '5', '6', '1', '2', '3'}

// TileForKey returns the tile bound to a digit key.
func TileForKey(r rune) (int, bool) {
	for id, k := range keypad {
		if k == r {
			return id, true
		}
	}
	return 0, false
}

// KeyForTile returns the digit key bound to tile id.
func KeyForTile(id int) rune {
	if id < 0 || id >= TileCount {
		return ' '
	}
	return keypad[id]
}
