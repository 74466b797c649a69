package sentiment

// wsbLexicon maps WSB slang to sentiment intensities in [-4, +4], merged into
// the VADER lexicon at scorer construction.
var wsbLexicon = map[string]float64{
	// Bullish
	"moon":         3.0,
	"mooning":      3.5,
	"moonshot":     3.0,
	"tendies":      2.5,
	"tendie":       2.5,
	"rocket":       2.5,
	"rockets":      2.5,
	"bullish":      3.0,
	"calls":        1.5,
	"squeeze":      2.0,
	"squeezing":    2.5,
	"diamond":      2.0,
	"diamonds":     2.0,
	"hodl":         2.0,
	"hodling":      2.0,
	"printer":      1.5,
	"brrrr":        2.0,
	"brrr":         2.0,
	"lambo":        2.5,
	"yolo":         1.5,
	"gains":        2.0,
	"gainz":        2.0,
	"rip":          2.0,
	"rippin":       2.5,
	"chad":         1.5,
	"alpha":        1.5,
	"undervalued":  2.0,
	"breakout":     2.0,
	"fomo":         1.0,
	"cheapies":     1.5,
	"loading":      1.0,
	"loaded":       1.5,
	"accumulate":   1.5,
	"accumulating": 1.5,
	"buy":          1.0,
	"buying":       1.0,
	"bought":       1.0,
	// Bearish
	"guh":           -3.5,
	"bearish":       -3.0,
	"puts":          -1.5,
	"drill":         -2.5,
	"drilling":      -2.5,
	"tanking":       -3.0,
	"tank":          -2.5,
	"tanked":        -3.0,
	"crash":         -3.0,
	"crashed":       -3.0,
	"crashing":      -3.0,
	"dump":          -2.5,
	"dumped":        -2.5,
	"dumping":       -3.0,
	"rugpull":       -3.5,
	"rug":           -2.0,
	"bagholder":     -2.5,
	"bagholding":    -2.5,
	"bags":          -2.0,
	"loss":          -2.0,
	"losses":        -2.0,
	"dead":          -2.5,
	"dying":         -2.5,
	"rekt":          -3.0,
	"wrecked":       -2.5,
	"overvalued":    -2.0,
	"scam":          -3.0,
	"fraud":         -3.0,
	"ponzi":         -3.0,
	"bankruptcy":    -3.5,
	"bankrupt":      -3.5,
	"delisted":      -3.0,
	"margin":        -1.5,
	"overleveraged": -2.5,
	"sell":          -1.0,
	"selling":       -1.5,
	"sold":          -1.0,
	"short":         -1.0,
	"shorting":      -1.5,
}

// emojiLexicon maps emoji to sentiment intensities in [-4, +4]. Emoji are
// scored separately from the word lexicon and blended into the final score.
var emojiLexicon = map[string]float64{
	"\U0001F680":         2.5,  // rocket
	"\U0001F319":         2.0,  // crescent moon
	"\U0001F48E":         2.0,  // gem stone
	"\U0001F64C":         1.5,  // raising hands
	"\U0001F98D":         1.0,  // gorilla
	"\U0001F4C8":         2.0,  // chart increasing
	"\U0001F4B0":         1.5,  // money bag
	"\U0001F911":         1.5,  // money-mouth face
	"\U0001F525":         1.5,  // fire
	"\U0001F4C9":         -2.0, // chart decreasing
	"\U0001F480":         -2.0, // skull
	"\U0001F921":         -2.5, // clown face
	"\U0001F5D1️":   -2.0, // wastebasket
	"\U0001F62D":         -1.5, // loudly crying face
	"\U0001F43B":         -1.5, // bear
	"\U0001F402":         1.5,  // ox (bull)
}
