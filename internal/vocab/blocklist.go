package vocab

// blocklistWords are tokens that satisfy bare-ticker syntax but are almost
// never tickers in WSB text: subreddit slang, common English words, internet
// abbreviations and financial jargon. A $-prefixed symbol bypasses this list.
var blocklistWords = []string{
	// WSB slang
	"AI", "DD", "YOLO", "HODL", "FOMO", "FD", "TLDR", "IMO", "IMHO", "WSB",
	"MOASS", "APE", "APES", "ROPE", "GUH", "BULL", "BEAR", "DIP", "DIPS",
	"ATH", "ATL", "OTM", "ITM", "DTM", "IV", "DTE", "LEAP", "LEAPS",
	"PT", "TP", "SL", "EOD", "EOW", "EOM", "EOY", "YTD", "QE", "GDP",
	"CPI", "PPI", "NFP", "FOMC", "IPO", "SEC", "ETF", "ETN", "CEO",
	"CFO", "COO", "CTO", "CMO", "CIO", "VP", "SVP", "EVP", "BOD",
	// Common short words that match ticker syntax
	"ALL", "ARE", "AND", "ANY", "BIG", "BIT", "BUT", "BUY", "CAN", "CAR",
	"DAY", "DID", "DO", "EAR", "EAT", "END", "ERA", "FAT", "FAN", "FAR",
	"FED", "FEW", "FOR", "FUN", "GAP", "GET", "GOD", "GOT", "GAS", "HAS",
	"HAD", "HIT", "HOT", "HOW", "ICE", "ILL", "ITS", "JOB", "KEY", "LET",
	"LOT", "LOW", "MAN", "MAP", "MAY", "MEN", "MET", "MOM", "NET", "NEW",
	"NOT", "NOW", "NUT", "ODD", "OFF", "OLD", "ONE", "OUR", "OUT", "OWN",
	"PAY", "PER", "PIT", "PLZ", "POP", "PUT", "RAN", "RAW", "RED", "RIP",
	"RUN", "SAD", "SAT", "SAW", "SAY", "SET", "SHE", "SIT", "SIX", "SKY",
	"SOS", "SUN", "TAN", "TAX", "THE", "TIP", "TOP", "TOO", "TWO", "USE",
	"VAN", "WAR", "WAY", "WAS", "WHO", "WHY", "WIN", "WON", "YES", "YET",
	"YOU", "ZIP",
	// Longer common words
	"ALSO", "BACK", "BEEN", "BEST", "CALL", "CASH", "COME", "CORE", "COST",
	"DATA", "DEAL", "DEEP", "DOWN", "EACH", "EASY", "EDIT", "EVEN", "EVER",
	"FACE", "FACT", "FAST", "FEEL", "FILL", "FIND", "FIRE", "FLAT", "FLIP",
	"FLOW", "FOOD", "FREE", "FROM", "FULL", "FUND", "GAIN", "GAME", "GAVE",
	"GLAD", "GOES", "GOLD", "GONE", "GOOD", "GRAB", "GREW", "GROW", "HALF",
	"HAND", "HANG", "HARD", "HATE", "HAVE", "HEAD", "HEAR", "HELD", "HELP",
	"HERE", "HIGH", "HOLD", "HOME", "HOPE", "HUGE", "IDEA", "INTO", "JUST",
	"KEEP", "KILL", "KIND", "KNEW", "KNOW", "LACK", "LAND", "LAST", "LATE",
	"LEAD", "LEFT", "LEND", "LESS", "LIFE", "LIKE", "LINE", "LINK", "LIVE",
	"LONG", "LOOK", "LOSE", "LOSS", "LOST", "LOVE", "LUCK", "MADE", "MAIN",
	"MAKE", "MANY", "MARK", "MEAN", "MINE", "MISS", "MODE", "MORE", "MOON",
	"MOST", "MOVE", "MUCH", "MUST", "NEAR", "NEED", "NEXT", "NICE", "NONE",
	"NORM", "NOTE", "ONLY", "OPEN", "ONCE", "OVER", "PAGE", "PAID", "PART",
	"PASS", "PAST", "PATH", "PICK", "PLAN", "PLAY", "PLUS", "POLL", "POOR",
	"POST", "PULL", "PUMP", "PURE", "PUSH", "PUTS", "RATE", "READ", "REAL",
	"RENT", "REST", "RICH", "RIDE", "RISE", "RISK", "ROAD", "ROCK", "ROLL",
	"RULE", "RUNS", "RUSH", "SAFE", "SAID", "SALE", "SAME", "SAVE", "SELL",
	"SEND", "SHOP", "SHOT", "SHOW", "SHUT", "SIDE", "SIGN", "SIZE", "SLOW",
	"SOLD", "SOME", "SOON", "SORT", "STAY", "STEP", "STOP", "SURE", "SWAP",
	"TAKE", "TALK", "TANK", "TEAM", "TELL", "TEST", "THAN", "THAT", "THEM",
	"THEN", "THEY", "THIS", "TICK", "TIME", "TOLD", "TOOK", "TOPS", "TURN",
	"TYPE", "UNIT", "UPON", "USED", "VERY", "VOTE", "WAIT", "WAKE", "WALK",
	"WALL", "WANT", "WEAK", "WEEK", "WELL", "WENT", "WERE", "WHAT", "WHEN",
	"WHOM", "WIDE", "WILL", "WISH", "WITH", "WORD", "WORK", "YEAR", "YOUR",
	"ZERO",
	// Reddit/internet slang
	"LMAO", "LMFAO", "STFU", "GTFO", "IDGAF", "ROFL",
	"NSFW", "IIRC", "TIL", "ELI5", "AFAIK",
	// Financial terms
	"SHORT", "DUMP", "BOND", "DEBT", "LOAN", "FEES", "SPEND",
}

// allowlistWords are index and volatility symbols that are commonly traded as
// options but absent from the SEC company list.
var allowlistWords = []string{"SPX", "VIX", "NDX", "RUT", "DXY"}

var (
	blocklist = make(map[string]struct{}, len(blocklistWords))
	allowlist = make(map[string]struct{}, len(allowlistWords))
)

func init() {
	for _, w := range blocklistWords {
		blocklist[w] = struct{}{}
	}
	for _, w := range allowlistWords {
		allowlist[w] = struct{}{}
	}
}

// IsBlocked reports whether the symbol collides with the static blocklist.
func IsBlocked(symbol string) bool {
	_, ok := blocklist[symbol]
	return ok
}

// IsAllowed reports whether the symbol bypasses the authoritative-list check.
func IsAllowed(symbol string) bool {
	_, ok := allowlist[symbol]
	return ok
}
