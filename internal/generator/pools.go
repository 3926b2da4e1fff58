package generator

// CommonWords is the built-in ~200-word common-word pool backing the
// "words" category and the focus generator's scoring.
var CommonWords = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "it",
	"for", "not", "on", "with", "he", "as", "you", "do", "at", "this",
	"but", "his", "by", "from", "they", "we", "say", "her", "she", "or",
	"an", "will", "my", "one", "all", "would", "there", "their", "what",
	"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
	"when", "make", "can", "like", "time", "no", "just", "him", "know",
	"take", "people", "into", "year", "your", "good", "some", "could",
	"them", "see", "other", "than", "then", "now", "look", "only", "come",
	"its", "over", "think", "also", "back", "after", "use", "two", "how",
	"our", "work", "first", "well", "way", "even", "new", "want", "because",
	"any", "these", "give", "day", "most", "us", "great", "between", "need",
	"large", "often", "hand", "high", "place", "hold", "turn", "help",
	"start", "show", "hear", "play", "run", "move", "live", "believe",
	"bring", "happen", "write", "provide", "sit", "stand", "lose",
	"pay", "meet", "include", "continue", "set", "learn", "change", "lead",
	"understand", "watch", "follow", "stop", "create", "speak", "read",
	"spend", "grow", "open", "walk", "win", "offer", "remember", "love",
	"consider", "appear", "buy", "wait", "serve", "die", "send", "expect",
	"build", "stay", "fall", "cut", "reach", "kill", "remain", "suggest",
}

// Sentences is the built-in "sentences" category pool.
var Sentences = []string{
	"the quick brown fox jumps over the lazy dog",
	"pack my box with five dozen liquor jugs",
	"how vexingly quick daft zebras jump",
	"the five boxing wizards jump quickly",
	"sphinx of black quartz judge my vow",
	"practice makes perfect and patience pays off",
	"focus on accuracy first and speed will follow naturally",
	"every expert was once a beginner who refused to give up",
	"small consistent improvements lead to remarkable results over time",
	"your fingers remember patterns better than your conscious mind does",
	"the best time to start improving was yesterday the second best is now",
	"slow down to speed up let accuracy guide your fingers first",
	"typing is a skill built through repetition not through rushing",
	"keep your wrists relaxed and let your fingers find their natural rhythm",
	"consistency beats intensity when building any long term skill like typing",
	"each keystroke is a small decision that shapes your overall fluency",
	"the keyboard is an instrument and like any instrument practice rewires your brain",
	"errors are not failures they are data points that guide your improvement",
	"building muscle memory takes time but once built it becomes effortless",
	"trust the process and enjoy the incremental progress you make each day",
}

// Quotes is the built-in "quotes" category pool.
var Quotes = []string{
	"whether you think you can or you think you cannot you are right henry ford",
	"the only way to do great work is to love what you do steve jobs",
	"in the middle of difficulty lies opportunity albert einstein",
	"it does not matter how slowly you go as long as you do not stop confucius",
	"success is not final failure is not fatal it is the courage to continue that counts winston churchill",
	"the future belongs to those who believe in the beauty of their dreams eleanor roosevelt",
	"it always seems impossible until it is done nelson mandela",
	"strive not to be a success but rather to be of value albert einstein",
	"the best revenge is massive success frank sinatra",
	"life is what happens to you while you are busy making other plans john lennon",
	"you miss one hundred percent of the shots you never take wayne gretzky",
	"the only limit to our realization of tomorrow will be our doubts of today franklin d roosevelt",
	"do not go where the path may lead go instead where there is no path and leave a trail emerson",
}

// CodeSnippets is the built-in "code" category pool.
var CodeSnippets = []string{
	"func greet(name string) string { return \"hello \" + name }",
	"for i := 0; i < 10; i++ { fmt.Println(i * i) }",
	"result := make([]int, 0, len(data))",
	"file, err := os.Open(\"file.txt\")",
	"func fib(n int) int { if n < 2 { return n }; return fib(n-1) + fib(n-2) }",
	"type Node struct { Val int; Next *Node }",
	"sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })",
	"words := strings.Fields(strings.ToLower(strings.TrimSpace(text)))",
	"count := 0; for _, c := range text { if unicode.IsLetter(c) { count++ } }",
	"pairs := map[string]string{}",
	"path := filepath.Join(base, \"data\", \"records.json\")",
	"func clamp(v, lo, hi int) int { if v < lo { return lo }; if v > hi { return hi }; return v }",
	"avg := sum / float64(len(values))",
	"matrix := make([][]int, rows)",
	"headers := map[string]string{\"Content-Type\": \"application/json\"}",
}

// Numbers is the built-in "numbers" category pool.
var Numbers = []string{
	"1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0",
	"3 14159 26535 89793 23846 26433 83279 50288",
	"2 71828 18284 59045 23536 02874 71352 66249",
	"100 200 300 400 500 600 700 800 900 1000",
	"1024 2048 4096 8192 16384 32768 65536 131072",
	"192 168 1 1 255 255 255 0 10 0 0 1 172 16 0 1",
	"42 17 99 3 58 71 24 86 13 67 45 92 36 81 29",
	"2024 2025 2026 1999 2000 1984 1776 1066 1492",
}
