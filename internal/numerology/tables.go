package numerology

// Letter values indexed by c-'A'.
var pythagoreanValues = [26]int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, // A-I
	1, 2, 3, 4, 5, 6, 7, 8, 9, // J-R
	1, 2, 3, 4, 5, 6, 7, 8, // S-Z
}

// Chaldean never assigns 9.
var chaldeanValues = [26]int{
	1, 2, 3, 4, 5, 8, 3, 5, 1, // A-I
	1, 2, 3, 4, 5, 7, 8, 1, 2, // J-R
	3, 4, 6, 6, 6, 5, 1, 7, // S-Z
}

var meanings = map[int]string{
	1:  "Leader: independent, driven, original.",
	2:  "Peacemaker: diplomatic, sensitive, cooperative.",
	3:  "Communicator: creative, expressive, social.",
	4:  "Builder: practical, loyal, disciplined.",
	5:  "Adventurer: curious, restless, free.",
	6:  "Nurturer: caring, responsible, warm.",
	7:  "Seeker: analytical, spiritual, private.",
	8:  "Achiever: ambitious, powerful, material.",
	9:  "Humanitarian: compassionate, generous, wise.",
	11: "Master intuitive: inspired and visionary.",
	22: "Master builder: turns big dreams into reality.",
	33: "Master teacher: selfless guidance and healing.",
}

// Meaning returns a short description of a reduced number, or "" for
// numbers without one (including 0).
func Meaning(n int) string {
	return meanings[n]
}
