package experiences

// seedEntries is the fixed core catalog. It exists at every process start,
// is never written to the sidecar and can never be deleted.
var seedEntries = []Entry{
	{
		ID:      "EXP-01",
		Title:   "Even Once",
		Author:  "W. Wolf",
		Voice:   "Kersali",
		File:    "Even Once.mp3",
		Lyrics:  "Even Once.txt",
		Vibe:    "Dark • Trance • Slow Burn",
		Package: "EXP – Fifth Format Core",
	},
	{
		ID:      "EXP-02",
		Title:   "I Do",
		Author:  "W. Wolf",
		Voice:   "Kersali",
		File:    "I do.mp3",
		Lyrics:  "I do.txt",
		Vibe:    "Intimate • Minimal • Pulse",
		Package: "EXP – Fifth Format Core",
	},
	{
		ID:      "EXP-03",
		Title:   "Other Day",
		Author:  "W. Wolf",
		Voice:   "Kersali",
		File:    "Other Day.mp3",
		Lyrics:  "Other Day.txt",
		Vibe:    "Atmospheric • Late Night",
		Package: "EXP – Fifth Format Core",
	},
	{
		ID:      "EXP-04",
		Title:   "Almost Real",
		Author:  "W. Wolf",
		Voice:   "Kersali",
		File:    "Almost Real.mp3",
		Lyrics:  "Almost Real.txt",
		Vibe:    "Surreal • Floating",
		Package: "EXP – Fifth Format Core",
	},
	{
		ID:      "EXP-05",
		Title:   "Drift Water",
		Author:  "W. Wolf",
		Voice:   "Kersali",
		File:    "Drift Water.mp3",
		Lyrics:  "Drift Water.txt",
		Vibe:    "Fluid • Hypnotic",
		Package: "EXP – Fifth Format Core",
	},
}

// Seeds returns a copy of the seed entries.
func Seeds() []Entry {
	out := make([]Entry, len(seedEntries))
	copy(out, seedEntries)
	return out
}
