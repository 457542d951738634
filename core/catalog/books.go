package catalog

// canonBooks lists the books of the canon in canonical order.
var canonBooks = []*Book{
	{Key: "GEN", Names: english("Genesis"), Testament: OldTestament, Categories: Instruction | Pentateuch, Chapters: 50, Canon: Canonical},
	{Key: "EXOD", Names: english("Exodus"), Testament: OldTestament, Categories: Instruction | Pentateuch, Chapters: 40, Canon: Canonical},
	{Key: "LEV", Names: english("Leviticus"), Testament: OldTestament, Categories: Instruction | Pentateuch, Chapters: 27, Canon: Canonical},
	{Key: "NUM", Names: english("Numbers"), Testament: OldTestament, Categories: Instruction | Pentateuch, Chapters: 36, Canon: Canonical},
	{Key: "DEUT", Names: english("Deuteronomy"), Testament: OldTestament, Categories: Instruction | Pentateuch, Chapters: 34, Canon: Canonical},
	{Key: "JOSH", Names: english("Joshua"), Testament: OldTestament, Categories: Prophets | FormerProphets | HistoricalNarrative, Chapters: 24, Canon: Canonical},
	{Key: "JUDG", Names: english("Judges"), Testament: OldTestament, Categories: Prophets | FormerProphets | HistoricalNarrative, Chapters: 21, Canon: Canonical},
	{Key: "RUTH", Names: english("Ruth"), Testament: OldTestament, Categories: Writings | Scrolls | HistoricalNarrative, Chapters: 4, Canon: Canonical},
	{Key: "1SAM", Names: english("1 Samuel"), Testament: OldTestament, Categories: Prophets | FormerProphets | HistoricalNarrative, Chapters: 31, Canon: Canonical},
	{Key: "2SAM", Names: english("2 Samuel"), Testament: OldTestament, Categories: Prophets | FormerProphets | HistoricalNarrative, Chapters: 24, Canon: Canonical},
	{Key: "1KGS", Names: english("1 Kings"), Testament: OldTestament, Categories: Prophets | FormerProphets | HistoricalNarrative, Chapters: 22, Canon: Canonical},
	{Key: "2KGS", Names: english("2 Kings"), Testament: OldTestament, Categories: Prophets | FormerProphets | HistoricalNarrative, Chapters: 25, Canon: Canonical},
	{Key: "1CHR", Names: english("1 Chronicles"), Testament: OldTestament, Categories: Writings | Historical | HistoricalNarrative, Chapters: 29, Canon: Canonical},
	{Key: "2CHR", Names: english("2 Chronicles"), Testament: OldTestament, Categories: Writings | Historical | HistoricalNarrative, Chapters: 36, Canon: Canonical},
	{Key: "EZR", Names: english("Ezra"), Testament: OldTestament, Categories: Writings | Historical | HistoricalNarrative, Chapters: 10, Canon: Canonical},
	{Key: "NEH", Names: english("Nehemiah"), Testament: OldTestament, Categories: Writings | Historical | HistoricalNarrative, Chapters: 13, Canon: Canonical},
	{Key: "EST", Names: english("Esther"), Testament: OldTestament, Categories: Writings | Scrolls | HistoricalNarrative, Chapters: 10, Canon: Canonical},
	{Key: "JOB", Names: english("Job"), Testament: OldTestament, Categories: Writings | Poetic | Wisdom | Sapiental, Chapters: 42, Canon: Canonical},
	{Key: "PS", Names: english("Psalm"), Testament: OldTestament, Categories: Writings | Poetic | Wisdom | Sapiental, Chapters: 150, Canon: Canonical},
	{Key: "PROV", Names: english("Proverbs"), Testament: OldTestament, Categories: Writings | Poetic | Wisdom | Sapiental, Chapters: 31, Canon: Canonical},
	{Key: "ECC", Names: english("Ecclesiastes"), Testament: OldTestament, Categories: Writings | Scrolls | Wisdom | Sapiental, Chapters: 12, Canon: Canonical},
	{Key: "SONG", Names: english("Song of Songs"), Testament: OldTestament, Categories: Writings | Scrolls | Wisdom | Sapiental, Chapters: 8, Canon: Canonical},
	{Key: "ISA", Names: english("Isaiah"), Testament: OldTestament, Categories: Prophets | LatterProphets | Prophetic | MajorProphets, Chapters: 66, Canon: Canonical},
	{Key: "JER", Names: english("Jeremiah"), Testament: OldTestament, Categories: Prophets | LatterProphets | Prophetic | MajorProphets, Chapters: 52, Canon: Canonical},
	{Key: "LAM", Names: english("Lamentations"), Testament: OldTestament, Categories: Writings | Scrolls | Prophetic | MajorProphets, Chapters: 5, Canon: Canonical},
	{Key: "EZE", Names: english("Ezekiel"), Testament: OldTestament, Categories: Prophets | LatterProphets | Prophetic | MajorProphets, Chapters: 48, Canon: Canonical},
	{Key: "DAN", Names: english("Daniel"), Testament: OldTestament, Categories: Writings | Historical | Prophetic | MajorProphets, Chapters: 12, Canon: Canonical},
	{Key: "HOS", Names: english("Hosea"), Testament: OldTestament, Categories: Prophets | MinorProphets | Prophetic, Chapters: 14, Canon: Canonical},
	{Key: "JOEL", Names: english("Joel"), Testament: OldTestament, Categories: Prophets | MinorProphets | Prophetic, Chapters: 3, Canon: Canonical},
	{Key: "AMOS", Names: english("Amos"), Testament: OldTestament, Categories: Prophets | MinorProphets | Prophetic, Chapters: 9, Canon: Canonical},
	{Key: "OBA", Names: english("Obadiah"), Testament: OldTestament, Categories: Prophets | MinorProphets | Prophetic, Chapters: 1, Canon: Canonical},
	{Key: "JONAH", Names: english("Jonah"), Testament: OldTestament, Categories: Prophets | MinorProphets | Prophetic, Chapters: 4, Canon: Canonical},
	{Key: "MIC", Names: english("Micah"), Testament: OldTestament, Categories: Prophets | MinorProphets | Prophetic, Chapters: 7, Canon: Canonical},
	{Key: "NAH", Names: english("Nahum"), Testament: OldTestament, Categories: Prophets | MinorProphets | Prophetic, Chapters: 3, Canon: Canonical},
	{Key: "HAB", Names: english("Habakkuk"), Testament: OldTestament, Categories: Prophets | MinorProphets | Prophetic, Chapters: 3, Canon: Canonical},
	{Key: "ZEP", Names: english("Zephaniah"), Testament: OldTestament, Categories: Prophets | MinorProphets | Prophetic, Chapters: 3, Canon: Canonical},
	{Key: "HAG", Names: english("Haggai"), Testament: OldTestament, Categories: Prophets | MinorProphets | Prophetic, Chapters: 2, Canon: Canonical},
	{Key: "ZEC", Names: english("Zechariah"), Testament: OldTestament, Categories: Prophets | MinorProphets | Prophetic, Chapters: 14, Canon: Canonical},
	{Key: "MAL", Names: english("Malachi"), Testament: OldTestament, Categories: Prophets | MinorProphets | Prophetic, Chapters: 4, Canon: Canonical},
	{Key: "MATT", Names: english("Matthew"), Testament: NewTestament, Categories: Gospel, Chapters: 28, Canon: Canonical},
	{Key: "MARK", Names: english("Mark"), Testament: NewTestament, Categories: Gospel, Chapters: 16, Canon: Canonical},
	{Key: "LUKE", Names: english("Luke"), Testament: NewTestament, Categories: Gospel, Chapters: 24, Canon: Canonical},
	{Key: "JOHN", Names: english("John"), Testament: NewTestament, Categories: Gospel, Chapters: 21, Canon: Canonical},
	{Key: "ACTS", Names: english("Acts"), Testament: NewTestament, Categories: Acts, Chapters: 28, Canon: Canonical},
	{Key: "ROM", Names: english("Romans"), Testament: NewTestament, Categories: Epistle, Chapters: 16, Canon: Canonical},
	{Key: "1COR", Names: english("1 Corinthians"), Testament: NewTestament, Categories: Epistle, Chapters: 16, Canon: Canonical},
	{Key: "2COR", Names: english("2 Corinthians"), Testament: NewTestament, Categories: Epistle, Chapters: 13, Canon: Canonical},
	{Key: "GAL", Names: english("Galatians"), Testament: NewTestament, Categories: Epistle, Chapters: 6, Canon: Canonical},
	{Key: "EPH", Names: english("Ephesians"), Testament: NewTestament, Categories: Epistle, Chapters: 6, Canon: Canonical},
	{Key: "PHIL", Names: english("Philippians"), Testament: NewTestament, Categories: Epistle, Chapters: 4, Canon: Canonical},
	{Key: "COL", Names: english("Colossians"), Testament: NewTestament, Categories: Epistle, Chapters: 4, Canon: Canonical},
	{Key: "1THESS", Names: english("1 Thessalonians"), Testament: NewTestament, Categories: Epistle, Chapters: 5, Canon: Canonical},
	{Key: "2THESS", Names: english("2 Thessalonians"), Testament: NewTestament, Categories: Epistle, Chapters: 3, Canon: Canonical},
	{Key: "1TIM", Names: english("1 Timothy"), Testament: NewTestament, Categories: Epistle, Chapters: 6, Canon: Canonical},
	{Key: "2TIM", Names: english("2 Timothy"), Testament: NewTestament, Categories: Epistle, Chapters: 4, Canon: Canonical},
	{Key: "TITUS", Names: english("Titus"), Testament: NewTestament, Categories: Epistle, Chapters: 3, Canon: Canonical},
	{Key: "PHLM", Names: english("Philemon"), Testament: NewTestament, Categories: Epistle, Chapters: 1, Canon: Canonical},
	{Key: "HEB", Names: english("Hebrews"), Testament: NewTestament, Categories: Epistle, Chapters: 13, Canon: Canonical},
	{Key: "JAM", Names: english("James"), Testament: NewTestament, Categories: Epistle, Chapters: 5, Canon: Canonical},
	{Key: "1PET", Names: english("1 Peter"), Testament: NewTestament, Categories: Epistle, Chapters: 5, Canon: Canonical},
	{Key: "2PET", Names: english("2 Peter"), Testament: NewTestament, Categories: Epistle, Chapters: 3, Canon: Canonical},
	{Key: "1JOHN", Names: english("1 John"), Testament: NewTestament, Categories: Epistle, Chapters: 5, Canon: Canonical},
	{Key: "2JOHN", Names: english("2 John"), Testament: NewTestament, Categories: Epistle, Chapters: 1, Canon: Canonical},
	{Key: "3JOHN", Names: english("3 John"), Testament: NewTestament, Categories: Epistle, Chapters: 1, Canon: Canonical},
	{Key: "JUDE", Names: english("Jude"), Testament: NewTestament, Categories: Epistle, Chapters: 1, Canon: Canonical},
	{Key: "REV", Names: english("Revelation"), Testament: NewTestament, Categories: Apocalyptic, Chapters: 22, Canon: Canonical},
}

// deuterocanonBooks lists the books of the deuterocanon in canonical order.
var deuterocanonBooks = []*Book{
	{Key: "TOB", Names: english("Tobit"), Testament: OldTestament, Categories: Novel, Chapters: 14, Canon: Deuterocanonical},
	{Key: "JDT", Names: english("Judith"), Testament: OldTestament, Categories: Novel, Chapters: 16, Canon: Deuterocanonical},
	{Key: "GKESTH", Names: english("Greek Esther"), Testament: OldTestament, Categories: Novel, Chapters: 10, Canon: Deuterocanonical},
	{Key: "WIS", Names: english("Wisdom"), Testament: OldTestament, Categories: Sapiental, Chapters: 19, Canon: Deuterocanonical},
	{Key: "SIR", Names: english("Sirach"), Testament: OldTestament, Categories: Sapiental, Chapters: 51, Canon: Deuterocanonical},
	{Key: "BAR", Names: english("Baruch"), Testament: OldTestament, Categories: Prophetic | MajorProphets, Chapters: 5, Canon: Deuterocanonical},
	{Key: "EPJER", Names: english("Letter of Jeremiah"), Testament: OldTestament, Categories: Prophetic | MajorProphets, Chapters: 1, Canon: Deuterocanonical},
	{Key: "PRAZAR", Names: english("Prayer of Azariah"), Testament: OldTestament, Categories: Writings | Historical | Prophetic | MajorProphets, Chapters: 1, Canon: Deuterocanonical},
	{Key: "SUS", Names: english("Susanna"), Testament: OldTestament, Categories: Writings | Historical | Prophetic | MajorProphets, Chapters: 1, Canon: Deuterocanonical},
	{Key: "BEL", Names: english("Bel and the Dragon"), Testament: OldTestament, Categories: Writings | Historical | Prophetic | MajorProphets, Chapters: 1, Canon: Deuterocanonical},
	{Key: "1MACC", Names: english("1 Maccabees"), Testament: OldTestament, Categories: HistoricalNarrative, Chapters: 16, Canon: Deuterocanonical},
	{Key: "2MACC", Names: english("2 Maccabees"), Testament: OldTestament, Categories: HistoricalNarrative, Chapters: 15, Canon: Deuterocanonical},
	{Key: "1ESD", Names: english("1 Esdras"), Testament: OldTestament, Categories: HistoricalNarrative, Chapters: 9, Canon: Deuterocanonical},
	{Key: "PRMAN", Names: english("Prayer of Manasseh"), Testament: OldTestament, Categories: Prophetic, Chapters: 1, Canon: Deuterocanonical},
	{Key: "PS151", Names: english("Psalm 151"), Testament: OldTestament, Categories: Writings | Poetic | Wisdom | Sapiental, Chapters: 1, Canon: Deuterocanonical},
	{Key: "3MACC", Names: english("3 Maccabees"), Testament: OldTestament, Categories: Novel, Chapters: 7, Canon: Deuterocanonical},
	{Key: "2ESD", Names: english("2 Esdras"), Testament: OldTestament, Categories: Apocalyptic, Chapters: 16, Canon: Deuterocanonical},
	{Key: "4MACC", Names: english("4 Maccabees"), Testament: OldTestament, Categories: Philosophical, Chapters: 18, Canon: Deuterocanonical},
}
