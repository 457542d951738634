package importer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/DailyBread/core/catalog"
	"github.com/FocuswithJustin/DailyBread/core/errors"
	"github.com/FocuswithJustin/DailyBread/internal/store"
)

// maxLine bounds a single TSV line; long psalms fit comfortably.
const maxLine = 1 << 20

// parseTSV reads tab separated lines of book, chapter, verse, and text.
// Blank lines and lines starting with '#' are ignored. The book column may
// hold a catalog key or any name the catalog knows.
func parseTSV(r io.Reader, name string, books *catalog.Books, lang catalog.Language) ([]store.Verse, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var verses []store.Verse
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimRight(sc.Text(), "\r")
		if line == 1 {
			raw = strings.TrimPrefix(raw, "\uFEFF")
		}
		if strings.TrimSpace(raw) == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		fields := strings.SplitN(raw, "\t", 4)
		if len(fields) != 4 {
			return nil, lineError(name, line, "want 4 tab separated fields, got %d", len(fields))
		}
		book, ok := books.Lookup(fields[0], lang, true)
		if !ok {
			return nil, lineError(name, line, "unknown book %q", fields[0])
		}
		chapter, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil || !book.HasChapter(chapter) {
			return nil, lineError(name, line, "invalid chapter %q for %s", fields[1], book.Key)
		}
		verse, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil || verse < 1 {
			return nil, lineError(name, line, "invalid verse %q", fields[2])
		}
		text := strings.TrimSpace(fields[3])
		if text == "" {
			continue
		}
		verses = append(verses, store.Verse{Book: book.Key, Chapter: chapter, Verse: verse, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.NewIO("read", name, err)
	}
	return verses, nil
}

func lineError(name string, line int, format string, args ...any) error {
	return errors.NewParse("TSV", fmt.Sprintf("%s:%d", name, line), fmt.Sprintf(format, args...))
}

// writeTSV writes verses in the format parseTSV reads.
func writeTSV(w io.Writer, v store.Verse) error {
	text := strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(v.Text)
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", v.Book, v.Chapter, v.Verse, text)
	return err
}
