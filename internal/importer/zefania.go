package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/DailyBread/core/catalog"
	"github.com/FocuswithJustin/DailyBread/core/errors"
	"github.com/FocuswithJustin/DailyBread/internal/store"
)

var (
	bookExpr    = xpath.MustCompile("/XMLBIBLE/BIBLEBOOK")
	chapterExpr = xpath.MustCompile("CHAPTER")
	verseExpr   = xpath.MustCompile("VERS")
)

// zefaniaDeuterocanon maps the Zefania book numbers of the deuterocanon.
var zefaniaDeuterocanon = map[int]string{
	67: "JDT",
	68: "WIS",
	69: "TOB",
	70: "SIR",
	71: "BAR",
	72: "1MACC",
	73: "2MACC",
}

// skippedElements hold commentary rather than verse text.
var skippedElements = map[string]bool{
	"NOTE": true,
	"note": true,
}

// parseZefania reads a Zefania XML Bible:
//
//	<XMLBIBLE>
//	  <BIBLEBOOK bnumber="1" bname="Genesis">
//	    <CHAPTER cnumber="1">
//	      <VERS vnumber="1">In the beginning ...</VERS>
func parseZefania(r io.Reader, name string, books *catalog.Books, lang catalog.Language) ([]store.Verse, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, &errors.ParseError{Format: "Zefania XML", Path: name, Message: err.Error(), Err: err}
	}

	bookNodes := xmlquery.QuerySelectorAll(doc, bookExpr)
	if len(bookNodes) == 0 {
		return nil, errors.NewParse("Zefania XML", name, "no BIBLEBOOK elements")
	}

	var verses []store.Verse
	for _, bn := range bookNodes {
		book, err := zefaniaBook(bn, books, lang)
		if err != nil {
			return nil, errors.NewParse("Zefania XML", name, err.Error())
		}
		for _, cn := range xmlquery.QuerySelectorAll(bn, chapterExpr) {
			chapter, err := attrNumber(cn, "cnumber")
			if err != nil {
				return nil, errors.NewParse("Zefania XML", name, book.Key+": "+err.Error())
			}
			if !book.HasChapter(chapter) {
				return nil, errors.NewParse("Zefania XML", name,
					book.Key+" has no chapter "+strconv.Itoa(chapter))
			}
			for _, vn := range xmlquery.QuerySelectorAll(cn, verseExpr) {
				verse, err := attrNumber(vn, "vnumber")
				if err != nil {
					return nil, errors.NewParse("Zefania XML", name,
						book.Key+" "+strconv.Itoa(chapter)+": "+err.Error())
				}
				text := verseText(vn)
				if text == "" {
					continue
				}
				verses = append(verses, store.Verse{Book: book.Key, Chapter: chapter, Verse: verse, Text: text})
			}
		}
	}
	return verses, nil
}

// zefaniaBook resolves a BIBLEBOOK element by number, then by name.
func zefaniaBook(n *xmlquery.Node, books *catalog.Books, lang catalog.Language) (*catalog.Book, error) {
	if num, err := strconv.Atoi(n.SelectAttr("bnumber")); err == nil {
		canon := books.Canon()
		if num >= 1 && num <= len(canon) {
			return canon[num-1], nil
		}
		if key, ok := zefaniaDeuterocanon[num]; ok {
			if b, ok := books.Lookup(key, lang, true); ok {
				return b, nil
			}
		}
	}
	for _, attr := range []string{"bname", "bsname"} {
		if name := n.SelectAttr(attr); name != "" {
			if b, ok := books.Lookup(name, lang, true); ok {
				return b, nil
			}
		}
	}
	return nil, errors.NewBookNotFound(n.SelectAttr("bnumber") + " " + n.SelectAttr("bname"))
}

func attrNumber(n *xmlquery.Node, attr string) (int, error) {
	v := n.SelectAttr(attr)
	num, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid %s %q", attr, v)
	}
	return num, nil
}

// verseText returns the text of a VERS element without notes, with
// whitespace collapsed.
func verseText(n *xmlquery.Node) string {
	var b strings.Builder
	var walk func(*xmlquery.Node)
	walk = func(n *xmlquery.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case xmlquery.TextNode, xmlquery.CharDataNode:
				b.WriteString(c.Data)
			case xmlquery.ElementNode:
				if skippedElements[c.Data] {
					continue
				}
				if c.Data == "BR" {
					b.WriteByte(' ')
					continue
				}
				walk(c)
			}
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
