package gateway

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/FocuswithJustin/DailyBread/core/passage"
)

// poetryMarker tags text that came from a poetry block while the tree is
// being flattened. It never survives into passage text.
const poetryMarker = "\x00poetry\x00"

// poetryWidth is the column poetry text starts at; verse numbers have at
// most three digits.
const poetryWidth = 4

var spacesBeforeNewline = regexp.MustCompile(` +\n`)

var upper = cases.Upper(language.Und)

// hasClass selects tag elements whose class list contains class.
func hasClass(tag, class string) *xpath.Expr {
	return xpath.MustCompile(fmt.Sprintf(".//%s[contains(concat(' ', normalize-space(@class), ' '), ' %s ')]", tag, class))
}

var (
	passageCols = hasClass("div", "passage-col")
	bcvHeading  = hasClass("div", "bcv")
	chapterNums = hasClass("span", "chapternum")
	verseNums   = hasClass("sup", "versenum")
	smallCaps   = hasClass("span", "small-caps")
	poetryDivs  = hasClass("div", "poetry")
	lineBreaks  = xpath.MustCompile(".//br")
	paragraphs  = xpath.MustCompile(".//p")
)

// removed lists headings, links, cross references, footnotes, dropdowns, and
// translation notes.
var removed = []*xpath.Expr{
	xpath.MustCompile(".//h1 | .//h2 | .//h3 | .//h4 | .//crossref"),
	hasClass("a", "full-chap-link"),
	hasClass("a", "bibleref"),
	hasClass("sup", "crossreference"),
	hasClass("sup", "footnote"),
	hasClass("div", "footnotes"),
	hasClass("div", "dropdowns"),
	hasClass("div", "crossrefs"),
	hasClass("div", "passage-other-trans"),
	hasClass("div", "il-text"),
	hasClass("p", "translation-note"),
}

// extract returns the passages of a print-interface page.
func extract(doc *html.Node, opts passage.FormattingOptions) []passage.Passage {
	var passages []passage.Passage
	for _, col := range htmlquery.QuerySelectorAll(doc, passageCols) {
		passages = append(passages, extractPassage(col, opts))
	}
	return passages
}

func extractPassage(col *html.Node, opts passage.FormattingOptions) passage.Passage {
	var ref string
	if bcv := htmlquery.QuerySelector(col, bcvHeading); bcv != nil {
		ref = strings.TrimSpace(htmlquery.InnerText(bcv))
	}

	for _, expr := range removed {
		for _, n := range htmlquery.QuerySelectorAll(col, expr) {
			remove(n)
		}
	}

	for _, n := range htmlquery.QuerySelectorAll(col, chapterNums) {
		if opts.ShowVerseNumberForVerseOne {
			replaceWithText(n, passage.SuperscriptNumbers("1 "))
		} else {
			remove(n)
		}
	}

	for _, n := range htmlquery.QuerySelectorAll(col, lineBreaks) {
		replaceWithText(n, "\n")
	}

	for _, n := range htmlquery.QuerySelectorAll(col, verseNums) {
		replaceWithText(n, passage.SuperscriptNumbers(htmlquery.InnerText(n)))
	}

	if opts.PreserveSmallCaps {
		for _, n := range htmlquery.QuerySelectorAll(col, smallCaps) {
			replaceWithText(n, upper.String(htmlquery.InnerText(n)))
		}
	}

	for _, n := range htmlquery.QuerySelectorAll(col, poetryDivs) {
		lines := strings.Split(htmlquery.InnerText(n), "\n")
		for i, line := range lines {
			line = passage.PadPoetryLine(line, poetryWidth)
			if !opts.ShowVerseNumbers {
				line = passage.ReplaceSuperscriptNumbers(line, " ")
			}
			lines[i] = line
		}
		p := &html.Node{Type: html.ElementNode, DataAtom: atom.P, Data: "p"}
		p.AppendChild(&html.Node{Type: html.TextNode, Data: poetryMarker + strings.Join(lines, "\n")})
		n.Parent.InsertBefore(p, n)
		remove(n)
	}

	sep := opts.Separator()
	for _, n := range htmlquery.QuerySelectorAll(col, paragraphs) {
		replaceWithText(n, sep+htmlquery.InnerText(n))
	}

	text := strings.ReplaceAll(htmlquery.InnerText(col), "\u00a0", " ")
	text = spacesBeforeNewline.ReplaceAllString(text, "\n")
	text = passage.TrimWhitespace(text)
	text = strings.ReplaceAll(text, poetryMarker, "")

	if !opts.ShowVerseNumbers {
		text = passage.RemoveSuperscriptNumbers(text)
	}
	if !opts.AllowUnicodePunctuation {
		text = passage.ConvertUnicodePunctuation(text)
	}
	return passage.Passage{Reference: ref, Text: text}
}

// remove detaches n. Nodes already detached along with an ancestor are
// left alone.
func remove(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func replaceWithText(n *html.Node, text string) {
	if n.Parent == nil {
		return
	}
	n.Parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text}, n)
	n.Parent.RemoveChild(n)
}
