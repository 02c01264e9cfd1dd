/*
Command generator generates the category table for the MIME header
grammar (file tables.go in package mime).

Unlike the Unicode annexes there is no definition file to load: the
category contents are the character sets of RFC 2045 (token, tspecials)
and RFC 5322 (qtext, WSP), which are small enough to state right here.
The generator builds a range table per category and folds the
membership of every byte value into one bitset entry.

Usage:

   go run ./internal/generator [-v]

The command is expected to run in the directory of package mime, which
is what the go:generate directive in charclass.go arranges.

BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)
*/
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"runtime"
	"text/template"
	"time"
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
	"golang.org/x/text/unicode/rangetable"
)

var logger = log.New(os.Stderr, "MIME table generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// Category bits, in sync with the CharClass constants of package mime.
var categories = []struct {
	name string
	bit  uint8
}{
	{"Token", 1 << 0},
	{"QText", 1 << 1},
	{"QTextWs", 1 << 2},
	{"Ws", 1 << 3},
	{"DQuoteOrEscape", 1 << 4},
}

// tspecials of RFC 2045 section 5.1; token is any printable US-ASCII
// character which is not a tspecial.
const tspecials = `()<>@,;:\"/[]?=`

// categoryRunes collects the member code points of every category.
func categoryRunes() map[string][]rune {
	lists := make(map[string]*arraylist.List, len(categories))
	for _, cat := range categories {
		lists[cat.name] = arraylist.New()
	}
	lists["Ws"].Add('\t', ' ')
	lists["DQuoteOrEscape"].Add('"', '\\')
	for r := rune(0x21); r <= 0x7e; r++ {
		if r != '"' && r != '\\' {
			// qtext: printable US-ASCII except DQUOTE and backslash
			lists["QText"].Add(r)
		}
		isTspecial := false
		for _, t := range tspecials {
			if r == t {
				isTspecial = true
				break
			}
		}
		if !isTspecial {
			lists["Token"].Add(r)
		}
	}
	// QTextWs is the union of QText and Ws
	lists["QText"].Each(func(_ int, v interface{}) {
		lists["QTextWs"].Add(v)
	})
	lists["Ws"].Each(func(_ int, v interface{}) {
		lists["QTextWs"].Add(v)
	})
	members := make(map[string][]rune, len(lists))
	for name, list := range lists {
		runes := make([]rune, list.Size())
		it := list.Iterator()
		i := 0
		for it.Next() {
			runes[i] = it.Value().(rune)
			i++
		}
		members[name] = runes
	}
	return members
}

// buildTable folds the category range tables into one bitset entry per
// byte value.
func buildTable() [256]uint8 {
	defer timeTrack(time.Now(), "build category table")
	members := categoryRunes()
	tables := make(map[string]*unicode.RangeTable, len(members))
	for name, runes := range members {
		tables[name] = rangetable.New(runes...)
	}
	var classes [256]uint8
	for v := 0; v < 0x80; v++ {
		for _, cat := range categories {
			if unicode.Is(tables[cat.name], rune(v)) {
				classes[v] |= cat.bit
			}
		}
	}
	// values above 0x7F belong to no category
	return classes
}

// --- Templates --------------------------------------------------------

var header = `package mime

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

// Category memberships for every byte value, indexed by value.
// Categories are derived from the token / tspecials definition of
// RFC 2045 section 5.1 and the qtext / FWS definitions of RFC 5322
// section 3.2.
var mediaTypeChars = [256]CharClass{
`

var templateTableRow = `	{{range .Classes}}{{.}}, {{end}}// {{printf "0x%02X" .Offset}}
`

type tableRow struct {
	Offset  int
	Classes []uint8
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	t := template.Must(template.New(name).Parse(templString))
	return t
}

// --- Main -------------------------------------------------------------

func generateTable(w *bufio.Writer, classes [256]uint8) {
	defer timeTrack(time.Now(), "generate table file")
	w.WriteString(header)
	t := makeTemplate("MIME category table row", templateTableRow)
	for offset := 0; offset < 256; offset += 16 {
		row := tableRow{Offset: offset, Classes: classes[offset : offset+16]}
		checkFatal(t.Execute(w, row))
	}
	w.WriteString("}\n")
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	flag.Parse()
	verbose = *doVerbose
	classes := buildTable()
	f, ioerr := os.Create("tables.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	generateTable(w, classes)
	w.Flush()
	if verbose {
		logger.Printf("generated tables.go")
	}
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
