// Package dict ingests the Windows-1251 plaintext dictionary file into a
// stream of record.Word batches ready for the store.
package dict

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jus1d/rifmuj/accent"
	"github.com/jus1d/rifmuj/internal/config"
	"github.com/jus1d/rifmuj/phonetics"
	"github.com/jus1d/rifmuj/record"
	"github.com/jus1d/rifmuj/rhyme"
)

// row is one surviving, parsed line of the dictionary file, before
// phonetization.
type row struct {
	id            int64
	spell         string
	accentedSpell string
	gram          map[string]struct{}
}

// lineErr identifies the offending line of a structural ingest failure, per
// the "abort ingest with a message identifying the offending line" error
// handling rule.
type lineErr struct {
	line int
	text string
	err  error
}

func (e *lineErr) Error() string {
	return fmt.Sprintf("dict: line %d (%q): %v", e.line, e.text, e.err)
}

func (e *lineErr) Unwrap() error { return e.err }

func rowFromLine(lineNum int, line string, cfg *config.Config) (row, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 4 {
		return row{}, &lineErr{lineNum, line, fmt.Errorf("expected 4 pipe-separated fields, got %d", len(parts))}
	}

	id, err := strconv.ParseInt(strings.TrimSpace(parts[3]), 10, 64)
	if err != nil {
		return row{}, &lineErr{lineNum, line, fmt.Errorf("bad numeric id: %w", err)}
	}

	gram := make(map[string]struct{})
	for _, tok := range strings.Fields(parts[1]) {
		if code, ok := cfg.Abbreviate(tok); ok {
			gram[code] = struct{}{}
		}
	}

	return row{
		id:            id,
		spell:         accent.NormalizeSpell(strings.TrimSpace(parts[0])),
		accentedSpell: accent.NormalizeAccentedSpell(strings.TrimSpace(parts[2])),
		gram:          gram,
	}, nil
}

// doubleAccent matches an accented spelling carrying two stress marks.
var doubleAccent = regexp.MustCompile(`^(.*)'(.*)'(.*)$`)

// splitDoubleAccents yields r unchanged if it carries at most one stress
// mark; otherwise it yields two rows, one per stress placement, the second
// with a negated id so the pair stays unique within an article.
func splitDoubleAccents(r row) []row {
	m := doubleAccent.FindStringSubmatch(r.accentedSpell)
	if m == nil {
		return []row{r}
	}
	first := m[1] + "'" + m[2] + m[3]
	second := m[1] + m[2] + "'" + m[3]
	return []row{
		{id: r.id, spell: r.spell, accentedSpell: first, gram: r.gram},
		{id: -r.id, spell: r.spell, accentedSpell: second, gram: r.gram},
	}
}

// combineIdenticalForms merges rows that share an accented spelling within
// an article, unioning their grammar-tag sets, and preserves first-seen
// order.
func combineIdenticalForms(rows []row) []row {
	index := make(map[string]int, len(rows))
	var out []row
	for _, r := range rows {
		if i, ok := index[r.accentedSpell]; ok {
			for code := range r.gram {
				out[i].gram[code] = struct{}{}
			}
			continue
		}
		index[r.accentedSpell] = len(out)
		out = append(out, r)
	}
	return out
}

func gramString(gram map[string]struct{}) string {
	codes := make([]string, 0, len(gram))
	for code := range gram {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return strings.Join(codes, " ")
}

// article is one blank-line-delimited group of the dictionary file, reduced
// to its surviving, deduplicated rows and the lemma id (the first surviving
// row's id, before double-accent splitting).
type article struct {
	lemmaID int64
	rows    []row
}

func newArticle(lines []rawLine, cfg *config.Config) (article, error) {
	var rows []row
	for _, rl := range lines {
		if strings.HasPrefix(rl.text, "*") {
			continue
		}
		r, err := rowFromLine(rl.num, rl.text, cfg)
		if err != nil {
			return article{}, err
		}
		rows = append(rows, r)
	}

	var split []row
	for _, r := range rows {
		split = append(split, splitDoubleAccents(r)...)
	}
	unique := combineIdenticalForms(split)

	var lemmaID int64
	if len(unique) > 0 {
		lemmaID = unique[0].id
	}
	return article{lemmaID: lemmaID, rows: unique}, nil
}

func (a article) words() []record.Word {
	words := make([]record.Word, 0, len(a.rows))
	for _, r := range a.rows {
		trans := phonetics.Phonetize(r.accentedSpell)
		basicRhyme := rhyme.BasicRhyme(trans)
		if basicRhyme == "" {
			continue
		}
		words = append(words, record.Word{
			WordID:  r.id,
			LemmaID: a.lemmaID,
			Spell:   r.spell,
			Trans:   trans,
			Rhyme:   basicRhyme,
			Gram:    gramString(r.gram),
		})
	}
	return words
}

type rawLine struct {
	num  int
	text string
}

// Ingest decodes r as Windows-1251, splits it into blank-line-delimited
// articles, and streams the resulting record.Word batches on the returned
// channel, each batch holding at most chunkSize records. Ingest runs the
// scan in its own goroutine; the caller must drain words until it closes,
// then check errc for a nil-or-one error.
//
// A structural error (a malformed line) stops the scan and is reported on
// errc identifying the offending line; already-sent batches remain valid.
func Ingest(r io.Reader, cfg *config.Config, chunkSize int) (words <-chan []record.Word, errc <-chan error) {
	if chunkSize <= 0 {
		chunkSize = cfg.Ingest.ChunkSize
	}
	wc := make(chan []record.Word)
	ec := make(chan error, 1)

	go func() {
		defer close(wc)
		defer close(ec)

		decoded := transform.NewReader(r, charmap.Windows1251.NewDecoder())
		scanner := bufio.NewScanner(decoded)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		var batch []record.Word
		var lines []rawLine
		lineNum := 0

		flushArticle := func() error {
			if len(lines) == 0 {
				return nil
			}
			a, err := newArticle(lines, cfg)
			lines = nil
			if err != nil {
				return err
			}
			batch = append(batch, a.words()...)
			for len(batch) >= chunkSize {
				out := make([]record.Word, chunkSize)
				copy(out, batch[:chunkSize])
				wc <- out
				batch = append([]record.Word(nil), batch[chunkSize:]...)
			}
			return nil
		}

		for scanner.Scan() {
			lineNum++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				if err := flushArticle(); err != nil {
					ec <- err
					return
				}
				continue
			}
			lines = append(lines, rawLine{num: lineNum, text: line})
		}
		if err := flushArticle(); err != nil {
			ec <- err
			return
		}
		if err := scanner.Err(); err != nil {
			ec <- fmt.Errorf("dict: reading dictionary file: %w", err)
			return
		}
		if len(batch) > 0 {
			wc <- batch
		}
	}()

	return wc, ec
}
