package symspell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// dictionary is the frequency map of known terms plus the below-threshold
// staging map and the DeleteIndex built over the live terms. A term is in
// exactly one of live / staging at any time; create_dictionary_entry is the
// only mutation path.
type dictionary struct {
	live    map[string]int64
	staging map[string]int64
	deletes *deleteIndex

	maxLength int

	maxEditDistance int
	prefixLength    int
	countThreshold  int64
}

func newDictionary(maxEditDistance, prefixLength int, countThreshold int64, compactLevel int) *dictionary {
	return &dictionary{
		live:            make(map[string]int64),
		staging:         make(map[string]int64),
		deletes:         newDeleteIndex(compactLevel),
		maxEditDistance: maxEditDistance,
		prefixLength:    prefixLength,
		countThreshold:  countThreshold,
	}
}

// createEntry implements the three-state create_dictionary_entry machine:
// absent → staged when count is below threshold, staged → live once the
// accumulated count crosses threshold, absent → live on a first count that
// already meets it, live → live on further accumulation. Returns true only
// when a new live entry was created by this call.
func (d *dictionary) createEntry(term string, count int64) bool {
	if count <= 0 {
		if d.countThreshold > 0 {
			return false
		}
		count = 0
	}

	if d.countThreshold > 1 {
		if staged, ok := d.staging[term]; ok {
			staged = saturatingAdd(staged, count)
			if staged < d.countThreshold {
				d.staging[term] = staged
				return false
			}
			delete(d.staging, term)
			count = staged
		}
	}

	if live, ok := d.live[term]; ok {
		d.live[term] = saturatingAdd(live, count)
		return false
	}

	if count < d.countThreshold {
		d.staging[term] = saturatingAdd(d.staging[term], count)
		return false
	}

	d.live[term] = count
	if n := len([]rune(term)); n > d.maxLength {
		d.maxLength = n
	}
	d.deletes.insert(term, d.prefixLength, d.maxEditDistance)
	return true
}

// loadDictionary reads whitespace-separated lines from path, taking the term
// from column termIndex and the count from column countIndex (both
// 0-based). Lines with fewer than 2 fields, or an unparseable count, are
// silently skipped. Returns false only if path cannot be opened.
func (d *dictionary) loadDictionary(path string, termIndex, countIndex int) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, nil
	}
	defer f.Close()

	if err := d.loadDictionaryFrom(f, termIndex, countIndex); err != nil {
		return true, fmt.Errorf("loading dictionary %s: %w", path, err)
	}
	return true, nil
}

// loadDictionaryFrom applies the same line format as loadDictionary against
// an already-open reader. loadDictionary is its only caller;
// internal/dictstore feeds rows through CreateDictionaryEntry instead.
func (d *dictionary) loadDictionaryFrom(r io.Reader, termIndex, countIndex int) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r\n")
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || termIndex >= len(fields) || countIndex >= len(fields) {
			continue
		}
		count, err := strconv.ParseInt(fields[countIndex], 10, 64)
		if err != nil {
			continue
		}
		d.createEntry(fields[termIndex], count)
	}
	return scanner.Err()
}
