// internal/words/words.go
//
// Dictionary management for the helper core.
//
// Responsibilities:
//   - Load the candidate word list once at startup and hold it immutably
//     for the process lifetime.
//   - Validate entries into solver.Word values (5 lowercase letters),
//     dropping malformed lines the way a word-list file tends to need.
//   - Supply accessors: All, Contains, Count.
//
// Initialization behavior (Init):
//   1. If WORDS_FILE is set, load one word per line from that file.
//   2. Else if WORDS_DB is set, load from the `words` table of that
//      SQLite database.
//   3. Else fall back to the embedded assets/words.txt.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//   WORDS_DB=/path/to/words.db
//
// Initialization runs once (sync.Once); an empty resulting list is an
// error and the caller is expected to treat it as fatal.

package words

import (
	"bufio"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lettergrid/wordle-helper/assets"
	"github.com/lettergrid/wordle-helper/internal/solver"
)

var (
	initOnce   sync.Once
	list       []solver.Word
	set        map[solver.Word]struct{}
	initialErr error
)

// Init loads the dictionary exactly once.
// Returns an error if no source yields any valid word.
func Init() error {
	initOnce.Do(func() {
		var lines []string
		var err error

		switch {
		case os.Getenv("WORDS_FILE") != "":
			lines, err = readWordFile(os.Getenv("WORDS_FILE"))
		case os.Getenv("WORDS_DB") != "":
			lines, err = readWordDB(os.Getenv("WORDS_DB"))
		default:
			lines, err = assets.WordList()
		}
		if err != nil {
			initialErr = fmt.Errorf("words: load dictionary: %w", err)
			return
		}

		list, set = build(lines)
		if len(list) == 0 {
			initialErr = errors.New("words: dictionary is empty")
		}
	})
	return initialErr
}

// build validates raw lines into the word list and lookup set.
// Malformed and duplicate entries are skipped.
func build(lines []string) ([]solver.Word, map[solver.Word]struct{}) {
	out := make([]solver.Word, 0, len(lines))
	seen := make(map[solver.Word]struct{}, len(lines))
	for _, line := range lines {
		w, err := solver.NewWord(line)
		if err != nil {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, seen
}

// readWordFile loads one word per line from a plain text file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// readWordDB loads the dictionary from a SQLite database.
// Expects a `words` table with a `word` column.
func readWordDB(path string) ([]string, error) {
	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT word FROM words`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// All returns the dictionary in load order. Callers must not modify it.
func All() []solver.Word {
	return list
}

// Contains reports whether w is a dictionary word.
func Contains(w solver.Word) bool {
	_, ok := set[w]
	return ok
}

// Count returns the number of dictionary words.
func Count() int {
	return len(list)
}
