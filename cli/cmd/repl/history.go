package repl

import (
	"bufio"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

const (
	baseHistory = "history.utf8"
	maxHistory  = 1000
)

// modePrefix tags each persisted line with the mode it was entered in.
var modePrefix = map[inputMode]string{
	modeEval: "E:",
	modeCtrl: "C:",
}

// HistoryEntry is a single line of input and the mode it was entered in.
type HistoryEntry struct {
	Line string
	Mode inputMode
}

func (e HistoryEntry) encode() string { return modePrefix[e.Mode] + e.Line }

func decodeEntry(line string) HistoryEntry {
	for mode, prefix := range modePrefix {
		if s, ok := strings.CutPrefix(line, prefix); ok {
			return HistoryEntry{Line: s, Mode: mode}
		}
	}

	return HistoryEntry{Line: line, Mode: modeEval}
}

// History is the REPL input history, persisted one entry per line.
//
// At most maxHistory entries are kept. Entering a line that already exists
// in the same mode moves it to the end.
type History struct {
	path    string
	entries []HistoryEntry
	mu      sync.RWMutex
}

// NewHistory returns an empty History backed by the file at path.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Load replaces the in-memory entries with those in the history file.
// A missing file is not an error.
func (h *History) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	file, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}
	defer file.Close()

	h.entries = nil

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		h.entries = append(h.entries, decodeEntry(line))
	}

	h.truncate()

	return scanner.Err()
}

// Add records entry in the given mode and persists it.
func (h *History) Add(entry string, mode inputMode) error {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	e := HistoryEntry{Line: entry, Mode: mode}

	if n := len(h.entries); n > 0 && h.entries[n-1] == e {
		return nil
	}

	rewrite := false

	if i := slices.Index(h.entries, e); i >= 0 {
		h.entries = slices.Delete(h.entries, i, i+1)
		rewrite = true
	}

	h.entries = append(h.entries, e)

	if h.truncate() {
		rewrite = true
	}

	if rewrite {
		return h.rewriteFile()
	}

	return h.appendFile(e)
}

// Entry returns the entry at index i, where 0 is the oldest.
func (h *History) Entry(i int) (HistoryEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i < 0 || i >= len(h.entries) {
		return HistoryEntry{}, ErrOutOfBounds
	}

	return h.entries[i], nil
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Clone(h.entries)
}

// truncate drops the oldest entries beyond maxHistory.
// Must be called with h.mu held.
func (h *History) truncate() bool {
	if over := len(h.entries) - maxHistory; over > 0 {
		h.entries = slices.Delete(h.entries, 0, over)

		return true
	}

	return false
}

// openFile opens the history file, creating its directory if needed.
func (h *History) openFile(flag int) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(h.path), 0o700); err != nil {
		return nil, err
	}

	return os.OpenFile(h.path, flag|os.O_CREATE|os.O_WRONLY, 0o600)
}

// Must be called with h.mu held.
func (h *History) appendFile(e HistoryEntry) error {
	file, err := h.openFile(os.O_APPEND)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(e.encode() + "\n")

	return err
}

// Must be called with h.mu held.
func (h *History) rewriteFile() error {
	file, err := h.openFile(os.O_TRUNC)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	for _, e := range h.entries {
		if _, err := w.WriteString(e.encode() + "\n"); err != nil {
			return err
		}
	}

	return w.Flush()
}
