package sheetstore

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
)

// Record is one row keyed by header name. Every declared header is
// present, missing trailing cells are "".
type Record map[string]string

// RowAPI is the narrow contract the adapter needs from the remote
// backend: whole-row reads and writes against a named tab, no secondary
// index, 1-based row addressing with the header occupying row 1.
type RowAPI interface {
	// Rows returns every row of the tab including the header row.
	Rows(tab string) ([][]string, error)
	// Header returns the first row of the tab.
	Header(tab string) ([]string, error)
	// Append adds a row after the last non-empty row.
	Append(tab string, row []string) error
	// UpdateRow rewrites the given 1-based row in place.
	UpdateRow(tab string, rowIndex int, row []string) error
	// DeleteRow removes the given 1-based row, shifting later rows up.
	DeleteRow(tab string, rowIndex int) error
	// EnsureTab creates the tab with the header row if it does not exist.
	EnsureTab(tab string, header []string) error
}

// Store gives entity-oriented CRUD over header-indexed row data.
//
// Mutating calls are serialized through a single mutex. ID allocation is
// only race-free through InsertWithNextID, which holds the mutex across
// the max-ID scan and the append; a bare NextID followed by Insert can
// still mint duplicates under concurrency. Writers in other processes
// are not coordinated, same as before.
type Store struct {
	api RowAPI
	mu  sync.Mutex
}

// New returns a Store over the given backend.
func New(api RowAPI) *Store {
	return &Store{api: api}
}

// List fetches all records of a tab. The first row is the header (names
// trimmed), each following row is zipped into a Record in header order.
// Short rows are padded with "" and rows whose every cell is empty are
// dropped. Backend failures are returned, never swallowed into an empty
// slice; callers choose their own fallback.
func (s *Store) List(tab string) ([]Record, error) {
	rows, err := s.api.Rows(tab)
	if err != nil {
		return nil, opErr("list", tab, err)
	}
	if len(rows) < 2 {
		return []Record{}, nil
	}

	header := trimHeader(rows[0])
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec, empty := zipRow(header, row)
		if empty {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Find returns the first record whose keyField equals keyValue. Equality
// is on the textual form, so numeric and string keys compare equal when
// their representations match. Returns ErrNotFound when absent.
func (s *Store) Find(tab, keyField, keyValue string) (Record, error) {
	records, err := s.List(tab)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec[keyField] == keyValue {
			return rec, nil
		}
	}
	return nil, opErr("find", tab, ErrNotFound)
}

// NextID scans the tab's ID column, parses every value as an integer and
// returns max+1, or 1 when nothing parses. Unparsable entries are skipped
// (and logged, so data-quality rot stays visible). Callers that go on to
// insert the record should use InsertWithNextID instead, which does the
// scan and the append in one critical section.
func (s *Store) NextID(tab string) (int, error) {
	return s.nextID(tab)
}

func (s *Store) nextID(tab string) (int, error) {
	records, err := s.List(tab)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, rec := range records {
		raw := strings.TrimSpace(rec["ID"])
		if raw == "" {
			continue
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			log.Printf("sheetstore: %s has non-numeric ID %q, skipping", tab, raw)
			continue
		}
		if id > max {
			max = id
		}
	}
	return max + 1, nil
}

// Insert appends a record as a new row. The row is built in the tab's
// current header order; fields absent from the record become "" and
// fields absent from the header are silently dropped, so callers must
// keep entity schemas header-aligned.
func (s *Store) Insert(tab string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertRow(tab, rec)
}

// InsertWithNextID allocates the tab's next numeric ID and appends the
// record under it, all inside one critical section, so two concurrent
// callers cannot mint the same ID. The record's ID field is overwritten
// with the allocated value, which is returned.
func (s *Store) InsertWithNextID(tab string, rec Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextID(tab)
	if err != nil {
		return 0, err
	}
	stamped := make(Record, len(rec)+1)
	for name, value := range rec {
		stamped[name] = value
	}
	stamped["ID"] = strconv.Itoa(id)
	if err := s.insertRow(tab, stamped); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) insertRow(tab string, rec Record) error {
	header, err := s.api.Header(tab)
	if err != nil {
		return opErr("insert", tab, err)
	}
	header = trimHeader(header)

	row := make([]string, len(header))
	for i, name := range header {
		row[i] = rec[name]
	}
	if err := s.api.Append(tab, row); err != nil {
		return opErr("insert", tab, err)
	}
	return nil
}

// Update locates the first row matching keyField=keyValue, overlays patch
// on the current record (patch values win, all other columns keep their
// previous value) and rewrites that single row in place. Returns
// ErrNotFound when no row matches.
func (s *Store) Update(tab, keyField, keyValue string, patch Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	header, current, rowIndex, err := s.locate(tab, keyField, keyValue)
	if err != nil {
		return opErr("update", tab, err)
	}

	row := make([]string, len(header))
	for i, name := range header {
		if v, ok := patch[name]; ok {
			row[i] = v
		} else {
			row[i] = current[name]
		}
	}
	if err := s.api.UpdateRow(tab, rowIndex, row); err != nil {
		return opErr("update", tab, err)
	}
	return nil
}

// Delete physically removes the first row matching keyField=keyValue.
// Later rows shift up one index. Returns ErrNotFound when no row matches.
func (s *Store) Delete(tab, keyField, keyValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _, rowIndex, err := s.locate(tab, keyField, keyValue)
	if err != nil {
		return opErr("delete", tab, err)
	}
	if err := s.api.DeleteRow(tab, rowIndex); err != nil {
		return opErr("delete", tab, err)
	}
	return nil
}

// locate scans the raw rows for the first match and returns the header,
// the matched record and its 1-based sheet row index. Scanning the raw
// rows (rather than the filtered record list) keeps the index correct
// even when all-empty rows sit between data rows: the header is row 1,
// data starts at row 2.
func (s *Store) locate(tab, keyField, keyValue string) ([]string, Record, int, error) {
	rows, err := s.api.Rows(tab)
	if err != nil {
		return nil, nil, 0, err
	}
	if len(rows) < 2 {
		return nil, nil, 0, ErrNotFound
	}
	header := trimHeader(rows[0])
	for i, row := range rows[1:] {
		rec, empty := zipRow(header, row)
		if empty {
			continue
		}
		if rec[keyField] == keyValue {
			return header, rec, i + 2, nil
		}
	}
	return nil, nil, 0, ErrNotFound
}

func trimHeader(raw []string) []string {
	header := make([]string, len(raw))
	for i, h := range raw {
		header[i] = strings.TrimSpace(h)
	}
	return header
}

// zipRow maps a raw row into a Record in header order, padding short rows
// with "". The second return is true when every cell is empty; such rows
// are ignorable per the store contract.
func zipRow(header []string, row []string) (Record, bool) {
	rec := make(Record, len(header))
	empty := true
	for i, name := range header {
		value := ""
		if i < len(row) {
			value = strings.TrimSpace(row[i])
		}
		rec[name] = value
		if value != "" {
			empty = false
		}
	}
	return rec, empty
}

// Key renders any scalar key the way Find compares it.
func Key(v interface{}) string { return fmt.Sprintf("%v", v) }
