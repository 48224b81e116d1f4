package leadcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oakfield/london-property-agent/backend/internal/model/lead"
)

// Columns is the fixed order established when the file is first created.
var Columns = []string{
	"timestamp",
	"name",
	"contact_channel",
	"email",
	"interest_type",
	"budget",
	"postcode",
	"details",
	"email_valid",
	"postcode_valid",
}

// Store is an append-only CSV lead store. All file access is serialized
// through the mutex: the hosting server handles requests concurrently and
// interleaved partial rows would corrupt the column count.
type Store struct {
	mu   sync.Mutex
	path string
}

// New prepares the store at path, creating the parent directory and
// writing the header row when the file does not exist yet.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create lead store directory: %w", err)
		}
	}
	s := &Store{path: path}
	if err := s.ensureHeader(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureHeader() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat lead store: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create lead store: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		f.Close()
		return fmt.Errorf("write lead store header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write lead store header: %w", err)
	}
	return f.Close()
}

// Append writes one record as a row. Rows are never rewritten or deleted,
// and identical records produce distinct rows. Any I/O failure propagates:
// a captured lead must never be dropped silently.
func (s *Store) Append(rec lead.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open lead store: %w", err)
	}
	w := csv.NewWriter(f)
	row := []string{
		rec.CapturedAt.Format(time.RFC3339),
		rec.Name,
		rec.ContactChannel,
		rec.Email,
		rec.InterestType,
		rec.Budget,
		rec.Postcode,
		rec.Details,
		yesNo(rec.EmailValid),
		yesNo(rec.PostcodeValid),
	}
	if err := w.Write(row); err != nil {
		f.Close()
		return fmt.Errorf("append lead row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("append lead row: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close lead store: %w", err)
	}
	return nil
}

// List returns every stored row as a header-keyed map, oldest first,
// together with the total count.
func (s *Store) List() ([]map[string]string, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []map[string]string{}, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("open lead store: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("read lead store: %w", err)
	}
	if len(rows) == 0 {
		return []map[string]string{}, 0, nil
	}

	header := rows[0]
	leads := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		item := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				item[col] = row[i]
			} else {
				item[col] = ""
			}
		}
		leads = append(leads, item)
	}
	return leads, len(leads), nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
