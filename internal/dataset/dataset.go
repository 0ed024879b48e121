// Package dataset owns the session's current period sequence. Imports
// replace the sequence wholesale and atomically; a failed import leaves the
// previous data untouched. Nothing is persisted across sessions.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/finboard/finboard-cli/internal/model"
	"github.com/finboard/finboard-cli/internal/normalize"
	"github.com/finboard/finboard-cli/internal/tabular"
)

// Session holds the current dataset. There is exactly one writer path
// (Replace, via the import functions); the mutex exists because serve mode
// has concurrent HTTP readers.
type Session struct {
	mu      sync.RWMutex
	id      string
	periods []model.Period
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{id: uuid.NewString()}
}

// Replace swaps in a new period sequence wholesale and rotates the dataset
// ID. The caller must not mutate periods afterwards.
func (s *Session) Replace(periods []model.Period) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.periods = periods
	s.id = uuid.NewString()
}

// Periods returns the current sequence. The returned slice is shared;
// callers treat it as read-only.
func (s *Session) Periods() []model.Period {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.periods
}

// ID returns the current dataset ID. It changes on every successful import.
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Len returns the number of periods currently loaded.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.periods)
}

// ImportCSV parses comma-delimited text through the tabular parser and the
// normalizer and replaces the session dataset.
func (s *Session) ImportCSV(text string) error {
	periods := normalize.Normalize(tabular.Parse(text))
	s.Replace(periods)
	zap.L().Info("dataset: csv import", zap.Int("periods", len(periods)))
	return nil
}

// ImportJSON decodes a top-level JSON array of objects and routes the
// objects through the same alias resolution and defaulting as CSV rows.
// Malformed or non-array input is rejected with the session unchanged.
func (s *Session) ImportJSON(data []byte) error {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return eris.Wrap(err, "dataset: parse json (expected a top-level array of objects)")
	}

	rows := make([]tabular.Row, 0, len(raw))
	headers := objectHeaders(raw)
	for _, obj := range raw {
		cells := make(map[string]string, len(obj))
		for _, h := range headers {
			cells[h] = stringifyValue(obj[h])
		}
		rows = append(rows, tabular.Row{Headers: headers, Cells: cells})
	}

	periods := normalize.Normalize(rows)
	s.Replace(periods)
	zap.L().Info("dataset: json import", zap.Int("periods", len(periods)))
	return nil
}

// ImportXLSX reads the first sheet of an XLSX workbook, treats its first row
// as the header, and routes the rest through the normalizer.
func (s *Session) ImportXLSX(path string) error {
	rows, err := readXLSX(path)
	if err != nil {
		return err
	}

	periods := normalize.Normalize(rows)
	s.Replace(periods)
	zap.L().Info("dataset: xlsx import", zap.Int("periods", len(periods)))
	return nil
}

// LoadFile imports path, dispatching on its extension: .json, .xlsx, or
// delimited text for everything else.
func (s *Session) LoadFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return eris.Wrap(err, "dataset: read file")
		}
		return s.ImportJSON(data)
	case ".xlsx":
		return s.ImportXLSX(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return eris.Wrap(err, "dataset: read file")
		}
		return s.ImportCSV(string(data))
	}
}

// LoadSample replaces the dataset with the built-in demo data.
func (s *Session) LoadSample() {
	s.Replace(model.Sample())
}

// ExportJSON serializes the current sequence verbatim, pretty-printed.
func (s *Session) ExportJSON() ([]byte, error) {
	periods := s.Periods()
	if periods == nil {
		periods = []model.Period{}
	}
	data, err := json.MarshalIndent(periods, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "dataset: marshal export")
	}
	return data, nil
}

// ExportCSV renders the current sequence in canonical column order.
func (s *Session) ExportCSV() string {
	return tabular.WriteCSV(s.Periods())
}

// DefaultExportName is the filename offered for JSON exports.
const DefaultExportName = "financials.json"

// objectHeaders collects the union of keys across objects so rows with
// missing fields still zip against a stable header set.
func objectHeaders(objs []map[string]any) []string {
	seen := make(map[string]bool)
	var headers []string
	for _, obj := range objs {
		for k := range obj {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}
	sort.Strings(headers)
	return headers
}

// stringifyValue renders a decoded JSON value the way a CSV cell would look:
// numbers without a trailing ".0", nil as empty.
func stringifyValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprintf("%v", t)
	}
}
