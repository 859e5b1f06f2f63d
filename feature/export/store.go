package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"excel-exporter/core/utils"

	"go.uber.org/zap"
)

// StoredTable is one exported document loaded back for preview.
type StoredTable struct {
	Name string
	// Items holds the rows in document order.
	Items []map[string]any
	// IDField is the detected identifier field, empty when none qualifies.
	IDField string
	// ByID indexes rows with a non-zero integer identifier.
	ByID map[int]map[string]any
}

// Store loads the exported documents once and serves read-only lookups for
// the preview server. Initialization is idempotent: a second call warns and
// no-ops. It is not safe to call concurrently; the serve command initializes
// the store before the listener starts.
type Store struct {
	dir         string
	logger      *zap.Logger
	initialized bool
	tables      map[string]*StoredTable
}

// NewStore creates a store over the given data directory.
func NewStore(dir string, logger *zap.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
		tables: make(map[string]*StoredTable),
	}
}

// Initialize loads every .json document in the data directory. Documents
// that fail to parse are skipped with a diagnostic.
func (s *Store) Initialize() error {
	if s.initialized {
		s.logger.Warn("Store is already initialized")
		return nil
	}

	files, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to scan data dir: %w", err)
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".json")
		table, err := loadStoredTable(name, file)
		if err != nil {
			s.logger.Error("Skipping unreadable document", zap.String("file", file), zap.Error(err))
			continue
		}
		s.tables[name] = table
		s.logger.Info("Loaded table",
			zap.String("table", name),
			zap.Int("rows", len(table.Items)),
			zap.Int("indexed", len(table.ByID)),
		)
	}

	s.initialized = true
	return nil
}

// Tables returns the loaded table names, sorted.
func (s *Store) Tables() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a loaded table by name.
func (s *Store) Get(name string) (*StoredTable, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// GetByID returns the row with the given identifier.
func (s *Store) GetByID(name string, id int) (map[string]any, bool) {
	t, ok := s.tables[name]
	if !ok {
		return nil, false
	}
	row, ok := t.ByID[id]
	return row, ok
}

// Query returns the rows of a table matching the predicate.
func (s *Store) Query(name string, predicate func(map[string]any) bool) []map[string]any {
	t, ok := s.tables[name]
	if !ok {
		return nil
	}
	var out []map[string]any
	for _, row := range t.Items {
		if predicate(row) {
			out = append(out, row)
		}
	}
	return out
}

// FilterByField returns the rows whose field equals the raw query value,
// compared under the stored value's type. JSON numbers come back as float64,
// so numeric fields match against the parsed form of the raw string.
func (s *Store) FilterByField(name, field, raw string) []map[string]any {
	return s.Query(name, func(row map[string]any) bool {
		v, ok := row[field]
		if !ok {
			return false
		}
		switch v := v.(type) {
		case bool:
			return v == utils.ToBool(raw)
		case float64:
			return v == utils.ToFloat(raw)
		default:
			return utils.ToString(v) == raw
		}
	})
}

func loadStoredTable(name, path string) (*StoredTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	table := &StoredTable{
		Name:  name,
		Items: doc.Items,
		ByID:  make(map[int]map[string]any),
	}
	if len(doc.Items) == 0 {
		return table, nil
	}

	// Field names come back as unordered map keys, so sort before applying
	// the detection ladder to keep the fallback pick stable.
	names := make([]string, 0, len(doc.Items[0]))
	for field := range doc.Items[0] {
		names = append(names, field)
	}
	sort.Strings(names)
	table.IDField = DetectIDField(names)

	if table.IDField != "" {
		for _, row := range doc.Items {
			if id := utils.ToInt(row[table.IDField]); id != 0 {
				table.ByID[id] = row
			}
		}
	}
	return table, nil
}
