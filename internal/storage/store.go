package storage

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/ljeopp/internal/pair"
)

const (
	metadataFile = "metadata.json"
	forcesFile   = "forces.csv"
	restartFile  = "restart.bin"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Source    string             `json:"source"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	NTypes    int                `json:"ntypes"`
	Atoms     int                `json:"atoms"`
	Newton    bool               `json:"newton"`
	Workers   int                `json:"workers"`
	Cutoff    float64            `json:"cutoff"`
	Steps     int                `json:"steps,omitempty"`
	Dt        float64            `json:"dt,omitempty"`
	Energy    float64            `json:"energy"`
	Virial    [6]float64         `json:"virial"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// Run is everything persisted for one evaluation: metadata, the final
// per-atom forces and the restart record of the pair table.
type Run struct {
	Meta   RunMetadata
	Forces [][3]float64
	Table  *pair.Table
}

func (s *Store) Save(run *Run) (string, error) {
	meta := run.Meta
	meta.Timestamp = time.Now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Kind, meta.Timestamp.UnixNano())
	if run.Table != nil {
		meta.NTypes = run.Table.NumTypes()
	}
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}
	if err := writeForces(filepath.Join(runDir, forcesFile), run.Forces); err != nil {
		return "", fmt.Errorf("write forces: %w", err)
	}
	if run.Table != nil {
		if err := writeRestart(filepath.Join(runDir, restartFile), run.Table); err != nil {
			return "", err
		}
	}
	return meta.ID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeForces(path string, forces [][3]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"atom", "fx", "fy", "fz"}); err != nil {
		return err
	}
	for i, fi := range forces {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(fi[0], 'g', -1, 64),
			strconv.FormatFloat(fi[1], 'g', -1, 64),
			strconv.FormatFloat(fi[2], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteRestart stores the restart record of tbl at path.
func WriteRestart(path string, tbl *pair.Table) error {
	return writeRestart(path, tbl)
}

func writeRestart(path string, tbl *pair.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := tbl.WriteRestart(w); err != nil {
		return err
	}
	return w.Flush()
}

// ReadRestart reads a restart record for ntypes types from path.
func ReadRestart(path string, ntypes int) (*pair.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return pair.ReadRestart(bufio.NewReader(f), ntypes)
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadForces(runID string) ([][3]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, forcesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 4
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return [][3]float64{}, nil
	}

	forces := make([][3]float64, 0, len(records)-1)
	for n, record := range records[1:] {
		var fi [3]float64
		for d := 0; d < 3; d++ {
			v, err := strconv.ParseFloat(record[d+1], 64)
			if err != nil {
				return nil, fmt.Errorf("forces.csv line %d: %w", n+2, err)
			}
			fi[d] = v
		}
		forces = append(forces, fi)
	}
	return forces, nil
}

// LoadRestart rebuilds the pair table of a run. The table is not
// initialized.
func (s *Store) LoadRestart(runID string) (*pair.Table, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	return ReadRestart(filepath.Join(s.baseDir, runID, restartFile), meta.NTypes)
}
