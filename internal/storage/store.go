package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Clayten/blackholes/internal/track"
)

const (
	metadataFile = "metadata.json"
	trackFile    = "track.csv"
)

var trackHeader = []string{"step", "elapsed_s", "mass_kg", "radius_m", "luminosity_w", "lifetime_s", "radiated_j"}

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
	ID             string    `json:"id"`
	Label          string    `json:"label"`
	Timestamp      time.Time `json:"timestamp"`
	InitialMassKg  float64   `json:"initial_mass_kg"`
	Steps          int       `json:"steps"`
	Fraction       float64   `json:"fraction"`
	StepsTaken     int       `json:"steps_taken"`
	Evaporated     bool      `json:"evaporated"`
	TotalRadiatedJ float64   `json:"total_radiated_j"`
}

// Save writes a tracked run to its own directory and returns the run id.
func (s *Store) Save(label string, cfg track.Config, result *track.Result) (string, error) {
	if label == "" {
		label = "run"
	}
	runID := fmt.Sprintf("%s_%s", label, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Label:          label,
		Timestamp:      time.Now(),
		InitialMassKg:  result.InitialMassKg,
		Steps:          cfg.Steps,
		Fraction:       cfg.Fraction,
		StepsTaken:     result.StepsTaken,
		Evaporated:     result.Evaporated,
		TotalRadiatedJ: result.TotalRadiatedJ,
	}

	if err := writeRun(runDir, meta, result.Samples); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return runID, nil
}

func writeRun(runDir string, meta RunMetadata, samples []track.Sample) error {
	err := writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(runDir, trackFile), func(w io.Writer) error {
		return WriteCSV(w, samples)
	})
}

// writeFile creates path, runs write against it and reports the first of
// the write and close errors.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCSV writes samples with a header row.
func WriteCSV(w io.Writer, samples []track.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(trackHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.Itoa(s.Step),
			formatFloat(s.ElapsedS),
			formatFloat(s.MassKg),
			formatFloat(s.RadiusM),
			formatFloat(s.LuminosityW),
			formatFloat(s.LifetimeS),
			formatFloat(s.RadiatedJ),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List returns all runs, oldest first.
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

func (s *Store) LoadTrack(runID string) ([]track.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, trackFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(trackHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []track.Sample{}, nil
	}

	samples := make([]track.Sample, 0, len(records)-1)
	for i, record := range records[1:] {
		vals := make([]float64, len(record)-1)
		for j := 1; j < len(record); j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", trackFile, i+2, err)
			}
			vals[j-1] = v
		}
		step, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", trackFile, i+2, err)
		}
		samples = append(samples, track.Sample{
			Step:        step,
			ElapsedS:    vals[0],
			MassKg:      vals[1],
			RadiusM:     vals[2],
			LuminosityW: vals[3],
			LifetimeS:   vals[4],
			RadiatedJ:   vals[5],
		})
	}
	return samples, nil
}

// LoadResult rebuilds a track.Result from a stored run.
func (s *Store) LoadResult(runID string) (*RunMetadata, *track.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	samples, err := s.LoadTrack(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, &track.Result{
		Samples:        samples,
		InitialMassKg:  meta.InitialMassKg,
		TotalRadiatedJ: meta.TotalRadiatedJ,
		StepsTaken:     meta.StepsTaken,
		Evaporated:     meta.Evaporated,
	}, nil
}

type ExportData struct {
	RunMetadata
	Samples []track.Sample `json:"samples"`
}

// ExportJSON writes the run metadata and all samples as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, samples []track.Sample) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Samples: samples})
}
