package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Clayten/blackholes/internal/track"
)

func sampleResult() *track.Result {
	return &track.Result{
		Samples: []track.Sample{
			{Step: 0, MassKg: 1e6, RadiusM: 1.48e-21, LuminosityW: 3.56e20, LifetimeS: 84.1},
			{Step: 1, ElapsedS: 42.05, MassKg: 7.937e5, RadiusM: 1.18e-21, LuminosityW: 5.65e20, LifetimeS: 42.05, RadiatedJ: 1.85e22},
		},
		InitialMassKg:  1e6,
		TotalRadiatedJ: 1.85e22,
		StepsTaken:     1,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("primordial", track.Config{Steps: 2, Fraction: 0.5}, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "primordial_") {
		t.Errorf("unexpected run id %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Label != "primordial" || meta.InitialMassKg != 1e6 || meta.Steps != 2 || meta.Fraction != 0.5 {
		t.Errorf("unexpected metadata: %+v", meta)
	}

	samples, err := st.LoadTrack(runID)
	if err != nil {
		t.Fatalf("load track failed: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[1] != sampleResult().Samples[1] {
		t.Errorf("sample changed in storage: %+v", samples[1])
	}
}

func TestStoreSave_FailureLeavesNoRunDir(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := sampleResult()
	result.InitialMassKg = math.NaN()

	if _, err := st.Save("broken", track.Config{Steps: 1, Fraction: 1}, result); err == nil {
		t.Fatal("expected save to fail on unencodable metadata")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no run directories after failed save, found %d", len(entries))
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("failed run listed: %+v", runs)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	for i := 0; i < 2; i++ {
		if _, err := st.Save("", track.DefaultConfig(), sampleResult()); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID == runs[1].ID {
		t.Error("run ids collide")
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runID, err := st.Save("sun", track.DefaultConfig(), sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{metadataFile, trackFile} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestLoadResult(t *testing.T) {
	st := New(t.TempDir())
	runID, err := st.Save("x", track.DefaultConfig(), sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	meta, result, err := st.LoadResult(runID)
	if err != nil {
		t.Fatalf("load result failed: %v", err)
	}
	if meta.ID != runID || result.StepsTaken != 1 || len(result.Samples) != 2 {
		t.Errorf("unexpected result: %+v %+v", meta, result)
	}
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{ID: "x_1", Label: "x", InitialMassKg: 1e6}
	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, sampleResult().Samples); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got["id"] != "x_1" {
		t.Errorf("expected id x_1, got %v", got["id"])
	}
	if samples, ok := got["samples"].([]any); !ok || len(samples) != 2 {
		t.Errorf("expected 2 samples, got %v", got["samples"])
	}
}
