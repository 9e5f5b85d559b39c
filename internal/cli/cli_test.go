package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/planreader/internal/model"
	"github.com/spf13/viper"
)

func TestDecodeConfig_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v, model.DefaultConfig())

	cfg, err := decodeConfig(v)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cfg.OCR.MinTextChars != 50 {
		t.Errorf("Expected min_text_chars 50, got %d", cfg.OCR.MinTextChars)
	}
	if cfg.Cache.MemoryTTL != 30*time.Minute {
		t.Errorf("Expected memory TTL 30m, got %v", cfg.Cache.MemoryTTL)
	}
	if cfg.Output.Format != formatTable {
		t.Errorf("Expected table format, got %q", cfg.Output.Format)
	}
}

func TestDecodeConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlCfg := "ocr:\n  provider: ollama\n  model: llava\ncache:\n  disk_ttl: 2h\nconcurrency:\n  workers: 9\n"
	if err := os.WriteFile(path, []byte(yamlCfg), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PLANREADER_CONCURRENCY_WORKERS", "3")
	t.Setenv("OLLAMA_BASE_URL", "http://ollama:11434")

	v := viper.New()
	setDefaults(v, model.DefaultConfig())
	v.SetConfigFile(path)
	v.SetEnvPrefix("PLANREADER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		t.Fatal(err)
	}

	cfg, err := decodeConfig(v)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cfg.OCR.Provider != "ollama" || cfg.OCR.Model != "llava" {
		t.Errorf("Expected ollama/llava, got %s/%s", cfg.OCR.Provider, cfg.OCR.Model)
	}
	if cfg.OCR.BaseURL != "http://ollama:11434" {
		t.Errorf("Expected base URL from OLLAMA_BASE_URL, got %q", cfg.OCR.BaseURL)
	}
	if cfg.Cache.DiskTTL != 2*time.Hour {
		t.Errorf("Expected disk TTL 2h, got %v", cfg.Cache.DiskTTL)
	}
	if cfg.Concurrency.Workers != 3 {
		t.Errorf("Expected env to override workers, got %d", cfg.Concurrency.Workers)
	}
	if cfg.OCR.MinTextChars != 50 {
		t.Errorf("Expected unset keys to keep defaults, got %d", cfg.OCR.MinTextChars)
	}
}

func TestApplyProviderEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	ocr := model.OCRConfig{Provider: "OpenAI"}
	applyProviderEnv(&ocr)
	if ocr.APIKey != "sk-env" {
		t.Errorf("Expected key from env, got %q", ocr.APIKey)
	}

	ocr = model.OCRConfig{Provider: "openai", APIKey: "sk-file"}
	applyProviderEnv(&ocr)
	if ocr.APIKey != "sk-file" {
		t.Errorf("Expected configured key to win, got %q", ocr.APIKey)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".planreader", "config.yaml")
	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("written config does not parse: %v", err)
	}
	cfg, err := decodeConfig(v)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Cache.DiskTTL != 7*24*time.Hour {
		t.Errorf("Expected disk TTL to round-trip, got %v", cfg.Cache.DiskTTL)
	}

	if err := writeDefaultConfig(path); err == nil {
		t.Error("Expected error when config already exists")
	}
}

func TestShowConfig_MasksAPIKey(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.OCR.APIKey = "sk-secret"

	var buf bytes.Buffer
	if err := showConfig(&buf, cfg); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "sk-secret") {
		t.Error("API key leaked into config output")
	}
	if cfg.OCR.APIKey != "sk-secret" {
		t.Error("showConfig mutated the config")
	}
}

func TestParseMeasurements(t *testing.T) {
	raw, err := parseMeasurements([]string{"length_ft=200", " Height_FT = 9.5"})
	if err != nil {
		t.Fatal(err)
	}
	if raw["length_ft"] != 200 || raw["height_ft"] != 9.5 {
		t.Errorf("unexpected measurements %v", raw)
	}

	for _, bad := range []string{"length_ft", "=3", "length_ft=long", "length_ft=inf", "sq_ft=-Inf", "sq_ft=NaN"} {
		if _, err := parseMeasurements([]string{bad}); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestParseCounts(t *testing.T) {
	counts, err := parseCounts([]string{"Truss=24", "joist=10"})
	if err != nil {
		t.Fatal(err)
	}
	if counts["truss"] != 24 || counts["joist"] != 10 {
		t.Errorf("unexpected counts %v", counts)
	}
	if _, err := parseCounts([]string{"truss=many"}); err == nil {
		t.Error("Expected error for non-numeric count")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"/plans/Smith House: rev 2.pdf": "Smith-House_-rev-2",
		"scan.png":                      "scan",
		"":                              "plan",
	}
	for in, want := range tests {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestReadManualInput(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "house.yaml")
	if err := os.WriteFile(yamlPath, []byte("total_sqft: 2400\nfoundation_type: crawlspace\nnum_stories: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	jsonPath := filepath.Join(dir, "house.json")
	if err := os.WriteFile(jsonPath, []byte(`{"total_sqft": 1800, "num_doors": 5}`), 0o644); err != nil {
		t.Fatal(err)
	}

	in, err := readManualInput(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	if in.TotalSqft != 2400 || in.FoundationType != "crawlspace" || in.NumStories != 2 {
		t.Errorf("unexpected yaml input %+v", in)
	}

	in, err = readManualInput(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	if in.TotalSqft != 1800 || in.NumDoors != 5 {
		t.Errorf("unexpected json input %+v", in)
	}
}

func TestWriteTakeoff_Formats(t *testing.T) {
	tk := &model.Takeoff{
		ID:      "0f8fad5b-d9cb-469f-a165-70867728950e",
		Project: model.ProjectInfo{Filename: "house.pdf", TotalSqft: 2400, Stories: 1, Foundation: model.FoundationSlab},
		Materials: []model.MaterialLineItem{
			{OrderLine: 1, Description: "2x4x96 (8') Studs", LumberSize: "2x4", Quantity: 165, Unit: "Each", Division: model.DivisionWood},
		},
		Summary: model.TakeoffSummary{TotalLineItems: 1},
	}

	var table, csvOut, jsonOut bytes.Buffer
	if err := writeTakeoff(&table, tk, formatTable); err != nil {
		t.Fatal(err)
	}
	if err := writeTakeoff(&csvOut, tk, formatCSV); err != nil {
		t.Fatal(err)
	}
	if err := writeTakeoff(&jsonOut, tk, formatJSON); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(table.String(), "2x4x96 (8') Studs") || !strings.Contains(table.String(), "165") {
		t.Errorf("table output missing line item:\n%s", table.String())
	}
	if !strings.HasPrefix(csvOut.String(), "Line,Description") {
		t.Errorf("unexpected csv output:\n%s", csvOut.String())
	}
	if !strings.Contains(jsonOut.String(), `"total_line_items": 1`) {
		t.Errorf("unexpected json output:\n%s", jsonOut.String())
	}
}

func TestCheckFormat(t *testing.T) {
	if err := checkFormat("csv", formatTable, formatJSON); err == nil {
		t.Error("Expected csv to be rejected")
	}
	if err := checkFormat("json", formatTable, formatJSON); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
