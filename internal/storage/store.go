package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"compoundlab/internal/growth"
)

// Store persists simulation runs as one folder per run under baseDir:
// metadata.json with the parameters and summary, schedule.csv with the
// full native-granularity table.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}

type RunMetadata struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Principal float64        `json:"principal"`
	Rate      float64        `json:"rate"`
	Interval  string         `json:"interval"`
	Deposit   float64        `json:"deposit"`
	Years     int            `json:"years"`
	Periods   int            `json:"periods"`
	Summary   growth.Summary `json:"summary"`
}

func (s *Store) Save(result *growth.Result) (string, error) {
	p := result.Params
	runID := fmt.Sprintf("%s_%d", p.Interval, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Principal: p.Principal,
		Rate:      p.AnnualRatePercent,
		Interval:  p.Interval.String(),
		Deposit:   p.Deposit,
		Years:     p.Years,
		Periods:   len(result.Schedule),
		Summary:   result.Summary,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "schedule.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"period", "invested", "balance", "interest"}); err != nil {
		return "", err
	}

	for _, rec := range result.Schedule {
		row := []string{
			strconv.Itoa(rec.Period),
			strconv.FormatFloat(growth.RoundCents(rec.Invested), 'f', 2, 64),
			strconv.FormatFloat(growth.RoundCents(rec.Balance), 'f', 2, 64),
			strconv.FormatFloat(growth.RoundCents(rec.Interest), 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSchedule reads a stored schedule back as period records. Values were
// rounded to cents when written, so a reloaded schedule matches the
// original only to that precision.
func (s *Store) LoadSchedule(runID string) ([]growth.PeriodRecord, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "schedule.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []growth.PeriodRecord{}, nil
	}

	schedule := make([]growth.PeriodRecord, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 4 {
			continue
		}

		period, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		invested, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		balance, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		interest, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}

		schedule = append(schedule, growth.PeriodRecord{
			Period:   period,
			Invested: invested,
			Balance:  balance,
			Interest: interest,
		})
	}

	return schedule, nil
}
