package episodes

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// Column names of the delimited episode table
const (
	ColumnSeason      = "Season"
	ColumnEpisode     = "Episode"
	ColumnTitle       = "Title"
	ColumnAirDate     = "Air Date"
	ColumnRating      = "Rating"
	ColumnDescription = "Description"
	ColumnImageURL    = "Image URL"
	ColumnMainCast    = "Main Cast"
)

var requiredColumns = []string{
	ColumnSeason, ColumnEpisode, ColumnTitle, ColumnAirDate,
	ColumnRating, ColumnDescription, ColumnImageURL, ColumnMainCast,
}

// Loader reads an episode table from disk
type Loader struct {
	datasetPath string
}

// NewLoader creates a new episode table loader
func NewLoader(datasetPath string) *Loader {
	return &Loader{
		datasetPath: datasetPath,
	}
}

// Load reads the whole table (CSV, JSONL or Parquet) and normalizes it
func (l *Loader) Load() (*Table, error) {
	ext := strings.ToLower(filepath.Ext(l.datasetPath))

	var (
		rows []Episode
		err  error
	)
	switch ext {
	case ".csv":
		rows, err = l.loadCSV()
	case ".jsonl", ".json":
		rows, err = l.loadJSONL()
	case ".parquet":
		rows, err = l.loadParquet()
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .csv, .jsonl, .parquet)", ext)
	}
	if err != nil {
		return nil, err
	}

	table, err := NewTable(rows)
	if err != nil {
		return nil, fmt.Errorf("invalid episode table %s: %w", l.datasetPath, err)
	}

	slog.Info("Loaded episode table", "path", l.datasetPath, "episodes", table.Len(), "seasons", len(table.Seasons()))
	return table, nil
}

// loadCSV loads rows from a comma-separated file with a header row
func (l *Loader) loadCSV() ([]Episode, error) {
	slog.Debug("Opening CSV file", "path", l.datasetPath)

	file, err := os.Open(l.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	return readCSV(file)
}

func readCSV(r io.Reader) ([]Episode, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dataset is empty: missing header row")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		columns[strings.ToLower(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset is missing required columns: %s", strings.Join(missing, ", "))
	}

	var rows []Episode
	lineNum := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		lineNum++
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV at line %d: %w", lineNum, err)
		}

		field := func(name string) string {
			i := columns[strings.ToLower(name)]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		season, err := parseInt(field(ColumnSeason))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %s: %w", lineNum, ColumnSeason, err)
		}
		number, err := parseInt(field(ColumnEpisode))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %s: %w", lineNum, ColumnEpisode, err)
		}

		rows = append(rows, Episode{
			Season:      season,
			Number:      number,
			Title:       strings.TrimSpace(field(ColumnTitle)),
			AirDate:     strings.TrimSpace(field(ColumnAirDate)),
			Rating:      parseRating(field(ColumnRating), lineNum),
			Description: strings.TrimSpace(field(ColumnDescription)),
			ImageURL:    strings.TrimSpace(field(ColumnImageURL)),
			MainCast:    ParseCast(field(ColumnMainCast)),
		})
	}

	slog.Debug("Finished reading CSV file", "total_records", len(rows), "total_lines", lineNum)
	return rows, nil
}

// loadJSONL loads rows from a JSONL file, one episode object per line
func (l *Loader) loadJSONL() ([]Episode, error) {
	slog.Debug("Opening JSONL file", "path", l.datasetPath)

	file, err := os.Open(l.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	var rows []Episode
	scanner := bufio.NewScanner(file)

	const maxCapacity = 1024 * 1024 // 1MB per line
	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var record jsonlRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}

		rows = append(rows, Episode{
			Season:      record.Season,
			Number:      record.Episode,
			Title:       strings.TrimSpace(record.Title),
			AirDate:     record.AirDate,
			Rating:      decodeRating(record.Rating, lineNum),
			Description: record.Description,
			ImageURL:    strings.TrimSpace(record.ImageURL),
			MainCast:    record.MainCast,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}

	slog.Debug("Finished reading JSONL file", "total_records", len(rows), "total_lines", lineNum)
	return rows, nil
}

// loadParquet loads rows from a Parquet file
func (l *Loader) loadParquet() ([]Episode, error) {
	slog.Debug("Opening Parquet file", "path", l.datasetPath)

	file, err := os.Open(l.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened successfully", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[parquetRecord](pf)
	defer reader.Close()

	var rows []Episode
	batch := make([]parquetRecord, 128)
	for {
		n, err := reader.Read(batch)
		for _, record := range batch[:n] {
			rows = append(rows, Episode{
				Season:      int(record.Season),
				Number:      int(record.Episode),
				Title:       strings.TrimSpace(record.Title),
				AirDate:     record.AirDate,
				Rating:      checkRating(record.Rating, len(rows)+1),
				Description: record.Description,
				ImageURL:    strings.TrimSpace(record.ImageURL),
				MainCast:    Cast(record.MainCast).Normalize(),
			})
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	slog.Debug("Finished reading Parquet file", "total_records", len(rows))
	return rows, nil
}

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	// pandas float columns come back as "3.0"
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}

// parseRating returns nil for empty or unusable values
func parseRating(s string, line int) *float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		slog.Warn("Ignoring unparseable rating", "line", line, "value", s)
		return nil
	}
	return checkRating(&f, line)
}

func decodeRating(raw json.RawMessage, line int) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return checkRating(&f, line)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseRating(s, line)
	}
	slog.Warn("Ignoring unparseable rating", "line", line, "value", string(raw))
	return nil
}

func checkRating(r *float64, line int) *float64 {
	if r == nil {
		return nil
	}
	if math.IsNaN(*r) || *r < 0 || *r > 10 {
		slog.Warn("Ignoring out of range rating", "line", line, "value", *r)
		return nil
	}
	v := *r
	return &v
}
