package stats

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder of dir for this session's
// records.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory the records land in.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSessionRecord(record SessionRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "session_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create session records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "strategy", "start_time", "end_time", "duration", "plays", "draws", "passes", "wild_plays", "unknown", "end_reason"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write session records header: %w", err)
	}

	// Write the row
	row := []string{
		record.ID,
		record.Strategy,
		record.StartTime.Format(time.RFC3339),
		record.EndTime.Format(time.RFC3339),
		record.Duration.String(),
		strconv.Itoa(record.Plays),
		strconv.Itoa(record.Draws),
		strconv.Itoa(record.Passes),
		strconv.Itoa(record.WildPlays),
		strconv.Itoa(record.Unknown),
		record.EndReason,
	}
	err = writer.Write(row)
	if err != nil {
		return fmt.Errorf("failed to write session record row: %w", err)
	}

	return nil
}
