package categorizer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"
)

// WriteReport renders r to w in the requested format.
func WriteReport(w io.Writer, r Report, format Format) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatCSV:
		return writeReportCSV(w, r)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeReportCSV(w io.Writer, r Report) error {
	writer := csv.NewWriter(w)
	header := []string{"id", "title", "gold", "predicted", "match", "sentences", "sentence_matches"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, m := range r.Motions {
		matches := 0
		for _, s := range m.Sentences {
			if s.Match {
				matches++
			}
		}
		row := []string{
			m.ID,
			m.Title,
			m.Gold,
			m.Predicted,
			strconv.FormatBool(m.Match),
			strconv.Itoa(len(m.Sentences)),
			strconv.Itoa(matches),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
