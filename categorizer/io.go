package categorizer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ReferenceRow is one manifesto fragment with its code.
type ReferenceRow struct {
	Text string
	Code string
}

type csvRow struct {
	line   int
	fields []string
}

func readCSVRows(path string) ([]csvRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		reader.Comma = '\t'
	}
	reader.FieldsPerRecord = -1
	var rows []csvRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		line, _ := reader.FieldPos(0)
		fields := make([]string, len(record))
		for i, cell := range record {
			fields[i] = cleanCell(cell)
		}
		rows = append(rows, csvRow{line: line, fields: fields})
	}
	return rows, nil
}

// ParseReferenceCorpus reads (text, code) rows. Rows whose code is not a
// number are skipped.
func ParseReferenceCorpus(path string) ([]ReferenceRow, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	out := make([]ReferenceRow, 0, len(rows))
	for _, row := range rows {
		if len(row.fields) < 2 {
			return nil, &MalformedRowError{Path: path, Line: row.line, Want: 2, Got: len(row.fields)}
		}
		if !isNumericCode(row.fields[1]) {
			continue
		}
		out = append(out, ReferenceRow{Text: row.fields[0], Code: row.fields[1]})
	}
	return out, nil
}

// ParseReferenceDir reads every CSV/TSV file of a directory in name order,
// or a single file when path is not a directory.
func ParseReferenceDir(path string) ([]ReferenceRow, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat reference corpus: %w", err)
	}
	if !info.IsDir() {
		return ParseReferenceCorpus(path)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read reference dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".csv", ".tsv":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	var out []ReferenceRow
	for _, name := range names {
		rows, err := ParseReferenceCorpus(filepath.Join(path, name))
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}
	return out, nil
}

// BuildReferenceCodes groups fragments by code in first-seen order. Bullet
// characters are dropped from the fragments. Every code must be in names.
func BuildReferenceCodes(rows []ReferenceRow, names map[string]string) ([]ReferenceCode, error) {
	index := make(map[string]int)
	var parts [][]string
	var out []ReferenceCode
	for _, row := range rows {
		text := strings.TrimSpace(strings.ReplaceAll(row.Text, "\u2022", ""))
		i, ok := index[row.Code]
		if !ok {
			name, known := names[row.Code]
			if !known {
				return nil, &UnknownCodeError{Code: row.Code}
			}
			i = len(out)
			index[row.Code] = i
			out = append(out, ReferenceCode{ID: row.Code, Name: name})
			parts = append(parts, nil)
		}
		if text != "" {
			parts[i] = append(parts[i], text)
		}
	}
	for i := range out {
		out[i].Description = strings.Join(parts[i], " ")
	}
	return out, nil
}

// ParseMotions reads rows of id, one or more text fields and a trailing code.
// Rows sharing an id belong to the same motion; motions keep first-seen order.
func ParseMotions(path string) ([]Motion, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 && isMotionHeader(rows[0].fields) {
		rows = rows[1:]
	}
	index := make(map[string]int)
	var motions []Motion
	for _, row := range rows {
		if len(row.fields) < 3 {
			return nil, &MalformedRowError{Path: path, Line: row.line, Want: 3, Got: len(row.fields)}
		}
		id := row.fields[0]
		n := len(row.fields)
		ex := Example{
			Fields: cloneStrings(row.fields[1 : n-1]),
			Code:   row.fields[n-1],
		}
		i, ok := index[id]
		if !ok {
			i = len(motions)
			index[id] = i
			motions = append(motions, Motion{ID: id})
		}
		motions[i].Examples = append(motions[i].Examples, ex)
	}
	return motions, nil
}

// ParseCodeDictionary reads (code, name) rows.
func ParseCodeDictionary(path string) (map[string]string, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 && isDictionaryHeader(rows[0].fields) {
		rows = rows[1:]
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		if len(row.fields) < 2 {
			return nil, &MalformedRowError{Path: path, Line: row.line, Want: 2, Got: len(row.fields)}
		}
		out[row.fields[0]] = row.fields[1]
	}
	return out, nil
}

func isNumericCode(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "\ufeff")
	return v
}
