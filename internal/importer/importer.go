// Package importer provides CSV and Excel import functionality for fence
// run lists. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/e1isev/FencePlannerReplit2-sub001/internal/geom"
	"github.com/e1isev/FencePlannerReplit2-sub001/internal/model"
)

// ImportResult holds the results of an import operation. Imported runs are
// laid out end to end along the X axis; the user repositions them in the
// editor afterwards.
type ImportResult struct {
	Lines    []model.Line
	Gates    []model.Gate
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label   int
	Length  int
	Spacing int
	Gate    int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":   {"label", "name", "run", "run name", "description", "desc", "section"},
	"length":  {"length", "length_mm", "len", "mm", "run length", "l"},
	"spacing": {"spacing", "even", "even spacing", "mode", "layout"},
	"gate":    {"gate", "gate type", "gate_type", "opening"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter
// that produces the most consistent column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or
// a default positional mapping and false if not.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Length: -1, Spacing: -1, Gate: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "label":
						if mapping.Label == -1 {
							mapping.Label = i
						}
					case "length":
						if mapping.Length == -1 {
							mapping.Length = i
						}
					case "spacing":
						if mapping.Spacing == -1 {
							mapping.Spacing = i
						}
					case "gate":
						if mapping.Gate == -1 {
							mapping.Gate = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Positional fallback: Label, Length, Spacing, Gate
		return ColumnMapping{Label: 0, Length: 1, Spacing: 2, Gate: 3}, false
	}
	return mapping, true
}

// parseSpacing converts a spacing mode string to the even-spacing flag.
// Returns the flag and whether the string was recognized.
func parseSpacing(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "even", "equal", "e", "yes", "y", "true", "1":
		return true, true
	case "", "fixed", "full", "f", "no", "n", "false", "0":
		return false, true
	default:
		return false, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseRow extracts a run (and optionally its gate) from a row.
// Returns any error message and any warning message alongside.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, startX float64) (model.Line, *model.Gate, string, string) {
	lengthStr := getCell(row, mapping.Length)
	if lengthStr == "" {
		return model.Line{}, nil, fmt.Sprintf("%s: Missing length value", rowLabel), ""
	}
	length, err := strconv.ParseFloat(lengthStr, 64)
	if err != nil {
		return model.Line{}, nil, fmt.Sprintf("%s: Invalid length '%s'", rowLabel, lengthStr), ""
	}
	if length <= 0 {
		return model.Line{}, nil, fmt.Sprintf("%s: Length must be positive", rowLabel), ""
	}

	line := model.NewLine(geom.Pt(startX, 0), geom.Pt(startX+length, 0))

	var warning string
	if spacingStr := getCell(row, mapping.Spacing); spacingStr != "" {
		even, ok := parseSpacing(spacingStr)
		if ok {
			line.EvenSpacing = even
		} else {
			warning = fmt.Sprintf("%s: Unknown spacing mode '%s', defaulting to fixed", rowLabel, spacingStr)
		}
	}

	var gate *model.Gate
	if gateStr := getCell(row, mapping.Gate); gateStr != "" && !strings.EqualFold(gateStr, "none") {
		if _, ok := model.CatalogType(gateStr); ok {
			g := model.NewGate(gateStr, line.ID)
			line.GateID = g.ID
			gate = &g
		} else {
			warning = fmt.Sprintf("%s: Unknown gate type '%s', skipping gate", rowLabel, gateStr)
		}
	}

	return line, gate, "", warning
}

// ImportCSV imports fence runs from a CSV file. It automatically detects
// the delimiter and maps columns by header names. Supports comma,
// semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports fence runs from a CSV reader with a known
// delimiter. Useful for testing or piped input.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports fence runs from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// runGapMM separates imported runs so consecutive endpoints are not
// coincident, which would fuse them into one topological vertex.
const runGapMM = 500.0

// importFromRows is the shared import logic for CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
		if mapping.Length == -1 {
			result.Errors = append(result.Errors, "Required column not found in header: Length")
			return result
		}
	} else if len(rows[0]) >= 2 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			// Unrecognized header: skip it but keep positional mapping.
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	startX := 0.0
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		line, gate, errMsg, warning := parseRow(row, mapping, rowLabel, startX)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Lines = append(result.Lines, line)
		if gate != nil {
			result.Gates = append(result.Gates, *gate)
		}
		startX += line.LengthMM + runGapMM
	}

	if len(result.Lines) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
	}
	return result
}
