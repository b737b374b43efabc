package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used by WriteFormatted.
	Extension() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID  string
	Ext string
	F   func(*Report) ([]byte, error)
}

func (ff FormatterFunc) Format(r *Report) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                     { return ff.ID }
func (ff FormatterFunc) Extension() string                { return ff.Ext }

// nowFunc is overridden in tests for stable file names.
var nowFunc = time.Now

// WriteFormatted runs a formatter and writes its output into dir. CSV
// documents keep the calculator's export file name; other formats get a
// timestamped name.
func WriteFormatted(f Formatter, report *Report, dir string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	var name string
	if f.Extension() == "csv" {
		name = report.FileName()
	} else {
		name = fmt.Sprintf("%s_%s.%s", report.Kind, nowFunc().Format("20060102_150405"), f.Extension())
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
		name = filepath.Join(dir, name)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return name, nil
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	HTMLFormatter{},
	JSONFormatter{},
	MarkdownFormatter{},
	PDFFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// LookupFormatter is GetFormatterByName with an error for unknown names.
func LookupFormatter(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnsupportedFormat, name, strings.Join(AvailableFormatterNames(), ", "))
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"terminal":    "console",
	"text":        "console",
	"md":          "markdown",
	"excel":       "csv",
	"planilha":    "csv",
	"html-report": "html",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render formats a report by format name.
func Render(report *Report, format string) ([]byte, error) {
	if report.Empty() {
		return nil, ErrEmptyReport
	}
	f, err := LookupFormatter(format)
	if err != nil {
		return nil, err
	}
	return f.Format(report)
}

// GenerateReport formats a report by name and writes it into dir.
func GenerateReport(report *Report, format, dir string) (string, error) {
	if report.Empty() {
		return "", ErrEmptyReport
	}
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, report, dir)
}
