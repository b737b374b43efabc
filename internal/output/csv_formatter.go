package output

// CSVFormatter produces the semicolon-delimited export document.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	if report.Empty() {
		return nil, ErrEmptyReport
	}
	return []byte(Encode(report.ExportRows())), nil
}
