package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Calculator names accepted in run files.
const (
	CalculatorCompound   = "juros-compostos"
	CalculatorComparison = "poupanca-selic"
)

// RunConfig describes one calculator run read from a YAML file.
type RunConfig struct {
	Calculator string           `yaml:"calculator"`
	Compound   *CompoundInput   `yaml:"compound,omitempty"`
	Comparison *ComparisonInput `yaml:"comparison,omitempty"`
	Output     OutputConfig     `yaml:"output"`
}

// OutputConfig selects how the result is rendered.
type OutputConfig struct {
	Format  string `yaml:"format"`
	Dir     string `yaml:"dir"`
	PerPage int    `yaml:"per_page"`
	Page    int    `yaml:"page"`
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a run configuration from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*RunConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a run configuration.
func (ip *InputParser) Parse(data []byte) (*RunConfig, error) {
	var run RunConfig
	if err := yaml.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRun(&run); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &run, nil
}

// ValidateRun normalizes the calculator name and checks that its section is present.
func (ip *InputParser) ValidateRun(run *RunConfig) error {
	name, err := NormalizeCalculator(run.Calculator)
	if err != nil {
		return err
	}
	run.Calculator = name

	switch name {
	case CalculatorCompound:
		if run.Compound == nil {
			return fmt.Errorf("calculator %s requires a compound section", name)
		}
	case CalculatorComparison:
		if run.Comparison == nil {
			return fmt.Errorf("calculator %s requires a comparison section", name)
		}
	}

	if err := ip.validateOutput(&run.Output); err != nil {
		return fmt.Errorf("output validation failed: %w", err)
	}
	return nil
}

// validateOutput fills defaults for omitted output settings.
func (ip *InputParser) validateOutput(out *OutputConfig) error {
	if strings.TrimSpace(out.Format) == "" {
		out.Format = "console"
	}
	if out.PerPage < 0 {
		return fmt.Errorf("per_page cannot be negative")
	}
	if out.Page < 0 {
		return fmt.Errorf("page cannot be negative")
	}
	return nil
}

// NormalizeCalculator resolves the calculator name, accepting a few synonyms.
func NormalizeCalculator(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case CalculatorCompound, "compound", "juros":
		return CalculatorCompound, nil
	case CalculatorComparison, "comparison", "compare", "poupanca":
		return CalculatorComparison, nil
	case "":
		return "", fmt.Errorf("calculator is required")
	default:
		return "", fmt.Errorf("unknown calculator %q", name)
	}
}
