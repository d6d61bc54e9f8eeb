package categorizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"yashubustudio/policymatch/internal/logging"
)

// NeutralCode is the CMP code for "no meaningful category applies".
const NeutralCode = "000"

// Format selects how a Report is rendered.
type Format string

const (
	// FormatJSON renders the report as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders the report as YAML.
	FormatYAML Format = "yaml"
	// FormatCSV renders one row per motion.
	FormatCSV Format = "csv"
)

// ReferenceCode is a policy code together with the manifesto text annotated with it.
type ReferenceCode struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Example is a single annotated motion sentence.
type Example struct {
	Fields []string `json:"fields" yaml:"fields"`
	Code   string   `json:"code" yaml:"code"`
}

// Motion groups the annotated examples sharing a motion id, in file order.
type Motion struct {
	ID       string    `json:"id" yaml:"id"`
	Examples []Example `json:"examples" yaml:"examples"`
}

// Title returns the first field of the first example.
func (m Motion) Title() string {
	if len(m.Examples) == 0 || len(m.Examples[0].Fields) == 0 {
		return ""
	}
	return m.Examples[0].Fields[0]
}

// Candidate is a ranked reference code for one sentence.
type Candidate struct {
	Code  string  `json:"code" yaml:"code"`
	Name  string  `json:"name" yaml:"name"`
	Score float64 `json:"score" yaml:"score"`
}

// SentenceResult holds the prediction for a single example.
type SentenceResult struct {
	Text       string      `json:"text" yaml:"text"`
	Annotated  string      `json:"annotated" yaml:"annotated"`
	Predicted  string      `json:"predicted" yaml:"predicted"`
	Match      bool        `json:"match" yaml:"match"`
	Candidates []Candidate `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

// MotionResult holds the aggregated prediction for a motion.
type MotionResult struct {
	ID        string           `json:"id" yaml:"id"`
	Title     string           `json:"title" yaml:"title"`
	Gold      string           `json:"gold" yaml:"gold"`
	Predicted string           `json:"predicted" yaml:"predicted"`
	Match     bool             `json:"match" yaml:"match"`
	Sentences []SentenceResult `json:"sentences,omitempty" yaml:"sentences,omitempty"`
}

// Rate is an agreement ratio. Undefined is set instead of dividing by zero.
type Rate struct {
	Correct   int     `json:"correct" yaml:"correct"`
	Total     int     `json:"total" yaml:"total"`
	Percent   float64 `json:"percent" yaml:"percent"`
	Undefined bool    `json:"undefined,omitempty" yaml:"undefined,omitempty"`
}

// NewRate computes correct/total as a percentage.
func NewRate(correct, total int) Rate {
	if total == 0 {
		return Rate{Correct: correct, Total: total, Undefined: true}
	}
	return Rate{
		Correct: correct,
		Total:   total,
		Percent: float64(correct) / float64(total) * 100,
	}
}

func (r Rate) String() string {
	if r.Undefined {
		return fmt.Sprintf("%d/%d (undefined)", r.Correct, r.Total)
	}
	return fmt.Sprintf("%d/%d (%.2f%%)", r.Correct, r.Total, r.Percent)
}

// Report is the outcome of one matching run.
type Report struct {
	Motions       []MotionResult `json:"motions" yaml:"motions"`
	MotionLevel   Rate           `json:"motionLevel" yaml:"motionLevel"`
	SentenceLevel Rate           `json:"sentenceLevel" yaml:"sentenceLevel"`
}

// Summary returns the two-line agreement summary.
func (r Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "motion-level agreement: %s\n", r.MotionLevel)
	fmt.Fprintf(&b, "sentence-level agreement: %s\n", r.SentenceLevel)
	return b.String()
}

// Config aggregates runtime settings persisted to config.json or config.yaml.
type Config struct {
	TopK           int              `json:"topK" yaml:"topK" mapstructure:"topK"`
	Workers        int              `json:"workers" yaml:"workers" mapstructure:"workers"`
	LemmaCacheSize int              `json:"lemmaCacheSize" yaml:"lemmaCacheSize" mapstructure:"lemmaCacheSize"`
	ReferencePath  string           `json:"referencePath" yaml:"referencePath" mapstructure:"referencePath"`
	MotionsPath    string           `json:"motionsPath" yaml:"motionsPath" mapstructure:"motionsPath"`
	CodesPath      string           `json:"codesPath" yaml:"codesPath" mapstructure:"codesPath"`
	OutputPath     string           `json:"outputPath" yaml:"outputPath" mapstructure:"outputPath"`
	Format         Format           `json:"format" yaml:"format" mapstructure:"format"`
	Columns        ColumnCandidates `json:"columns" yaml:"columns" mapstructure:"columns"`
	Log            logging.Config   `json:"log" yaml:"log" mapstructure:"log"`
}

// Clone creates a deep copy of the configuration so callers can mutate safely.
func (c Config) Clone() Config {
	buf, _ := json.Marshal(c)
	var out Config
	_ = json.Unmarshal(buf, &out)
	return out
}

// ApplyDefaults populates zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.TopK <= 0 {
		c.TopK = 5
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.LemmaCacheSize <= 0 {
		c.LemmaCacheSize = 4096
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}
	c.Format = Format(strings.ToLower(string(c.Format)))
	c.Columns = c.Columns.withDefaults()
	c.Log.ApplyDefaults()
}

// Validate reports settings that cannot be defaulted.
func (c Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML, FormatCSV:
	default:
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	if c.TopK <= 0 {
		return errors.New("topK must be positive")
	}
	return nil
}
