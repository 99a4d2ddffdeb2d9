package scoring

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AdviceRow holds the three band texts for one advice entry. The serialized
// field names are inherited from the advice spreadsheet's column headers,
// which is what the published corpus assets use.
type AdviceRow struct {
	Low  string `json:"Top Tips" yaml:"Top Tips"`
	Mid  string `json:"Unnamed: 2" yaml:"Unnamed: 2"`
	High string `json:"Unnamed: 3" yaml:"Unnamed: 3"`
}

// Corpus maps an advice channel ("GTM Tips", ...) to its ordered rows.
type Corpus map[string][]AdviceRow

// LoadCorpus reads an advice corpus asset from disk. The format is chosen by
// extension: .yaml/.yml are parsed as YAML, anything else as JSON.
func LoadCorpus(path string) (Corpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read advice corpus: %w", err)
	}
	var corpus Corpus
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &corpus); err != nil {
			return nil, fmt.Errorf("parse advice corpus %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &corpus); err != nil {
			return nil, fmt.Errorf("parse advice corpus %s: %w", path, err)
		}
	}
	return corpus, nil
}
