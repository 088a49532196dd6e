package models

import (
	"database/sql/driver"
	"encoding/json"
)

// AnalysisReport summarizes the completeness of a petition
type AnalysisReport struct {
	HasAddressing  bool `json:"has_addressing"`
	HasFacts       bool `json:"has_facts"`
	HasLegalBasis  bool `json:"has_legal_basis"`
	HasRequests    bool `json:"has_requests"`
	HasSignature   bool `json:"has_signature"`
	HasOAB         bool `json:"has_oab"`
	WordCount      int  `json:"word_count"`
	ParagraphCount int  `json:"paragraph_count"`
}

// Complete reports whether every structural marker was found
func (r AnalysisReport) Complete() bool {
	return r.HasAddressing && r.HasFacts && r.HasLegalBasis && r.HasRequests && r.HasSignature && r.HasOAB
}

// Value implements driver.Valuer for JSONB
func (r AnalysisReport) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner for JSONB
func (r *AnalysisReport) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*r = AnalysisReport{}
		return nil
	}

	if len(bytes) == 0 {
		*r = AnalysisReport{}
		return nil
	}

	return json.Unmarshal(bytes, r)
}
