package errors

import "encoding/json"

// Report is the JSON-serializable rendering of an *Error.
type Report struct {
	Schema  string `json:"schema"` // always "bcl.error/v1"
	Kind    string `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// NewReport renders e as a Report.
func NewReport(e *Error) *Report {
	r := &Report{
		Schema:  "bcl.error/v1",
		Kind:    string(e.Kind),
		Code:    e.Code,
		Message: e.Message,
	}
	if !e.Loc.IsZero() {
		r.File, r.Line, r.Column = e.Loc.File, e.Loc.Line, e.Loc.Column
	}
	return r
}

// ToJSON renders the report, pretty-printed unless compact is requested.
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
