package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/ljeopp/internal/analysis"
	"github.com/san-kum/ljeopp/internal/pair"
)

type CurveData struct {
	Source      string           `json:"source"`
	I           int              `json:"i"`
	J           int              `json:"j"`
	Coeffs      pair.Derived     `json:"coeffs"`
	Points      []analysis.Point `json:"points"`
	WaveNumber  float64          `json:"wavenumber,omitempty"`
	MaxForceErr float64          `json:"max_force_rel_err,omitempty"`
}

func ExportJSON(path string, data *CurveData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return Encode(file, data)
}

func ExportJSONStdout(data *CurveData) error {
	return Encode(os.Stdout, data)
}

func Encode(w io.Writer, data *CurveData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ImportJSON(path string) (*CurveData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var data CurveData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, err
	}
	return &data, nil
}
