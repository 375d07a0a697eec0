// Package logging writes per-generation training statistics to the console
// and to CSV and JSONL artifacts.
package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// Logger handles all training output.
type Logger struct {
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	initialized bool
}

// NewLogger creates a logger writing to the given paths, creating parent
// directories as needed.
func NewLogger(csvPath, jsonPath string) (*Logger, error) {
	l := &Logger{
		csvPath:  csvPath,
		jsonPath: jsonPath,
	}

	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}

	return l, nil
}

// Init opens the log files and writes the CSV header.
func (l *Logger) Init() error {
	var err error

	l.csvFile, err = os.Create(l.csvPath)
	if err != nil {
		return err
	}
	l.csvWriter = csv.NewWriter(l.csvFile)

	header := []string{"generation", "best_fitness", "mean_fitness", "std_fitness", "completed"}
	if err := l.csvWriter.Write(header); err != nil {
		return err
	}

	l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	l.initialized = true
	return nil
}

// Close closes all log files.
func (l *Logger) Close() {
	if l.csvWriter != nil {
		l.csvWriter.Flush()
	}
	if l.csvFile != nil {
		l.csvFile.Close()
	}
	if l.jsonFile != nil {
		l.jsonFile.Close()
	}
}

// GenerationSummary holds per-generation statistics.
type GenerationSummary struct {
	Generation  int     `json:"generation"`
	BestFitness float64 `json:"best_fitness"`
	MeanFitness float64 `json:"mean_fitness"`
	StdFitness  float64 `json:"std_fitness"`
	Completed   int     `json:"completed"`
}

// Summarize computes the statistics of one generation's raw fitness values.
func Summarize(gen int, fitness []float64, completed int) GenerationSummary {
	s := GenerationSummary{
		Generation: gen,
		Completed:  completed,
	}
	if len(fitness) == 0 {
		return s
	}

	for _, f := range fitness {
		if f > s.BestFitness {
			s.BestFitness = f
		}
	}
	s.MeanFitness = stat.Mean(fitness, nil)
	if len(fitness) > 1 {
		s.StdFitness = stat.StdDev(fitness, nil)
	}
	return s
}

// LogGeneration writes a generation summary to the CSV and JSONL files.
func (l *Logger) LogGeneration(s GenerationSummary) {
	if !l.initialized {
		return
	}

	row := []string{
		strconv.Itoa(s.Generation),
		strconv.FormatFloat(s.BestFitness, 'g', 6, 64),
		strconv.FormatFloat(s.MeanFitness, 'g', 6, 64),
		strconv.FormatFloat(s.StdFitness, 'g', 6, 64),
		strconv.Itoa(s.Completed),
	}
	l.csvWriter.Write(row)
	l.csvWriter.Flush()

	jsonLine, _ := json.Marshal(s)
	l.jsonFile.WriteString(string(jsonLine) + "\n")
}

// Print writes a one-line summary to the console.
func (l *Logger) Print(s GenerationSummary) {
	fmt.Printf("Gen %4d | Best: %10.3g | Mean: %10.3g | Std: %10.3g | Completed: %d\n",
		s.Generation, s.BestFitness, s.MeanFitness, s.StdFitness, s.Completed)
}
