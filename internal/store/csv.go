// Package store persists one flattened record per handled request to
// append-only CSV files, one file per request category.
package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RecipeRecord is the flattened log projection of one recipe generation.
type RecipeRecord struct {
	RecordID           string
	Timestamp          string
	InputIngredients   string
	DietaryPreferences string
	RecipeName         string
	Calories           int
	EcoScore           string
	HealthScore        string
	PrepTime           string
	Difficulty         string
}

// MenuAnalysisRecord is the flattened log projection of one menu analysis.
type MenuAnalysisRecord struct {
	RecordID             string
	Timestamp            string
	RestaurantName       string
	MenuItems            string
	OverallEcoScore      string
	RecommendationsCount int
}

// Store is the log-append capability handlers depend on. Appends are
// best-effort from the caller's point of view: a failed append never changes
// the caller-visible response.
type Store interface {
	AppendRecipe(record RecipeRecord) error
	AppendMenuAnalysis(record MenuAnalysisRecord) error
	RecentRecipes(limit int) ([]RecipeRecord, error)
	RecentMenuAnalyses(limit int) ([]MenuAnalysisRecord, error)
}

// Schemas are fixed up front rather than derived from the first written
// record, so a later record can never shift columns.
var (
	recipeHeader = []string{
		"record_id", "timestamp", "type", "input_ingredients", "dietary_preferences",
		"recipe_name", "calories", "eco_score", "health_score", "prep_time", "difficulty",
	}
	menuAnalysisHeader = []string{
		"record_id", "timestamp", "type", "restaurant_name", "menu_items",
		"overall_eco_score", "recommendations_count",
	}
)

// CSVStore writes append-only CSV logs under a data directory. Each append
// opens the file with O_APPEND and writes one row while holding the
// category's mutex, so concurrent requests can never lose each other's rows.
type CSVStore struct {
	recipesPath      string
	menuAnalysisPath string

	recipesMu      sync.Mutex
	menuAnalysisMu sync.Mutex
}

// NewCSVStore creates the data directory if needed and returns a store
// writing recipes.csv and menu_analysis.csv inside it.
func NewCSVStore(dataDir string) (*CSVStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &CSVStore{
		recipesPath:      filepath.Join(dataDir, "recipes.csv"),
		menuAnalysisPath: filepath.Join(dataDir, "menu_analysis.csv"),
	}, nil
}

// AppendRecipe appends one recipe generation record. RecordID and Timestamp
// are filled in here.
func (s *CSVStore) AppendRecipe(record RecipeRecord) error {
	record.RecordID = uuid.New().String()
	record.Timestamp = time.Now().Format(time.RFC3339)

	row := []string{
		record.RecordID,
		record.Timestamp,
		"recipe_generation",
		record.InputIngredients,
		record.DietaryPreferences,
		record.RecipeName,
		strconv.Itoa(record.Calories),
		record.EcoScore,
		record.HealthScore,
		record.PrepTime,
		record.Difficulty,
	}
	return s.appendRow(s.recipesPath, &s.recipesMu, recipeHeader, row)
}

// AppendMenuAnalysis appends one menu analysis record. RecordID and Timestamp
// are filled in here.
func (s *CSVStore) AppendMenuAnalysis(record MenuAnalysisRecord) error {
	record.RecordID = uuid.New().String()
	record.Timestamp = time.Now().Format(time.RFC3339)

	row := []string{
		record.RecordID,
		record.Timestamp,
		"menu_analysis",
		record.RestaurantName,
		record.MenuItems,
		record.OverallEcoScore,
		strconv.Itoa(record.RecommendationsCount),
	}
	return s.appendRow(s.menuAnalysisPath, &s.menuAnalysisMu, menuAnalysisHeader, row)
}

// appendRow serializes appends per file. The header is written exactly once,
// when the file is created empty.
func (s *CSVStore) appendRow(path string, mu *sync.Mutex, header, row []string) error {
	mu.Lock()
	defer mu.Unlock()

	needHeader := false
	if info, err := os.Stat(path); os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		needHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	w.Flush()
	return w.Error()
}

// RecentRecipes returns up to limit recipe records, newest first.
func (s *CSVStore) RecentRecipes(limit int) ([]RecipeRecord, error) {
	s.recipesMu.Lock()
	rows, err := readRows(s.recipesPath, len(recipeHeader))
	s.recipesMu.Unlock()
	if err != nil {
		return nil, err
	}

	records := make([]RecipeRecord, 0, len(rows))
	for i := len(rows) - 1; i >= 0 && len(records) < limit; i-- {
		row := rows[i]
		calories, err := strconv.Atoi(row[6])
		if err != nil {
			// The store only ever writes integers here, a bad value means
			// the row was corrupted outside the service.
			continue
		}
		records = append(records, RecipeRecord{
			RecordID:           row[0],
			Timestamp:          row[1],
			InputIngredients:   row[3],
			DietaryPreferences: row[4],
			RecipeName:         row[5],
			Calories:           calories,
			EcoScore:           row[7],
			HealthScore:        row[8],
			PrepTime:           row[9],
			Difficulty:         row[10],
		})
	}
	return records, nil
}

// RecentMenuAnalyses returns up to limit menu analysis records, newest first.
func (s *CSVStore) RecentMenuAnalyses(limit int) ([]MenuAnalysisRecord, error) {
	s.menuAnalysisMu.Lock()
	rows, err := readRows(s.menuAnalysisPath, len(menuAnalysisHeader))
	s.menuAnalysisMu.Unlock()
	if err != nil {
		return nil, err
	}

	records := make([]MenuAnalysisRecord, 0, len(rows))
	for i := len(rows) - 1; i >= 0 && len(records) < limit; i-- {
		row := rows[i]
		count, err := strconv.Atoi(row[6])
		if err != nil {
			continue
		}
		records = append(records, MenuAnalysisRecord{
			RecordID:             row[0],
			Timestamp:            row[1],
			RestaurantName:       row[3],
			MenuItems:            row[4],
			OverallEcoScore:      row[5],
			RecommendationsCount: count,
		})
	}
	return records, nil
}

// readRows reads all data rows of a log file, skipping the header. A missing
// file means no records yet.
func readRows(path string, fields int) ([][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = fields
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(all) <= 1 {
		return nil, nil
	}
	return all[1:], nil
}
