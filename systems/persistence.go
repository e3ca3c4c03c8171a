package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted bool `json:"muted"`
}

// SavedScores holds the best score per difficulty, keyed by preset name.
type SavedScores struct {
	Best map[string]int `json:"best"`
}

// Record stores a finished score if it beats the saved best for that
// difficulty. Returns true on a new best.
func (s *SavedScores) Record(name string, score int) bool {
	if s.Best == nil {
		s.Best = make(map[string]int)
	}
	if score <= s.Best[name] {
		return false
	}
	s.Best[name] = score
	return true
}

// BestFor returns the saved best for a difficulty, zero when unplayed.
func (s *SavedScores) BestFor(name string) int {
	if s.Best == nil {
		return 0
	}
	return s.Best[name]
}

var gdataManager *gdata.Manager
var gdataInitialized bool
var cachedScores *SavedScores

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "mario-gw",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettingsGlobal applies settings at startup, before any scene
// exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetMuted(saved.Muted)
}

// loadScores reads the score table once and keeps it in memory. Without a
// working manager the table still works for the running process.
func loadScores() *SavedScores {
	if cachedScores != nil {
		return cachedScores
	}
	cachedScores = &SavedScores{}

	if !gdataInitialized || gdataManager == nil {
		return cachedScores
	}

	data, err := gdataManager.LoadItem("scores")
	if err != nil {
		log.Printf("Warning: Could not load scores: %v", err)
		return cachedScores
	}
	if len(data) == 0 {
		return cachedScores
	}

	if err := json.Unmarshal(data, cachedScores); err != nil {
		log.Printf("Warning: Could not parse saved scores: %v", err)
	}
	return cachedScores
}

// BestScore returns the saved best for a difficulty.
func BestScore(diff *cfg.DifficultyConfig) int {
	return loadScores().BestFor(diff.Name)
}

// AllBestScores returns a copy of the score table for the lobby cards.
func AllBestScores() map[string]int {
	scores := loadScores()
	out := make(map[string]int, len(scores.Best))
	for name, best := range scores.Best {
		out[name] = best
	}
	return out
}

// SaveHighScore records a finished round, writing to disk only on a new
// best.
func SaveHighScore(diff *cfg.DifficultyConfig, score int) {
	scores := loadScores()
	if !scores.Record(diff.Name, score) {
		return
	}
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(scores)
	if err != nil {
		log.Printf("Warning: Could not serialize scores: %v", err)
		return
	}
	if err := gdataManager.SaveItem("scores", data); err != nil {
		log.Printf("Warning: Could not save scores: %v", err)
	}
}
