package data

import (
	"sync"

	"github.com/truthlens/truthlens/src/verifier/types"
	"gorm.io/gorm"
)

var (
	settingsCache map[string]string
	settingsMu    sync.RWMutex
)

// LoadSettings loads all settings from database into cache. A nil db leaves
// the cache empty so every lookup falls through to environment variables.
func LoadSettings(db *gorm.DB) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	settingsCache = make(map[string]string)

	if db == nil {
		return nil
	}

	var settings []types.Setting
	if err := db.Find(&settings).Error; err != nil {
		return err
	}

	for _, s := range settings {
		settingsCache[s.Name] = s.Value
	}

	return nil
}

// GetSetting retrieves a setting value by name.
func GetSetting(name string) string {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settingsCache[name]
}
