package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// LoadJSON reads one data file from dir into v. A missing file is not an
// error: v is left untouched and ok is false, so optional collections
// degrade to empty.
func LoadJSON(dir string, name string, v any) (ok bool, err error) {
	path := filepath.Join(dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Infof("data file %s not found, continuing without it", path)
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}
