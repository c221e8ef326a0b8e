package storage

import (
	"fmt"
	"strconv"

	"github.com/quasilyte/gdata/v2"
)

const (
	gdataObject   = "scores"
	gdataProperty = "best"
)

// GdataStore keeps the best score in the platform's per-user app data
// directory. It has no run history.
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdata opens the app data store for appName.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open app data: %w", err)
	}
	return &GdataStore{m: m}, nil
}

// LoadBestScore reads the stored best score.
func (g *GdataStore) LoadBestScore() (int, bool, error) {
	if !g.m.ObjectPropExists(gdataObject, gdataProperty) {
		return 0, false, nil
	}
	data, err := g.m.LoadObjectProp(gdataObject, gdataProperty)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot load best score: %w", err)
	}
	return ParseScore(string(data)), true, nil
}

// SaveBestScore stores the best score.
func (g *GdataStore) SaveBestScore(score int) error {
	if err := g.m.SaveObjectProp(gdataObject, gdataProperty, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}
