package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dom/wardle/internal/domain"
	"gorm.io/datatypes"
)

// StoredState is one key/value row holding a serialized game state.
type StoredState struct {
	Key       string         `gorm:"primaryKey"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (StoredState) TableName() string {
	return "stored_states"
}

// ChampionRecord is the cached form of a catalog champion. Position keeps
// the catalog order, which answer selection depends on.
type ChampionRecord struct {
	ID           string         `gorm:"primaryKey"`        // e.g., "103"
	Position     int            `gorm:"not null;index"`    // index in the fetched catalog
	Name         string         `gorm:"not null;index"`    // Display name
	Gender       string         `gorm:"not null"`          // Male, Female
	Positions    datatypes.JSON `gorm:"type:jsonb"`        // ["Mid", "Support"]
	Species      datatypes.JSON `gorm:"type:jsonb"`        // ["Vastaya"]
	Resource     string         `gorm:"not null"`          // Mana, Energy...
	RangeType    string         `gorm:"not null"`          // Melee, Ranged
	Regions      datatypes.JSON `gorm:"type:jsonb"`        // ["Ionia"]
	ReleaseYear  int            `gorm:"not null"`          // 2011
	Quotes       datatypes.JSON `gorm:"type:jsonb"`        // ordered
	Abilities    datatypes.JSON `gorm:"type:jsonb"`        // {"Q": {"name": ..., "icon": ...}}
	SplashArt    string         `gorm:"column:splash_art"` // Full URL
	LastSyncedAt time.Time
}

func (ChampionRecord) TableName() string {
	return "champions"
}

func newChampionRecord(c *domain.Champion, position int, syncedAt time.Time) (*ChampionRecord, error) {
	rec := &ChampionRecord{
		ID:           c.ID,
		Position:     position,
		Name:         c.Name,
		Gender:       string(c.Gender),
		Resource:     c.Resource,
		RangeType:    string(c.RangeType),
		ReleaseYear:  c.ReleaseYear,
		SplashArt:    c.SplashArt,
		LastSyncedAt: syncedAt,
	}

	fields := []struct {
		dst *datatypes.JSON
		src any
	}{
		{&rec.Positions, c.Positions},
		{&rec.Species, c.Species},
		{&rec.Regions, c.Regions},
		{&rec.Quotes, c.Quotes},
		{&rec.Abilities, c.Abilities},
	}
	for _, f := range fields {
		data, err := json.Marshal(f.src)
		if err != nil {
			return nil, fmt.Errorf("encode champion %s: %w", c.ID, err)
		}
		*f.dst = datatypes.JSON(data)
	}
	return rec, nil
}

func (r *ChampionRecord) toDomain() (*domain.Champion, error) {
	c := &domain.Champion{
		ID:          r.ID,
		Name:        r.Name,
		Gender:      domain.Gender(r.Gender),
		Resource:    r.Resource,
		RangeType:   domain.RangeType(r.RangeType),
		ReleaseYear: r.ReleaseYear,
		SplashArt:   r.SplashArt,
	}

	fields := []struct {
		src datatypes.JSON
		dst any
	}{
		{r.Positions, &c.Positions},
		{r.Species, &c.Species},
		{r.Regions, &c.Regions},
		{r.Quotes, &c.Quotes},
		{r.Abilities, &c.Abilities},
	}
	for _, f := range fields {
		if len(f.src) == 0 {
			continue
		}
		if err := json.Unmarshal(f.src, f.dst); err != nil {
			return nil, fmt.Errorf("decode champion %s: %w", r.ID, err)
		}
	}
	return c, nil
}
