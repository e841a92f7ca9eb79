package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// EnvAPIKey is the environment variable consulted when no profile
// provides a credential.
const EnvAPIKey = "AA_API_KEY"

// ErrNoCredential means no profile and no environment variable supplied
// an API key.
var ErrNoCredential = errors.New(
	"no API key configured. Run 'which-llm profile create <name> --api-key <key>' or set " + EnvAPIKey)

// ErrNotFound means the named profile does not exist.
var ErrNotFound = errors.New("profile not found")

// Profile is one stored credential.
type Profile struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	APIKey    string `gorm:"not null"`
	IsDefault bool
	CreatedAt time.Time
}

// MaskedKey renders the API key safe for display.
func (p Profile) MaskedKey() string {
	if len(p.APIKey) <= 8 {
		return "****"
	}
	return p.APIKey[:4] + "..." + p.APIKey[len(p.APIKey)-4:]
}

// Store persists profiles in a sqlite database under the config directory.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the profile database in dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("profile: create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, "profiles.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("profile: open %s: %w", path, err)
	}

	if err := db.AutoMigrate(&Profile{}); err != nil {
		return nil, fmt.Errorf("profile: migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Create stores a new profile. The first profile created becomes the
// default. An empty apiKey falls back to the environment variable.
func (s *Store) Create(name, apiKey string) (Profile, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return Profile{}, fmt.Errorf("no API key given and %s is not set", EnvAPIKey)
	}

	var count int64
	if err := s.db.Model(&Profile{}).Count(&count).Error; err != nil {
		return Profile{}, fmt.Errorf("profile: count: %w", err)
	}

	p := Profile{
		ID:        uuid.NewString(),
		Name:      name,
		APIKey:    apiKey,
		IsDefault: count == 0,
	}
	if err := s.db.Create(&p).Error; err != nil {
		return Profile{}, fmt.Errorf("profile: create %s: %w", name, err)
	}
	return p, nil
}

// List returns all profiles ordered by name.
func (s *Store) List() ([]Profile, error) {
	var profiles []Profile
	if err := s.db.Order("name").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("profile: list: %w", err)
	}
	return profiles, nil
}

// Get returns the named profile.
func (s *Store) Get(name string) (Profile, error) {
	var p Profile
	err := s.db.Where("name = ?", name).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Profile{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("profile: get %s: %w", name, err)
	}
	return p, nil
}

// SetDefault marks the named profile as default, clearing any previous one.
func (s *Store) SetDefault(name string) error {
	p, err := s.Get(name)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Profile{}).Where("is_default").Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&p).Update("is_default", true).Error
	})
}

// Delete removes the named profile.
func (s *Store) Delete(name string) error {
	res := s.db.Where("name = ?", name).Delete(&Profile{})
	if res.Error != nil {
		return fmt.Errorf("profile: delete %s: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// Default returns the default profile, if any.
func (s *Store) Default() (Profile, error) {
	var p Profile
	err := s.db.Where("is_default").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("profile: default: %w", err)
	}
	return p, nil
}

// ResolveAPIKey resolves the credential for an invocation: the named
// profile if given, else the default profile, else the environment.
func (s *Store) ResolveAPIKey(profileName string) (string, error) {
	if profileName != "" {
		p, err := s.Get(profileName)
		if err != nil {
			return "", err
		}
		return p.APIKey, nil
	}

	if p, err := s.Default(); err == nil {
		return p.APIKey, nil
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}

	return "", ErrNoCredential
}
