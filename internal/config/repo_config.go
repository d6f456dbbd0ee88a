package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// FileName is the name of the config file inside the repository's common
// git directory
const FileName = ".gitflow_config"

// Defaults of the branching model
const (
	DefaultRemote            = "origin"
	DefaultMainBranch        = "main"
	DefaultDevelopBranch     = "develop"
	DefaultChangelogPath     = "CHANGELOG.md"
	DefaultManifest          = "package.json"
	DefaultRecentCommitCount = 5
)

// RepoConfig represents the repository configuration as stored on disk
type RepoConfig struct {
	Remote            *string   `json:"remote,omitempty"`
	MainBranch        *string   `json:"mainBranch,omitempty"`
	DevelopBranch     *string   `json:"developBranch,omitempty"`
	ChangelogPath     *string   `json:"changelogPath,omitempty"`
	Manifests         *[]string `json:"manifests,omitempty"`
	RecentCommitCount *int      `json:"recentCommitCount,omitempty"`
}

// Settings is a RepoConfig with every default applied
type Settings struct {
	Remote            string
	MainBranch        string
	DevelopBranch     string
	ChangelogPath     string
	Manifests         []string
	RecentCommitCount int
}

// DefaultSettings returns the settings used when no config file exists
func DefaultSettings() Settings {
	return Settings{
		Remote:            DefaultRemote,
		MainBranch:        DefaultMainBranch,
		DevelopBranch:     DefaultDevelopBranch,
		ChangelogPath:     DefaultChangelogPath,
		Manifests:         []string{DefaultManifest},
		RecentCommitCount: DefaultRecentCommitCount,
	}
}

func configPath(gitDir string) string {
	return filepath.Join(gitDir, FileName)
}

// GetRepoConfig reads the repository configuration from gitDir. A missing
// file yields an empty config.
func GetRepoConfig(gitDir string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(gitDir))
	if errors.Is(err, fs.ErrNotExist) {
		return &RepoConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}
	return &config, nil
}

// SaveRepoConfig writes the repository configuration into gitDir
func SaveRepoConfig(gitDir string, config *RepoConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath(gitDir), data, 0o600); err != nil {
		return fmt.Errorf("failed to write repo config: %w", err)
	}
	return nil
}

// Settings applies defaults to every unset field
func (c *RepoConfig) Settings() Settings {
	s := DefaultSettings()
	if c == nil {
		return s
	}
	setString(&s.Remote, c.Remote)
	setString(&s.MainBranch, c.MainBranch)
	setString(&s.DevelopBranch, c.DevelopBranch)
	setString(&s.ChangelogPath, c.ChangelogPath)
	if c.Manifests != nil {
		s.Manifests = append([]string{}, (*c.Manifests)...)
	}
	if c.RecentCommitCount != nil && *c.RecentCommitCount > 0 {
		s.RecentCommitCount = *c.RecentCommitCount
	}
	return s
}

func setString(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

// Load reads the config stored in gitDir and applies defaults
func Load(gitDir string) (Settings, error) {
	c, err := GetRepoConfig(gitDir)
	if err != nil {
		return Settings{}, err
	}
	return c.Settings(), nil
}
