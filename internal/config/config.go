package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"github.com/qepting91/complaint-harvester/internal/domain"
	"github.com/qepting91/complaint-harvester/internal/harvest"
	"github.com/titanous/json5"
)

// File is the on-disk layout of config.json5. Durations are in milliseconds.
type File struct {
	BaseURL       string `json:"base_url"`
	ReadySelector string `json:"ready_selector"`
	Selectors     struct {
		Card     string `json:"card"`
		Body     string `json:"body"`
		Author   string `json:"author"`
		PostedAt string `json:"posted_at"`
	} `json:"selectors"`
	Viewport struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"viewport"`
	UserAgent           string `json:"user_agent"`
	Headful             bool   `json:"headful"`
	NavigationTimeoutMs int    `json:"navigation_timeout_ms"`
	InitialWaitMs       int    `json:"initial_wait_ms"`
	SettleIntervalMs    int    `json:"settle_interval_ms"`
	StagnationThreshold int    `json:"stagnation_threshold"`
	// NavigationsPerMinute paces browser launches in batch mode.
	NavigationsPerMinute int `json:"navigations_per_minute"`
}

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

// ReadConfig decodes name (with extension) and then <name>.local.<ext> over base.
// Keys absent from both files keep their value in base, while keys that are present
// always win, zero values included.
// It returns os.ErrNotExist when neither file exists.
func ReadConfig[T any](name string, base T) (T, error) {
	out := base
	allNotFound := true

	dirname := filepath.Dir(name)
	prefixname, ext := splitExt(filepath.Base(name))
	localFilepath := filepath.Join(dirname, fmt.Sprintf("%s.local.%s", prefixname, ext))

	for _, path := range []string{name, localFilepath} {
		raw, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return out, err
		}
		if err := json5.Unmarshal(raw, &out); err != nil {
			return out, fmt.Errorf("parse %s: %w", path, err)
		}
		if path == localFilepath {
			slog.Info("merging config with local overrides", "local", localFilepath)
		}
		allNotFound = false
	}

	if allNotFound {
		return out, os.ErrNotExist
	}
	return out, nil
}

// Defaults is the File equivalent of harvest.DefaultConfig.
func Defaults() File {
	d := harvest.DefaultConfig()
	var f File
	f.BaseURL = d.BaseURL
	f.ReadySelector = d.ReadySelector
	f.Selectors.Card = d.Selectors.Card
	f.Selectors.Body = d.Selectors.Body
	f.Selectors.Author = d.Selectors.Author
	f.Selectors.PostedAt = d.Selectors.PostedAt
	f.Viewport.Width = d.Viewport.Width
	f.Viewport.Height = d.Viewport.Height
	f.UserAgent = d.UserAgent
	f.NavigationTimeoutMs = int(d.NavigationTimeout / time.Millisecond)
	f.InitialWaitMs = int(d.InitialWait / time.Millisecond)
	f.SettleIntervalMs = int(d.SettleInterval / time.Millisecond)
	f.StagnationThreshold = d.StagnationThreshold
	f.NavigationsPerMinute = 6
	return f
}

// Load reads path over the defaults. A missing file is not an error.
// A zero viewport dimension falls back to the default one.
func Load(path string) (File, error) {
	defaults := Defaults()
	out, err := ReadConfig(path, defaults)
	if os.IsNotExist(err) {
		return defaults, nil
	}
	if err != nil {
		return out, err
	}
	if err := mergo.Merge(&out.Viewport, defaults.Viewport); err != nil {
		return out, err
	}
	return out, out.Validate()
}

// Validate rejects settings the harvest loop cannot run with.
func (f File) Validate() error {
	switch {
	case f.BaseURL == "":
		return fmt.Errorf("config: base_url is required")
	case f.Selectors.Card == "" || f.Selectors.Body == "":
		return fmt.Errorf("config: card and body selectors are required")
	case f.StagnationThreshold <= 0:
		return fmt.Errorf("config: stagnation_threshold must be positive")
	case f.NavigationTimeoutMs <= 0:
		return fmt.Errorf("config: navigation_timeout_ms must be positive")
	}
	return nil
}

// Harvest converts the file into the explicit controller configuration.
func (f File) Harvest() harvest.Config {
	return harvest.Config{
		BaseURL:       f.BaseURL,
		ReadySelector: f.ReadySelector,
		Selectors: harvest.Selectors{
			Card:     f.Selectors.Card,
			Body:     f.Selectors.Body,
			Author:   f.Selectors.Author,
			PostedAt: f.Selectors.PostedAt,
		},
		Viewport:            domain.Viewport{Width: f.Viewport.Width, Height: f.Viewport.Height},
		UserAgent:           f.UserAgent,
		NavigationTimeout:   time.Duration(f.NavigationTimeoutMs) * time.Millisecond,
		InitialWait:         time.Duration(f.InitialWaitMs) * time.Millisecond,
		SettleInterval:      time.Duration(f.SettleIntervalMs) * time.Millisecond,
		StagnationThreshold: f.StagnationThreshold,
	}
}
