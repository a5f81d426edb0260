// Package project defines the project model and the icon catalog shown in
// the project carousel.
package project

import (
	"fmt"
	"regexp"
	"strings"
)

// Project groups todos under a name, an icon key, and an accent color.
// Identity is immutable once created; projects are never deleted.
type Project struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// AvailableIcons lists the icon keys a project may use.
func AvailableIcons() []string {
	return []string{
		"briefcase", "user", "heart", "folder", "star",
		"calendar", "clock-circle", "check-circle", "flag",
		"rocket", "thunderbolt", "trophy", "coffee", "home",
	}
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidIcon reports whether key is part of the icon catalog.
func ValidIcon(key string) bool {
	for _, icon := range AvailableIcons() {
		if icon == key {
			return true
		}
	}
	return false
}

// ValidColor reports whether value looks like "#1a2b3c".
func ValidColor(value string) bool {
	return colorPattern.MatchString(value)
}

// Validate checks the fields that user input controls.
func (p Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project: name required")
	}
	if p.Icon != "" && !ValidIcon(p.Icon) {
		return fmt.Errorf("project: unknown icon %q", p.Icon)
	}
	if p.Color != "" && !ValidColor(p.Color) {
		return fmt.Errorf("project: color %q is not #RRGGBB", p.Color)
	}
	return nil
}
