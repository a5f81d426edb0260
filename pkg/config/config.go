// Package config loads planner defaults from a .timeblock file or the
// environment.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/spina95/time-blocking/pkg/project"
	"github.com/spina95/time-blocking/pkg/store"
	"github.com/spina95/time-blocking/pkg/task"
)

// Config carries the defaults applied when user input leaves a field blank.
type Config struct {
	DefaultDuration float64
	DefaultPriority task.Priority
	DefaultCategory string

	ProjectName  string
	ProjectIcon  string
	ProjectColor string
}

// Load reads .timeblock (yaml, found in the working directory or
// TIMEBLOCK_CONFIG_PATH) plus TIMEBLOCK_* environment overrides.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("duration", 1.0)
	v.SetDefault("priority", string(task.PriorityMedium))
	v.SetDefault("category", task.DefaultCategory)
	v.SetDefault("project.name", "Personal")
	v.SetDefault("project.icon", "user")
	v.SetDefault("project.color", "#1677ff")
	v.SetConfigName(".timeblock") // .yaml is implicit
	v.SetEnvPrefix("TIMEBLOCK")
	v.AutomaticEnv()

	if override := os.Getenv("TIMEBLOCK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	priority, err := task.ParsePriority(v.GetString("priority"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		DefaultDuration: v.GetFloat64("duration"),
		DefaultPriority: priority,
		DefaultCategory: v.GetString("category"),
		ProjectName:     v.GetString("project.name"),
		ProjectIcon:     v.GetString("project.icon"),
		ProjectColor:    v.GetString("project.color"),
	}, nil
}

// TodoDefaults maps the config onto the todo store's defaulting.
func (c Config) TodoDefaults() store.TodoDefaults {
	return store.TodoDefaults{
		Duration: c.DefaultDuration,
		Priority: c.DefaultPriority,
		Category: c.DefaultCategory,
	}
}

// SeedProject is the project every fresh process starts with.
func (c Config) SeedProject() project.Project {
	return project.Project{Name: c.ProjectName, Icon: c.ProjectIcon, Color: c.ProjectColor}
}
