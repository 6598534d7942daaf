package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	_ "embed"
)

const (
	TYPEDLIST_APP_NAME = "typedlist"

	ENV_PREFIX = "TYPEDLIST"

	DEFAULT_SCHEMA_FILENAME = "schema.yaml"
	DEFAULT_SCHEMA_RELPATH  = TYPEDLIST_APP_NAME + "/" + DEFAULT_SCHEMA_FILENAME
	DEFAULT_SCHEMA_PERM     = 0o600

	CONFIG_FILE_NAME = "config"

	DEFAULT_LOG_LEVEL = "info"
)

var (
	//go:embed default_schema.yaml
	DEFAULT_SCHEMA string

	FORCE_COLOR     bool
	NO_COLOR        bool
	SHOULD_COLORIZE bool
)

func init() {
	targetSpecificInit()
}

// GetDefaultSchemaPath searches for the default schema file, creates it if it does not exist and returns its path.
func GetDefaultSchemaPath() (string, error) {
	path, err := xdg.SearchConfigFile(DEFAULT_SCHEMA_RELPATH)
	if err != nil {
		path, err = xdg.ConfigFile(DEFAULT_SCHEMA_RELPATH)
		if err != nil {
			return "", err
		}

		if err := os.WriteFile(path, []byte(DEFAULT_SCHEMA), DEFAULT_SCHEMA_PERM); err != nil {
			return "", err
		}
	}

	return path, nil
}

// ConfigDirs returns the directories searched for the configuration file, by decreasing priority.
func ConfigDirs() []string {
	dirs := []string{filepath.Join(xdg.ConfigHome, TYPEDLIST_APP_NAME)}
	for _, dir := range xdg.ConfigDirs {
		dirs = append(dirs, filepath.Join(dir, TYPEDLIST_APP_NAME))
	}
	return dirs
}
