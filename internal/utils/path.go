package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver provides robust path resolution for the typeahead binary
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// NewPathResolver creates a resolver anchored at the running executable
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}
	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = "/tmp"
	}

	configDir := getConfigDir(homeDir)

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  execDir,
		homeDir:        homeDir,
		configDir:      configDir,
	}

	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		execPath, execDir, configDir)

	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "typeahead")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "typeahead")
		}
		return filepath.Join(homeDir, ".config", "typeahead")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "typeahead")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "typeahead")
	default:
		return filepath.Join(homeDir, ".typeahead")
	}
}

// GetWordListPath resolves a user-specified word list file.
// Candidates, in order: the path as given (if absolute or present in
// cwd), relative to the executable dir, and under the config dir.
func (pr *PathResolver) GetWordListPath(userSpecifiedPath string) (string, bool) {
	if userSpecifiedPath == "" {
		return "", false
	}

	candidates := []string{userSpecifiedPath}
	if !filepath.IsAbs(userSpecifiedPath) {
		candidates = append(candidates,
			filepath.Join(pr.executableDir, userSpecifiedPath),
			filepath.Join(pr.configDir, userSpecifiedPath),
		)
	}

	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Found word list at: %s", path)
			return path, true
		}
		log.Debugf("Word list candidate not found: %s", path)
	}
	return userSpecifiedPath, false
}

// GetConfigPath returns the full path for a config file name inside
// the platform config directory, creating the directory if needed.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if result := CheckDirStatus(pr.configDir); result.Writable {
		return filepath.Join(pr.configDir, filename), nil
	}
	execDir, err := GetExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(execDir, filename), nil
}
