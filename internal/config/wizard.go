package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// wizardAnswers are the values collected by RunWizard.
type wizardAnswers struct {
	Port            string
	DataDir         string
	AssetsDir       string
	ExtraPatterns   string
	CatalogFile     string
	LogFormat       LogFormat
	AllowAllOrigins bool
}

// detectAssetsDir returns the first conventional static directory present in
// the current directory.
func detectAssetsDir() string {
	for _, dir := range []string{"public", "static", "assets"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return DefaultConfig().AssetsDir
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio server.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(defaults.Port),
		Validate: validatePort,
	}
	port, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}

	// 2. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (visitor preferences)",
		Default: defaults.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 3. Assets directory.
	assetsPrompt := promptui.Prompt{
		Label:   "Static assets directory (photo, resume)",
		Default: detectAssetsDir(),
	}
	assetsDir, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}

	// 4. Extra asset patterns.
	patternsPrompt := promptui.Prompt{
		Label:   "Extra asset patterns (comma-separated globs, leave blank for defaults)",
		Default: "",
	}
	extraPatterns, err := patternsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset patterns: %w", err)
	}

	// 5. Catalog file.
	catalogPrompt := promptui.Prompt{
		Label:   "Catalog YAML file (leave blank for built-in content)",
		Default: "",
	}
	catalogFile, err := catalogPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog file: %w", err)
	}

	// 6. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"console - human readable",
			"json    - structured, for log shipping",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	formats := []LogFormat{LogFormatConsole, LogFormatJSON}

	// 7. CORS.
	corsPrompt := promptui.Select{
		Label: "Allow cross-origin requests from any origin?",
		Items: []string{"no", "yes (development only)"},
	}
	corsIdx, _, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors: %w", err)
	}

	cfg, err := buildConfig(wizardAnswers{
		Port:            port,
		DataDir:         dataDir,
		AssetsDir:       assetsDir,
		ExtraPatterns:   extraPatterns,
		CatalogFile:     catalogFile,
		LogFormat:       formats[formatIdx],
		AllowAllOrigins: corsIdx == 1,
	})
	if err != nil {
		return nil, err
	}

	if cfg.CatalogFile != "" {
		if _, err := os.Stat(cfg.CatalogFile); os.IsNotExist(err) {
			fmt.Printf("\nNote: %s does not exist yet. Create it with `folio catalog dump > %s`.\n", cfg.CatalogFile, cfg.CatalogFile)
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// buildConfig turns wizard answers into a validated Config.
func buildConfig(a wizardAnswers) (*Config, error) {
	cfg := DefaultConfig()

	port, err := strconv.Atoi(strings.TrimSpace(a.Port))
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", a.Port, err)
	}
	cfg.Port = port
	if v := strings.TrimSpace(a.DataDir); v != "" {
		cfg.DataDir = v
	}
	cfg.AssetsDir = strings.TrimSpace(a.AssetsDir)
	cfg.AssetPatterns = append(cfg.AssetPatterns, splitAndTrim(a.ExtraPatterns)...)
	cfg.CatalogFile = strings.TrimSpace(a.CatalogFile)
	if a.LogFormat != "" {
		cfg.Log.Format = a.LogFormat
	}
	cfg.AllowAllOrigins = a.AllowAllOrigins

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validatePort checks a port typed at the prompt.
func validatePort(s string) error {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
