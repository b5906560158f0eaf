package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// rotationChoices are the hero intervals offered by the wizard.
var rotationChoices = []struct {
	Label      string
	IntervalMS int
}{
	{"6 seconds (default)", 6000},
	{"5 seconds", 5000},
	{"8 seconds", 8000},
	{"off, manual navigation only", 0},
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to ppmsite! Let's configure the website server.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (SQLite database)",
		Default: cfg.DataDir,
	}
	if cfg.DataDir, err = dataPrompt.Run(); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 3. Hero rotation.
	labels := make([]string, len(rotationChoices))
	for i, c := range rotationChoices {
		labels[i] = c.Label
	}
	rotationPrompt := promptui.Select{
		Label: "Hero carousel rotation",
		Items: labels,
	}
	idx, _, err := rotationPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("rotation selection: %w", err)
	}
	cfg.Rotator.IntervalMS = rotationChoices[idx].IntervalMS

	// 4. Contact subjects.
	subjectsPrompt := promptui.Prompt{
		Label:   "Contact form subjects (comma-separated)",
		Default: strings.Join(DefaultSubjects, ", "),
	}
	subjectsStr, err := subjectsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("contact subjects: %w", err)
	}
	if subjects := splitAndTrim(subjectsStr); len(subjects) > 0 {
		cfg.Contact.Subjects = subjects
	}

	// 5. Content override.
	contentPrompt := promptui.Prompt{
		Label:   "Content file override (leave blank for built-in content)",
		Default: "",
	}
	if cfg.ContentFile, err = contentPrompt.Run(); err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
