package templates

import (
	"strings"
	"testing"
)

func TestConfigYAML_NotEmpty(t *testing.T) {
	if len(ConfigYAML) == 0 {
		t.Error("Expected ConfigYAML to be non-empty")
	}
}

func TestConfigYAML_ContainsYAMLContent(t *testing.T) {
	content := string(ConfigYAML)

	// Check for expected config sections
	expectedSections := []string{
		"calendar:",
		"input:",
		"history:",
		"notification:",
	}

	for _, section := range expectedSections {
		if !strings.Contains(content, section) {
			t.Errorf("Expected ConfigYAML to contain section %q", section)
		}
	}
}

func TestConfigYAML_ContainsFields(t *testing.T) {
	content := string(ConfigYAML)

	expectedFields := []string{
		"mode:",
		"strict:",
		"enabled:",
		"file:",
		"max_entries:",
		"shoutrrr_url:",
	}

	for _, field := range expectedFields {
		if !strings.Contains(content, field) {
			t.Errorf("Expected ConfigYAML to contain field %q", field)
		}
	}
}

func TestConfigYAML_DefaultsMatchPlainCalculator(t *testing.T) {
	content := string(ConfigYAML)

	expected := []string{
		"mode: gregorian",
		"strict: false",
	}

	for _, line := range expected {
		if !strings.Contains(content, line) {
			t.Errorf("Expected ConfigYAML to contain %q", line)
		}
	}
}

func TestConfigYAML_ContainsComments(t *testing.T) {
	content := string(ConfigYAML)

	// YAML comments start with #
	if !strings.Contains(content, "#") {
		t.Error("Expected ConfigYAML to contain comments (lines starting with #)")
	}
}

func TestConfigYAML_ValidYAMLStructure(t *testing.T) {
	content := string(ConfigYAML)

	// Check for proper YAML indentation (2 spaces)
	lines := strings.Split(content, "\n")
	hasIndentation := false

	for _, line := range lines {
		if strings.HasPrefix(line, "  ") && !strings.HasPrefix(line, "   ") {
			hasIndentation = true
			break
		}
	}

	if !hasIndentation {
		t.Error("Expected ConfigYAML to have proper YAML indentation (2 spaces)")
	}
}

func TestEnvFile_NotEmpty(t *testing.T) {
	if len(strings.TrimSpace(string(EnvFile))) == 0 {
		t.Error("Expected EnvFile to have non-whitespace content")
	}
}

func TestEnvFile_ContainsEnvVars(t *testing.T) {
	content := string(EnvFile)

	expectedVars := []string{
		"DATECALC_CALENDAR_MODE",
		"DATECALC_INPUT_STRICT",
		"DATECALC_HISTORY_ENABLED",
		"DATECALC_NOTIFICATION_SHOUTRRR_URL",
	}

	for _, envVar := range expectedVars {
		if !strings.Contains(content, envVar) {
			t.Errorf("Expected EnvFile to contain variable %q", envVar)
		}
	}
}

func TestEnvFile_HasProperFormat(t *testing.T) {
	content := string(EnvFile)

	// Check that it follows KEY=value format
	if !strings.Contains(content, "=") {
		t.Error("Expected EnvFile to contain '=' for key=value format")
	}
}
