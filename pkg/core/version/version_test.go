package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Platform", Platform},
		{"Lexer", Lexer},
		{"Parser", Parser},
		{"Registry", Registry},
		{"Program", Program},
		{"REPL", REPL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name      string
		component string
		expected  string
	}{
		{"lexer", "lexer", Lexer},
		{"parser", "parser", Parser},
		{"registry", "registry", Registry},
		{"program", "program", Program},
		{"repl", "repl", REPL},
		{"unknown component", "unknown", Platform},
		{"empty component", "", Platform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComponentVersion(tt.component)
			if result != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, result, tt.expected)
			}
		})
	}
}

func TestComponents(t *testing.T) {
	components := Components()
	if len(components) != 5 {
		t.Fatalf("len(Components()) = %d, want 5", len(components))
	}
	for _, name := range components {
		if !semverRegex.MatchString(ComponentVersion(name)) {
			t.Errorf("ComponentVersion(%q) = %q, not semver", name, ComponentVersion(name))
		}
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "mbasic "+Platform) {
		t.Errorf("String() = %q, want prefix %q", s, "mbasic "+Platform)
	}
	if !strings.Contains(s, Commit) {
		t.Errorf("String() = %q, want commit %q", s, Commit)
	}
}
