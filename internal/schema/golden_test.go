package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestGoldenDiagnosticJSON tests that velac's diagnostic JSON is
// deterministic and matches the schema tag a consumer would check with
// Accepts.
func TestGoldenDiagnosticJSON(t *testing.T) {
	tests := []struct {
		name     string
		diag     map[string]interface{}
		wantJSON string // Exact expected JSON output
	}{
		{
			name: "type_mismatch_error",
			diag: map[string]interface{}{
				"schema":  "velac.diagnostic/v1",
				"phase":   "typecheck",
				"code":    "TYP001",
				"message": "type mismatch: expected u32, got s32",
				"pos": map[string]interface{}{
					"file": "m/main.cw",
					"line": 12,
					"col":  5,
				},
			},
			wantJSON: `{
  "code": "TYP001",
  "message": "type mismatch: expected u32, got s32",
  "phase": "typecheck",
  "pos": {
    "col": 5,
    "file": "m/main.cw",
    "line": 12
  },
  "schema": "velac.diagnostic/v1"
}`,
		},
		{
			name: "unresolved_identifier_error",
			diag: map[string]interface{}{
				"schema":  "velac.diagnostic/v1",
				"phase":   "symtab",
				"code":    "SYM001",
				"message": "unresolved identifier: frobnicate",
			},
			wantJSON: `{
  "code": "SYM001",
  "message": "unresolved identifier: frobnicate",
  "phase": "symtab",
  "schema": "velac.diagnostic/v1"
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Use MarshalDeterministic which should produce sorted keys
			got, err := MarshalDeterministic(tt.diag)
			if err != nil {
				t.Fatalf("MarshalDeterministic() error = %v", err)
			}

			formatted, err := FormatJSON(got)
			if err != nil {
				t.Fatalf("FormatJSON() error = %v", err)
			}

			// Normalize whitespace for comparison
			wantNorm := normalizeJSON(t, tt.wantJSON)
			gotNorm := normalizeJSON(t, string(formatted))

			if gotNorm != wantNorm {
				t.Errorf("JSON mismatch:\nGot:\n%s\nWant:\n%s", gotNorm, wantNorm)
			}

			// Verify schema acceptance
			var parsed map[string]interface{}
			if err := json.Unmarshal(got, &parsed); err != nil {
				t.Fatalf("Failed to parse JSON: %v", err)
			}

			if schemaField, ok := parsed["schema"].(string); ok {
				if !Accepts(schemaField, "velac.diagnostic/v1") {
					t.Errorf("Schema %q does not accept %q", schemaField, "velac.diagnostic/v1")
				}
			} else {
				t.Error("Missing schema field in JSON output")
			}
		})
	}
}

// TestGoldenCompactMode tests that compact mode works correctly.
func TestGoldenCompactMode(t *testing.T) {
	data := map[string]interface{}{
		"schema": "velac.diagnostic/v1",
		"counts": map[string]interface{}{
			"errors":   2,
			"warnings": 1,
		},
	}

	// Test pretty mode
	SetCompactMode(false)
	pretty, err := MarshalDeterministic(data)
	if err != nil {
		t.Fatalf("MarshalDeterministic error = %v", err)
	}
	prettyFormatted, err := FormatJSON(pretty)
	if err != nil {
		t.Fatalf("FormatJSON error = %v", err)
	}

	if !strings.Contains(string(prettyFormatted), "\n") {
		t.Error("Pretty mode should contain newlines")
	}

	// Test compact mode
	SetCompactMode(true)
	compact, err := MarshalDeterministic(data)
	if err != nil {
		t.Fatalf("MarshalDeterministic error = %v", err)
	}
	compactFormatted, err := FormatJSON(compact)
	if err != nil {
		t.Fatalf("FormatJSON error = %v", err)
	}

	if strings.Contains(string(compactFormatted), "\n") {
		t.Error("Compact mode should not contain newlines")
	}

	// Verify JSON is still valid and deterministic
	wantCompact := `{"counts":{"errors":2,"warnings":1},"schema":"velac.diagnostic/v1"}`
	if string(compactFormatted) != wantCompact {
		t.Errorf("Compact JSON mismatch:\nGot:  %s\nWant: %s", string(compactFormatted), wantCompact)
	}

	// Reset to default
	SetCompactMode(false)
}

// TestAcceptsCompatibility tests schema version compatibility.
func TestAcceptsCompatibility(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		want     string
		expected bool
	}{
		// Exact matches
		{"exact diagnostic v1", "velac.diagnostic/v1", "velac.diagnostic/v1", true},

		// Minor versions should be accepted
		{"diagnostic v1.1", "velac.diagnostic/v1.1", "velac.diagnostic/v1", true},
		{"diagnostic v1.2.3", "velac.diagnostic/v1.2.3", "velac.diagnostic/v1", true},

		// Major version mismatches should be rejected
		{"diagnostic v2", "velac.diagnostic/v2", "velac.diagnostic/v1", false},

		// Different schemas should be rejected
		{"wrong schema", "velac.testreport/v1", "velac.diagnostic/v1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accepts(tt.got, tt.want); got != tt.expected {
				t.Errorf("Accepts(%q, %q) = %v, want %v", tt.got, tt.want, got, tt.expected)
			}
		})
	}
}

// normalizeJSON normalizes JSON for comparison by parsing and re-formatting
func normalizeJSON(t *testing.T, jsonStr string) string {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		t.Fatalf("Invalid JSON: %v\nJSON: %s", err, jsonStr)
	}

	normalized, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		t.Fatalf("Failed to normalize JSON: %v", err)
	}

	return string(normalized)
}
