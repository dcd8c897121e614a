package errors

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/velalang/velac/internal/ast"
)

func TestDiagnosticToJSON(t *testing.T) {
	diag := &Diagnostic{
		Schema:  SchemaDiagnosticV1,
		Code:    TYP001,
		Phase:   Phase(TYP001),
		Message: "expected s32, got bool",
		Pos:     ast.SourcePos{File: "test.cw", Line: 5},
	}

	jsonData, err := diag.ToJSON(true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(jsonData), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}

	if result["schema"] != SchemaDiagnosticV1 {
		t.Errorf("expected schema %s, got %v", SchemaDiagnosticV1, result["schema"])
	}
	if result["phase"] != "typecheck" {
		t.Errorf("expected phase typecheck, got %v", result["phase"])
	}
	if result["code"] != TYP001 {
		t.Errorf("expected code %s, got %v", TYP001, result["code"])
	}
}

func TestDiagnosticToYAML(t *testing.T) {
	diag := &Diagnostic{Schema: SchemaDiagnosticV1, Code: SYM001, Phase: Phase(SYM001), Message: "unresolved identifier 'foo'"}
	out, err := diag.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML failed: %v", err)
	}
	if !strings.Contains(string(out), "code: SYM001") {
		t.Errorf("expected YAML to contain code: SYM001, got %s", out)
	}
}

func TestNewAndWrap(t *testing.T) {
	pos := ast.SourcePos{File: "a.cw", Line: 3}
	err := New(PAR001, pos, "unexpected token ')'")
	diag, ok := AsDiagnostic(err)
	if !ok {
		t.Fatal("expected AsDiagnostic to succeed")
	}
	if diag.Code != PAR001 {
		t.Errorf("expected code %s, got %s", PAR001, diag.Code)
	}
	if diag.Pos != pos {
		t.Errorf("expected pos %v, got %v", pos, diag.Pos)
	}

	wrapped := Wrap(IMP001, pos, "could not read module file", err)
	diag2, ok := AsDiagnostic(wrapped)
	if !ok {
		t.Fatal("expected AsDiagnostic to succeed for wrapped error")
	}
	if diag2.Cause != err {
		t.Error("expected Cause to be preserved")
	}
}

func TestSafeEncode(t *testing.T) {
	if result := SafeEncode(nil, "typecheck"); result != nil {
		t.Error("expected nil for nil error")
	}

	testErr := &plainError{msg: "boom"}
	result := SafeEncode(testErr, "typecheck")

	var parsed map[string]interface{}
	if err := json.Unmarshal(result, &parsed); err != nil {
		t.Fatalf("failed to parse result: %v", err)
	}
	if parsed["phase"] != "typecheck" {
		t.Errorf("expected phase typecheck, got %v", parsed["phase"])
	}
	if !strings.Contains(parsed["message"].(string), "boom") {
		t.Errorf("expected message to contain 'boom', got %v", parsed["message"])
	}
}

func TestToDeterministicJSONRejectsForeignSchema(t *testing.T) {
	diag := &Diagnostic{Schema: "other.tool/v1", Code: TYP001, Message: "type mismatch"}
	if _, err := diag.ToDeterministicJSON(); err == nil {
		t.Fatal("expected an error for a diagnostic carrying a foreign schema tag")
	}
}

func TestSetCompactJSON(t *testing.T) {
	diag := &Diagnostic{Schema: SchemaDiagnosticV1, Code: TYP001, Phase: Phase(TYP001), Message: "type mismatch"}

	SetCompactJSON(true)
	compact, err := diag.ToDeterministicJSON()
	if err != nil {
		t.Fatalf("ToDeterministicJSON failed: %v", err)
	}
	if strings.Contains(string(compact), "\n") {
		t.Error("expected compact JSON to contain no newlines")
	}

	SetCompactJSON(false)
	pretty, err := diag.ToDeterministicJSON()
	if err != nil {
		t.Fatalf("ToDeterministicJSON failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n") {
		t.Error("expected pretty JSON to contain newlines")
	}
}

type plainError struct{ msg string }

func (e *plainError) Error() string { return e.msg }
