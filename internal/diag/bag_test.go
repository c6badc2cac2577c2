package diag

import (
	"testing"

	"cfgpp/internal/source"
)

func mkDiag(start uint32, sev Severity, code Code) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  "m",
		Primary:  source.Span{File: 0, Start: start, End: start + 1},
	}
}

func TestBag_Limit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(mkDiag(0, SevError, SynUnexpectedToken)) {
		t.Error("First add should succeed")
	}
	if !bag.Add(mkDiag(1, SevError, SynUnexpectedToken)) {
		t.Error("Second add should succeed")
	}
	if bag.Add(mkDiag(2, SevError, SynUnexpectedToken)) {
		t.Error("Add past the limit should report dropped")
	}
	if bag.Len() != 2 {
		t.Errorf("Expected 2 items, got %d", bag.Len())
	}
}

func TestNewBag_LimitOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic for a limit past uint16 range")
		}
	}()
	NewBag(1 << 20)
}

func TestBag_HasErrorsAndFirstError(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(5, SevWarning, LexUnknownChar))

	if bag.HasErrors() {
		t.Error("Warning alone should not count as error")
	}
	if _, ok := bag.FirstError(); ok {
		t.Error("FirstError should report none")
	}

	bag.Add(mkDiag(9, SevError, SynExpectValue))
	if !bag.HasErrors() {
		t.Error("Expected HasErrors after adding an error")
	}
	first, ok := bag.FirstError()
	if !ok || first.Code != SynExpectValue {
		t.Errorf("FirstError returned %+v", first)
	}
}

func TestBag_SortOrder(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(9, SevError, SynUnexpectedToken))
	bag.Add(mkDiag(2, SevWarning, LexUnknownChar))
	bag.Add(mkDiag(2, SevError, LexUnterminatedString))

	bag.Sort()
	items := bag.Items()

	if items[0].Primary.Start != 2 || items[0].Severity != SevError {
		t.Errorf("Expected error at offset 2 first, got %+v", items[0])
	}
	if items[1].Primary.Start != 2 || items[1].Severity != SevWarning {
		t.Errorf("Expected warning at offset 2 second, got %+v", items[1])
	}
	if items[2].Primary.Start != 9 {
		t.Errorf("Expected offset 9 last, got %+v", items[2])
	}
}

func TestCode_ID(t *testing.T) {
	if got := SynUnexpectedToken.ID(); got != "CFG2001" {
		t.Errorf("Expected CFG2001, got %q", got)
	}
	if got := LexUnknownChar.ID(); got != "CFG1001" {
		t.Errorf("Expected CFG1001, got %q", got)
	}
}
