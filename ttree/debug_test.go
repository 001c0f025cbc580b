package ttree

import "testing"

func TestDebugScalar(t *testing.T) {
	if got := Int8(5).Debug(); got != "i8:5" {
		t.Errorf("Debug() = %q, want i8:5", got)
	}
}

func TestDebugRecordUsesFieldNames(t *testing.T) {
	rec := Record([]Field{NewField("id", Uvint(1))})
	got := rec.Debug()
	if got != "{id=u:1}" {
		t.Errorf("Debug() = %q, want {id=u:1}", got)
	}
}

func TestDebugNilTree(t *testing.T) {
	var tr *Tree
	if got := tr.Debug(); got != "<nil>" {
		t.Errorf("Debug() = %q, want <nil>", got)
	}
}
