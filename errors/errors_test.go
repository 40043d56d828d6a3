package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Path:   []string{"TokenTransfer", "destination"},
				Type:   "Address",
				Detail: "addr_none",
			},
			contains: []string{"[load]", "invalid_data", "TokenTransfer.destination", "Address", "addr_none"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseStore,
				Kind:  KindCapacityExceeded,
			},
			contains: []string{"[store]", "capacity_exceeded"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseBOC,
				Kind:   KindInvalidData,
				Detail: "bad header",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[boc]", "invalid_data", "bad header", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseBOC, KindInvalidData, cause, "parse")

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := CellUnderflow(64, 3)

	if !errors.Is(err, ErrCellUnderflow) {
		t.Error("expected match against phase-less sentinel")
	}
	if !errors.Is(err, &Error{Phase: PhaseLoad, Kind: KindCellUnderflow}) {
		t.Error("expected match on phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseStore, Kind: KindCellUnderflow}) {
		t.Error("unexpected match with different phase")
	}
	if errors.Is(err, ErrNoMoreReferences) {
		t.Error("unexpected match with different kind")
	}
	if errors.Is(err, errors.New("other")) {
		t.Error("unexpected match with plain error")
	}
}

func TestWithPath(t *testing.T) {
	base := InvalidDiscriminator("Mint", 33240155, 1)
	err := WithPath(base, "Signed", "request")

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if got := strings.Join(e.Path, "."); got != "Signed.request" {
		t.Errorf("path: got %q, want %q", got, "Signed.request")
	}
	if len(base.Path) != 0 {
		t.Error("WithPath mutated the original error")
	}
	if !errors.Is(err, ErrInvalidDiscriminator) {
		t.Error("path copy lost its kind")
	}

	plain := errors.New("plain")
	if WithPath(plain, "x") != plain {
		t.Error("plain errors should pass through")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseTuple, KindTypeMismatch).
		Path("stack", "0").
		Type("int").
		Value(7).
		Detail("got %s", "cell").
		Build()

	if err.Phase != PhaseTuple || err.Kind != KindTypeMismatch {
		t.Errorf("phase/kind: got %s/%s", err.Phase, err.Kind)
	}
	if err.Detail != "got cell" {
		t.Errorf("detail: got %q", err.Detail)
	}
	if err.Value != 7 {
		t.Errorf("value: got %v", err.Value)
	}
}

func TestContractError(t *testing.T) {
	table := map[int]string{4429: "Invalid sender"}

	err := ExitCode(4429, table)
	if !strings.Contains(err.Error(), "Invalid sender") {
		t.Errorf("message not resolved: %q", err.Error())
	}
	if !errors.Is(err, &ContractError{Code: 4429}) {
		t.Error("expected code match")
	}

	unknown := ExitCode(99, table)
	if !strings.Contains(unknown.Error(), "exit code 99") {
		t.Errorf("unexpected message: %q", unknown.Error())
	}
}
