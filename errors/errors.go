package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseStore Phase = "store" // record/primitive to cell
	PhaseLoad  Phase = "load"  // cell to record/primitive
	PhaseDict  Phase = "dict"  // dictionary trie codec
	PhaseTuple Phase = "tuple" // stack tuple codec
	PhaseBOC   Phase = "boc"   // bag-of-cells wire bytes
	PhaseSend  Phase = "send"  // message dispatch
	PhaseGet   Phase = "get"   // get-method call
)

// Kind categorizes the error
type Kind string

const (
	KindCapacityExceeded     Kind = "capacity_exceeded"
	KindIntegerOutOfRange    Kind = "integer_out_of_range"
	KindCellUnderflow        Kind = "cell_underflow"
	KindNoMoreReferences     Kind = "no_more_references"
	KindInvalidDiscriminator Kind = "invalid_discriminator"
	KindInvalidData          Kind = "invalid_data"
	KindTypeMismatch         Kind = "type_mismatch"
	KindUnsupported          Kind = "unsupported"
	KindOutOfBounds          Kind = "out_of_bounds"
	KindExitCode             Kind = "exit_code"
)

// Sentinels for errors.Is checks that do not care about the phase.
var (
	ErrCapacityExceeded     = &Error{Kind: KindCapacityExceeded}
	ErrIntegerOutOfRange    = &Error{Kind: KindIntegerOutOfRange}
	ErrCellUnderflow        = &Error{Kind: KindCellUnderflow}
	ErrNoMoreReferences     = &Error{Kind: KindNoMoreReferences}
	ErrInvalidDiscriminator = &Error{Kind: KindInvalidDiscriminator}
	ErrInvalidData          = &Error{Kind: KindInvalidData}
	ErrTypeMismatch         = &Error{Kind: KindTypeMismatch}
	ErrUnsupported          = &Error{Kind: KindUnsupported}
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target without a phase
// matches on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// WithPath returns a copy of the error with segments prepended to its path.
// Non-structured errors are returned unchanged.
func WithPath(err error, segments ...string) error {
	e, ok := err.(*Error)
	if !ok || len(segments) == 0 {
		return err
	}
	cp := *e
	cp.Path = append(append([]string(nil), segments...), e.Path...)
	return &cp
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the record or value type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// CapacityExceeded reports a write past the cell bit or reference limit.
func CapacityExceeded(what string, need, have int) *Error {
	return &Error{
		Phase:  PhaseStore,
		Kind:   KindCapacityExceeded,
		Detail: fmt.Sprintf("%s: need %d, %d left", what, need, have),
		Value:  need,
	}
}

// IntegerOutOfRange reports a value that does not fit its declared width.
func IntegerOutOfRange(phase Phase, value any, bits uint, signed bool) *Error {
	sign := "unsigned"
	if signed {
		sign = "signed"
	}
	return &Error{
		Phase:  phase,
		Kind:   KindIntegerOutOfRange,
		Detail: fmt.Sprintf("value %v does not fit %s %d-bit integer", value, sign, bits),
		Value:  value,
	}
}

// InvalidWidth reports a bit width outside the range an operation accepts.
func InvalidWidth(phase Phase, bits, maxBits uint) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIntegerOutOfRange,
		Detail: fmt.Sprintf("width %d out of range (max %d)", bits, maxBits),
		Value:  bits,
	}
}

// CellUnderflow reports a read of more bits than remain in a slice.
func CellUnderflow(need, have uint) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindCellUnderflow,
		Detail: fmt.Sprintf("need %d bits, %d left", need, have),
		Value:  need,
	}
}

// NoMoreReferences reports a reference read past the last child.
func NoMoreReferences(index, count int) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindNoMoreReferences,
		Detail: fmt.Sprintf("reference %d requested, cell has %d", index, count),
		Value:  index,
	}
}

// InvalidDiscriminator reports a leading op code that does not match the
// expected record type.
func InvalidDiscriminator(typeName string, want, got uint64) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidDiscriminator,
		Type:   typeName,
		Detail: fmt.Sprintf("prefix 0x%08x, expected 0x%08x", got, want),
		Value:  got,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// TypeMismatch reports a stack item of an unexpected type.
func TypeMismatch(phase Phase, want, got string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Type:   want,
		Detail: "got " + got,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// ContractError is a non-zero exit code returned by a get-method or reported
// for a bounced message, resolved against the contract's error table.
type ContractError struct {
	Message string
	Code    int
}

// Error implements the error interface
func (e *ContractError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[%s] %s: exit code %d", PhaseGet, KindExitCode, e.Code)
	}
	return fmt.Sprintf("[%s] %s: exit code %d: %s", PhaseGet, KindExitCode, e.Code, e.Message)
}

// Is reports whether target is a ContractError with the same code
func (e *ContractError) Is(target error) bool {
	t, ok := target.(*ContractError)
	return ok && t.Code == e.Code
}

// ExitCode resolves code against table, falling back to a bare code message.
func ExitCode(code int, table map[int]string) *ContractError {
	return &ContractError{Code: code, Message: table[code]}
}
