package errors

// Kind is the top-level error taxonomy from spec §7. Every *Error carries
// exactly one Kind; control-flow signals (continue/break/subdir-done) are a
// distinct type (see package signal) and never a Kind.
type Kind string

const (
	// KindInterpreter is a generic interpreter failure.
	KindInterpreter Kind = "InterpreterException"
	// KindInvalidCode means the program is ill-formed: unknown statement,
	// type-impossible operation, bad assignment target, unknown identifier.
	KindInvalidCode Kind = "InvalidCode"
	// KindInvalidArguments means a call-site contract violation: arity,
	// type mismatch, unknown required keyword, duplicate dict key, etc.
	KindInvalidArguments Kind = "InvalidArguments"
)

// Code is a short, stable identifier for a specific failure condition,
// grouped by the component that raises it. Two errors of the same Kind but
// different Code are still the same Kind to a caller matching on Kind alone.
const (
	// Environment (ENV###)
	ENV001 = "ENV001" // unknown name on read
	ENV002 = "ENV002" // assignment to a builtin name
	ENV003 = "ENV003" // malformed identifier

	// Value & operators (VAL###)
	VAL001 = "VAL001" // division by zero
	VAL002 = "VAL002" // type-impossible arithmetic
	VAL003 = "VAL003" // ordering comparison across differing variants
	VAL004 = "VAL004" // non-string dict key
	VAL005 = "VAL005" // indexing unsupported or out of bounds
	VAL006 = "VAL006" // non-bool used where bool required

	// Argument reduction (ARG###)
	ARG001 = "ARG001" // positional argument after keyword argument
	ARG002 = "ARG002" // duplicate keyword key
	ARG003 = "ARG003" // kwargs expansion conflict
	ARG004 = "ARG004" // nested kwargs key inside kwargs expansion
	ARG005 = "ARG005" // assignment nested inside an argument list

	// Type checking (TYP###)
	TYP001 = "TYP001" // positional arity mismatch
	TYP002 = "TYP002" // positional type mismatch
	TYP003 = "TYP003" // required keyword missing
	TYP004 = "TYP004" // keyword type mismatch
	TYP005 = "TYP005" // container keyword content mismatch

	// Dispatch (DSP###)
	DSP001 = "DSP001" // unknown function
	DSP002 = "DSP002" // value not callable / no such method
	DSP003 = "DSP003" // file value used as callable receiver

	// Evaluator (EVL###)
	EVL001 = "EVL001" // foreach variable-count mismatch
	EVL002 = "EVL002" // format-string missing variable
	EVL003 = "EVL003" // duplicate dict literal key
	EVL004 = "EVL004" // first statement is not project()
	EVL005 = "EVL005" // empty source
	EVL006 = "EVL006" // array/dict literal given the argument shape it forbids

	// Feature policy (FTR###) — warnings, not hard errors, but coded for
	// consistent reporting.
	FTR001 = "FTR001" // feature used below its introduction version
	FTR002 = "FTR002" // deprecated feature used at or above its deprecation version

	// Host surface (HST###) — errors raised by the reference host
	// (internal/host), not the core evaluator.
	HST001 = "HST001" // capability not granted
	HST002 = "HST002" // host function argument arity/type mismatch
	HST003 = "HST003" // host I/O failure (filesystem, etc.)
)
