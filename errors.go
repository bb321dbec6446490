package patchingo

import "errors"

// Raw memory access failures.
var (
	// ErrNullPointer means the address was zero; nothing was attempted.
	ErrNullPointer = errors.New("null pointer")
	// ErrInvalidAlignment means the address is not aligned for the accessed
	// type; nothing was attempted.
	ErrInvalidAlignment = errors.New("invalid alignment")
	// ErrProtectionChange means the page protection could not be opened up.
	// For writes this guarantees memory was not touched.
	ErrProtectionChange = errors.New("failed to change protection")
	// ErrProtectionRestore means the original page protection could not be
	// put back. The guarded access itself already completed, so for writes
	// the value IS in memory when this comes back.
	ErrProtectionRestore = errors.New("failed to restore protection")
	// ErrFaultedAccess means the access itself trapped: the protection bits
	// allowed it but no backed mapping was there.
	ErrFaultedAccess = errors.New("memory access faulted")
)

// Pattern compilation and search failures.
var (
	// ErrInvalidPattern means the signature text did not compile, or an
	// empty signature was handed to a search.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrPatternNotFound means the signature matched nowhere.
	ErrPatternNotFound = errors.New("pattern not found")
)

// Patch-level failures.
var (
	// ErrDecodeFailed means the disassembler could not decode an
	// instruction inside the lookahead window.
	ErrDecodeFailed = errors.New("failed to decode instruction")
	// ErrUnsupportedKind means the constant's kind has no return-sequence
	// template.
	ErrUnsupportedKind = errors.New("unsupported value kind")
)

// Image location failures.
var (
	// ErrInvalidImage means a format magic did not check out.
	ErrInvalidImage = errors.New("invalid image header")
	// ErrNoTextSection means the section table holds no code section.
	ErrNoTextSection = errors.New("no text section")
	// ErrModuleLookup means the loader could not resolve a module base.
	ErrModuleLookup = errors.New("module lookup failed")
)
