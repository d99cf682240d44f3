package debayer

import "errors"

// Failure modes of a demosaic call. Resolution and depth are validated
// before any byte is written, so a failed call leaves the destination
// buffer untouched.
var (
	// ErrGeneric reports an internal invariant violation or a caller
	// contract violation that has no more specific code. It is not
	// expected from a correct build.
	ErrGeneric = errors.New("demosaic failed")

	// ErrWrongResolution reports a raw buffer whose length is
	// inconsistent with the declared width, height and depth.
	ErrWrongResolution = errors.New("wrong resolution")

	// ErrWrongDepth reports a depth outside the supported set, or a raw
	// depth that cannot feed the raster's channel depth.
	ErrWrongDepth = errors.New("wrong depth")
)

// Stable result codes of the boundary contract.
const (
	CodeSuccess uint32 = iota
	CodeGenericError
	CodeWrongResolution
	CodeWrongDepth
)

// ResultCode maps an error returned by this package onto the stable result
// code consumed at the foreign boundary. A nil error maps to CodeSuccess,
// anything unrecognized to CodeGenericError.
func ResultCode(err error) uint32 {
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, ErrWrongResolution):
		return CodeWrongResolution
	case errors.Is(err, ErrWrongDepth):
		return CodeWrongDepth
	default:
		return CodeGenericError
	}
}
