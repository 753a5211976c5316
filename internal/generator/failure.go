package generator

import (
	"errors"
	"fmt"
)

// Kind classifies why a generation call did not produce an answer.
type Kind int

const (
	KindUnknown Kind = iota
	// KindMissingCredential means the API key was absent or blank at construction.
	KindMissingCredential
	// KindTransport means the request never got an HTTP response.
	KindTransport
	// KindHTTP means the vendor answered with a status outside [200,300).
	KindHTTP
	// KindDecode means the body did not parse or yielded no usable text.
	KindDecode
	// KindEmptyResult means the body parsed but had no candidates/choices.
	KindEmptyResult
)

func (k Kind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing_credential"
	case KindTransport:
		return "transport_failure"
	case KindHTTP:
		return "http_error"
	case KindDecode:
		return "decode_failure"
	case KindEmptyResult:
		return "empty_result"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against a *Failure of the same kind.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrTransport         = errors.New("transport failure")
	ErrHTTP              = errors.New("http error")
	ErrDecode            = errors.New("decode failure")
	ErrEmptyResult       = errors.New("empty result")

	// ErrEmptyPrompt is returned before any network call when the prompt is blank.
	ErrEmptyPrompt = errors.New("prompt is empty")
)

func (k Kind) sentinel() error {
	switch k {
	case KindMissingCredential:
		return ErrMissingCredential
	case KindTransport:
		return ErrTransport
	case KindHTTP:
		return ErrHTTP
	case KindDecode:
		return ErrDecode
	case KindEmptyResult:
		return ErrEmptyResult
	default:
		return nil
	}
}

// Failure is the error value every adapter returns.
// Status and Body are only set for KindHTTP.
type Failure struct {
	Kind    Kind
	Backend string
	Status  int
	Body    string
	Err     error
}

func (f *Failure) Error() string {
	switch {
	case f.Kind == KindHTTP:
		return fmt.Sprintf("%s: %s: status %d: %s", f.Backend, f.Kind, f.Status, f.Body)
	case f.Err != nil:
		return fmt.Sprintf("%s: %s: %v", f.Backend, f.Kind, f.Err)
	default:
		return fmt.Sprintf("%s: %s", f.Backend, f.Kind)
	}
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is reports whether target is the sentinel for f's kind.
func (f *Failure) Is(target error) bool {
	s := f.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the Kind of the first *Failure in err's chain.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindUnknown
}

func failure(backend string, kind Kind, err error) *Failure {
	return &Failure{Kind: kind, Backend: backend, Err: err}
}

func httpFailure(backend string, status int, body []byte) *Failure {
	return &Failure{Kind: KindHTTP, Backend: backend, Status: status, Body: string(body)}
}
