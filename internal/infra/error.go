package infra

import (
	"errors"
	"log/slog"

	"ruleta-server/internal/pkg/errs"
)

type StoreErrorKind string

type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StoreError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

func WrapStoreErr(slogger *slog.Logger, kind StoreErrorKind, msg string, err error, attrs ...any) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	logArgs = append(logArgs, attrs...)
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if kind == KindDeserialization {
		slogger.Warn("Store error: "+msg, logArgs...)
	} else {
		slogger.Error("Store error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return StoreError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Store error kinds
const (
	// StorageWriteError: the backing medium rejected a write. Always surfaced.
	KindStorageWrite StoreErrorKind = "STORAGE_WRITE"
	// StorageReadError: the backing medium failed a read. Only surfaced by lookups that feed a write.
	KindStorageRead StoreErrorKind = "STORAGE_READ"
	// DeserializationError: a stored payload could not be decoded. Reported as a miss.
	KindDeserialization StoreErrorKind = "DESERIALIZATION"
	// GenerationError: a get-or-generate generator failed. Delivered to every waiter, never cached.
	KindGeneration StoreErrorKind = "GENERATION"
)
