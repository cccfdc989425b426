/*
 * interfaces.go, part of gobox.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package box

import (
	"errors"
	"fmt"
	"strings"
)

//Errors

// Decorator is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else.
type Decorator interface {
	Error() string
	//Decorate adds the name of a function in the calling stack (plus, optionally,
	//some info in the format "FunctionName: Extra info") and returns the
	//decoration slice. If given an empty string, it just returns the current value.
	Decorate(string) []string
}

// ErrorKind classifies the errors returned by gobox.
type ErrorKind string

const (
	InvalidGeometry     ErrorKind = "invalid geometry"
	AmbiguousParameters ErrorKind = "ambiguous parameters"
	NotNormalized       ErrorKind = "box not normalized"
	DimensionMismatch   ErrorKind = "dimension mismatch"
	IndexOutOfRange     ErrorKind = "index out of range"
	InvalidCutoff       ErrorKind = "invalid cutoff"
	EmptyPointSet       ErrorKind = "empty point set"
)

// Error is the error type for gobox and its sub-packages.
type Error struct {
	kind     ErrorKind
	message  string
	deco     []string
	critical bool
}

// NewError returns a critical error of the given kind. The caller names,
// if given, start the decoration slice.
func NewError(kind ErrorKind, message string, callers ...string) *Error {
	return &Error{kind: kind, message: message, deco: callers, critical: true}
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	if err.message == "" {
		return "gobox: " + string(err.kind)
	}
	return fmt.Sprintf("gobox: %s: %s", err.kind, err.message)
}

// Kind returns the kind of error.
func (err *Error) Kind() ErrorKind { return err.kind }

// Critical returns whether the error is critical or it can be ignored.
func (err *Error) Critical() bool { return err.critical }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Trace returns the decoration as a single string, innermost function first.
func (err *Error) Trace() string {
	return strings.Join(err.deco, " <- ")
}

// Is reports whether target is a gobox error of the same kind, so
// errors.Is(err, ErrInvalidCutoff) works regardless of the message.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.kind == err.kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidGeometry     = &Error{kind: InvalidGeometry}
	ErrAmbiguousParameters = &Error{kind: AmbiguousParameters}
	ErrNotNormalized       = &Error{kind: NotNormalized}
	ErrDimensionMismatch   = &Error{kind: DimensionMismatch}
	ErrIndexOutOfRange     = &Error{kind: IndexOutOfRange}
	ErrInvalidCutoff       = &Error{kind: InvalidCutoff}
	ErrEmptyPointSet       = &Error{kind: EmptyPointSet}
)

// ErrDecorate decorates err with the caller's name, if err is a
// Decorator, and returns it unchanged otherwise.
func ErrDecorate(err error, caller string) error {
	var d Decorator
	if errors.As(err, &d) {
		d.Decorate(caller)
	}
	return err
}
