// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// The two error kinds this bridge distinguishes. Communication errors (a
// remote call failed - network, permission, session) always propagate to the
// caller, because a half-uploaded image corrupts the surrounding operation.
// Conversion errors (no applicable coercion rule) are logged by the caller
// and represented as a nil result, so converting a batch of independent
// parameters is not aborted by one bad field.
package omeroerr

import (
	"errors"
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// Neater error handling

// See:
// https://blog.questionable.services/article/http-handler-error-handling-revisited/

// CommunicationError - a remote OMERO call failed. Wraps the underlying cause.
type CommunicationError struct {
	Op  string // the remote operation that failed, eg "image.upload"
	Err error
}

func (e CommunicationError) Error() string {
	return fmt.Sprintf("error communicating with OMERO during %v: %v", e.Op, e.Err)
}

func (e CommunicationError) Unwrap() error {
	return e.Err
}

// ConversionError - no rule could convert the given value to the requested
// type. These are never raised across a batch boundary, only logged.
type ConversionError struct {
	From string
	To   string
}

func (e ConversionError) Error() string {
	return fmt.Sprintf("cannot convert: %v to %v", e.From, e.To)
}

func MakeCommunicationError(op string, err error) CommunicationError {
	return CommunicationError{
		Op:  op,
		Err: err,
	}
}

func MakeConversionError(from string, to string) ConversionError {
	return ConversionError{
		From: from,
		To:   to,
	}
}

// IsCommunicationError - true if err is (or wraps) a CommunicationError
func IsCommunicationError(err error) bool {
	var commErr CommunicationError
	return errors.As(err, &commErr)
}
