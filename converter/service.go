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

// Bidirectional conversion between the local (ImageJ-side) object model and
// OMERO's tagged value union. Everything here runs synchronously on the
// caller's goroutine. The only side-effecting paths are resource upload
// (outbound) and resource download (inbound) - those go through the
// TransferService using the session the caller passed in, and their failures
// propagate. Plain coercion misses never fail a call, they are logged and
// yield nil, so a batch of script parameters survives one bad field.
package converter

import (
	"github.com/stoffelc/imagej-omero/core/client"
	"github.com/stoffelc/imagej-omero/core/logger"
)

// Service - conversion service, safe to share as long as the sessions passed
// to its methods are not shared unsafely themselves
type Service struct {
	log      logger.ILogger
	transfer client.TransferService
	registry ObjectRegistry
}

// NewService - registry may be nil if no singleton-style objects are
// published to scripts
func NewService(log logger.ILogger, transfer client.TransferService, registry ObjectRegistry) *Service {
	if registry == nil {
		registry = &SimpleRegistry{}
	}
	return &Service{
		log:      log,
		transfer: transfer,
		registry: registry,
	}
}
