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

package client

import (
	"encoding/json"
	"fmt"
	"os"
)

// ConnectInfo - everything needed to open an OMERO session. SessionID is
// optional, if set we join an existing server-side session instead of logging
// in with user/pass.
type ConnectInfo struct {
	Host      string
	Port      int
	User      string
	Pass      string
	SessionID string
	Encrypted bool
}

var configEnvVar = "OMERO_CLIENT_CONFIG"

// DefaultPort - the standard OMERO server port
const DefaultPort = 4064

// LoadConnectInfo reads connection config using one of two methods:
// - If configPath is not empty, it loads that file, which must deserialise to a ConnectInfo structure as above
// - If the config path is empty, it tries to load the config from an environment variable: OMERO_CLIENT_CONFIG
func LoadConnectInfo(configPath string) (ConnectInfo, error) {
	cfg := ConnectInfo{}

	if len(configPath) > 0 {
		cfgBytes, err := os.ReadFile(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %v. Error: %v", configPath, err)
		}

		err = json.Unmarshal(cfgBytes, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config: %v", err)
		}
	} else {
		cfgStr := os.Getenv(configEnvVar)

		if len(cfgStr) <= 0 {
			return cfg, fmt.Errorf("no config path and no environment variable (%v) defined. Cannot connect", configEnvVar)
		}

		err := json.Unmarshal([]byte(cfgStr), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config from environment variable: %v. Error: %v", configEnvVar, err)
		}
	}

	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	return cfg, nil
}
