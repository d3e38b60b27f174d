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

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/getsentry/sentry-go"

	"github.com/stoffelc/imagej-omero/converter"
	"github.com/stoffelc/imagej-omero/core/client"
	"github.com/stoffelc/imagej-omero/core/logger"
	"github.com/stoffelc/imagej-omero/core/utils"
	"github.com/stoffelc/imagej-omero/scriptadapt"
)

var toolVersion = "1.0.0"

func main() {
	fmt.Println("===============================")
	fmt.Println("=  OMERO script runner        =")
	fmt.Println("===============================")

	ilog := &logger.StdOutLogger{}

	var argConfig = flag.String("config", "", "Path to connection config JSON (falls back to OMERO_CLIENT_CONFIG env var)")
	var argMode = flag.String("mode", "parse", "What to do: parse (publish parameters) or launch (execute the module)")
	var argTitle = flag.String("title", "", "Title of the module to run")
	var argSentryDSN = flag.String("sentry-dsn", "", "Sentry endpoint for error reporting, optional")
	var argEnvName = flag.String("env-name", "", "Environment name for error reporting")

	flag.Parse()

	if len(*argTitle) <= 0 {
		log.Fatalln("No module title specified")
	}
	if !utils.ItemInSlice(*argMode, []string{"parse", "launch"}) {
		log.Fatalf("Unknown mode: %v", *argMode)
	}

	if len(*argSentryDSN) > 0 {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         *argSentryDSN,
			Environment: *argEnvName,
			Release:     toolVersion,
		}); err != nil {
			ilog.Errorf("Sentry initialization failed: %v", err)
		}
	}

	module, ok := builtinModules[*argTitle]
	if !ok {
		log.Fatalf("Unknown module: %v. Available: %v", *argTitle, moduleTitles())
	}

	cfg, err := client.LoadConnectInfo(*argConfig)
	if err != nil {
		log.Fatalf("Failed to load connection config: %v", err)
	}

	sess, err := client.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to %v:%v: %v", cfg.Host, cfg.Port, err)
	}
	defer sess.Close()

	transfer := client.NewTransferService(nil)
	conv := converter.NewService(ilog, transfer, nil)
	adapter := scriptadapt.NewAdapter(ilog, conv, module.info, sess)

	switch *argMode {
	case "parse":
		err = adapter.Params()
	case "launch":
		err = adapter.Launch(module.runner)
	}

	if err != nil {
		log.Fatalf("Module %v failed in mode %v: %v", *argTitle, *argMode, err)
	}

	ilog.Infof("Module %v completed mode %v", *argTitle, *argMode)
}

func moduleTitles() []string {
	return utils.GetOrderedMapKeys(builtinModules)
}
