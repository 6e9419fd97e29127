/*
Copyright 2025 Moneta Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_PROJECT_NAME = "Moneta"
	DEFAULT_LOG_LEVEL    = "info"
	DEFAULT_PRECISION    = 2
	DEFAULT_PROMPT       = "> "
)

var ConfigStore atomic.Value

type LoggingConfig struct {
	Level string `json:"level" envconfig:"MONETA_LOG_LEVEL"`
}

type SimulationConfig struct {
	// Prompt is printed by the interactive front end before each read.
	Prompt string `json:"prompt" envconfig:"MONETA_SIM_PROMPT"`
	// DisplayPrecision is the number of decimal places balances are
	// rendered with. It never affects stored amounts.
	DisplayPrecision int32 `json:"display_precision" envconfig:"MONETA_SIM_DISPLAY_PRECISION"`
}

type Configuration struct {
	ProjectName string           `json:"project_name" envconfig:"MONETA_PROJECT_NAME"`
	Logging     LoggingConfig    `json:"logging"`
	Simulation  SimulationConfig `json:"simulation"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return errors.Wrap(err, "opening config file")
		}
		defer f.Close()
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return errors.Wrap(err, "decoding config file")
		}
	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("moneta", &cnf)
	if err != nil {
		return errors.Wrap(err, "processing env config")
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return nil
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded. Create a json file called moneta.json with your config")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		cnf.ProjectName = DEFAULT_PROJECT_NAME
	}
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)

	if cnf.Logging.Level == "" {
		cnf.Logging.Level = DEFAULT_LOG_LEVEL
	}
	level, err := logrus.ParseLevel(strings.TrimSpace(cnf.Logging.Level))
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", cnf.Logging.Level)
	}
	logrus.SetLevel(level)

	if cnf.Simulation.Prompt == "" {
		cnf.Simulation.Prompt = DEFAULT_PROMPT
	}
	if cnf.Simulation.DisplayPrecision <= 0 {
		cnf.Simulation.DisplayPrecision = DEFAULT_PRECISION
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	if err := mockConfig.validateAndAddDefaults(); err != nil {
		log.Println("mock config error", err)
	}
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
