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

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moneta-ledger/moneta"
	"github.com/moneta-ledger/moneta/config"
	"github.com/moneta-ledger/moneta/registry"
)

// Moneta represents the CLI application, encapsulating the root Cobra command.
type Moneta struct {
	cmd *cobra.Command
}

// monetaInstance holds the ledger service and its configuration, shared by
// every subcommand.
type monetaInstance struct {
	moneta *moneta.Moneta
	cnf    *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the
// error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and initializes the ledger service before
// any command runs.
func preRun(app *monetaInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		newMoneta, err := setupMoneta()
		if err != nil {
			log.Fatal(err)
		}

		app.moneta = newMoneta
		app.cnf = cnf

		return nil
	}
}

// setupMoneta creates the ledger service over a fresh in-memory registry.
func setupMoneta() (*moneta.Moneta, error) {
	reg := registry.NewRegistry()
	newMoneta, err := moneta.NewMoneta(reg)
	if err != nil {
		return nil, fmt.Errorf("error creating moneta: %v", err)
	}
	return newMoneta, nil
}

// NewCLI creates the command-line interface for the Moneta simulation.
func NewCLI() *Moneta {
	var configFile string
	b := &monetaInstance{}

	var rootCmd = &cobra.Command{
		Use:   "moneta",
		Short: "In-memory multi-bank ledger simulation",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./moneta.json", "Configuration file for the simulation")
	rootCmd.PersistentPreRunE = preRun(b, &configFile)

	rootCmd.AddCommand(replCommands(b))

	return &Moneta{cmd: rootCmd}
}

func (w Moneta) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
