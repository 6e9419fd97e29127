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

package moneta

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/moneta-ledger/moneta/config"
	"github.com/moneta-ledger/moneta/model"
	"github.com/moneta-ledger/moneta/registry"
)

// Moneta is the ledger service: the registry of banks, users, accounts and
// money requests, plus the engine that moves funds between them. State lives
// in memory only; it is created empty and discarded at process exit.
type Moneta struct {
	// mu serializes the mutating engine operations. The simulation front
	// end is a blocking read-eval loop, so contention never happens there,
	// but a transfer must still look atomic to any concurrent observer.
	mu        sync.Mutex
	registry  *registry.Registry
	sessionID string
}

// NewMoneta initializes a new ledger service over the provided registry.
// Configuration must have been loaded (or mocked) before calling.
func NewMoneta(reg *registry.Registry) (*Moneta, error) {
	cnf, err := config.Fetch()
	if err != nil {
		return nil, err
	}

	sessionID := model.GenerateUUIDWithSuffix("sim")
	logrus.Infof("%s ledger session %s started", cnf.ProjectName, sessionID)

	return &Moneta{registry: reg, sessionID: sessionID}, nil
}

// SessionID returns the generated identifier of this ledger session.
func (m *Moneta) SessionID() string {
	return m.sessionID
}
