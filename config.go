/*
 * config.go, part of gobox.
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
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/caarlos0/env/v11"
)

// DefaultTolerance is the absolute tolerance used when none is configured.
const DefaultTolerance = 1e-8

// Config holds the process-wide defaults of gobox.
type Config struct {
	// Tolerance is the absolute tolerance new boxes get for their
	// equality comparisons.
	Tolerance float64 `env:"GOBOX_TOLERANCE" envDefault:"1e-8"`
	// Cpus is the default number of goroutines used by the concurrent
	// searches in dvect and nlist. 0 means runtime.NumCPU().
	Cpus int `env:"GOBOX_CPUS" envDefault:"0"`
}

// LoadConfig reads the configuration from environment variables.
// On error, the defaults are returned along with the error.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{Tolerance: DefaultTolerance, Cpus: runtime.NumCPU()}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Tolerance < 0 {
		return Config{Tolerance: DefaultTolerance, Cpus: runtime.NumCPU()}, fmt.Errorf("negative tolerance %g", cfg.Tolerance)
	}
	if cfg.Cpus <= 0 {
		cfg.Cpus = runtime.NumCPU()
	}
	return cfg, nil
}

var defaultConfig = sync.OnceValue(func() Config {
	cfg, err := LoadConfig()
	if err != nil {
		log.Printf("gobox: %v. Using defaults", err)
	}
	return cfg
})

// DefaultConfig returns the configuration read from the environment the
// first time it was needed.
func DefaultConfig() Config {
	return defaultConfig()
}
