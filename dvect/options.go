/*
 * options.go, part of gobox.
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

package dvect

import box "github.com/rmera/gobox"

//Options contains the options for the minimum image functions.
type Options struct {
	strategy Strategy
	cpus     int
}

//DefaultOptions returns Options that use the Tabulated strategy
//with the number of CPUs from the package configuration.
func DefaultOptions() *Options {
	r := new(Options)
	r.strategy = Tabulated{}
	r.cpus = box.DefaultConfig().Cpus
	return r
}

//Returns the strategy in use, and sets it to a new value, if given.
func (O *Options) Strategy(s ...Strategy) Strategy {
	if len(s) > 0 && s[0] != nil {
		O.strategy = s[0]
	}
	return O.strategy
}

//Returns the number of gorutines to be used,
//and sets it to a new value, if given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

//strat returns the strategy, with the CPU count of the options
//given to it, if it takes one.
func (O *Options) strat() Strategy {
	if t, ok := O.strategy.(Tabulated); ok && t.Cpus <= 0 {
		t.Cpus = O.cpus
		return t
	}
	return O.strategy
}

func options(opts []*Options) *Options {
	if len(opts) > 0 && opts[0] != nil {
		return opts[0]
	}
	return DefaultOptions()
}
