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

package nlist

import box "github.com/rmera/gobox"

//Options contains the options for building neighbor lists.
type Options struct {
	binMult float64
	initCap int
	growth  int
	cpus    int
	builder Builder
	verbose bool
}

//DefaultOptions returns Options with bins as wide as the cutoff,
//room for 20 neighbors per point (growing by 10 when needed),
//the CellList builder, and the number of CPUs from the package
//configuration.
func DefaultOptions() *Options {
	r := new(Options)
	r.binMult = 1
	r.initCap = 20
	r.growth = 10
	r.cpus = box.DefaultConfig().Cpus
	r.builder = CellList{}
	return r
}

//Returns the ratio between the bin width and the cutoff,
//and sets it to a new value, if a positive one is given.
//Values under 1 give more bins, each of them searched over a
//wider neighborhood.
func (O *Options) BinSizeMultiplier(f ...float64) float64 {
	if len(f) > 0 && f[0] > 0 {
		O.binMult = f[0]
	}
	return O.binMult
}

//Returns the initial capacity of the list for each point,
//and sets it to a new value, if given.
func (O *Options) InitialCapacity(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.initCap = n[0]
	}
	return O.initCap
}

//Returns how many slots are added to a full neighbor list,
//and sets it to a new value, if given.
func (O *Options) Growth(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.growth = n[0]
	}
	return O.growth
}

//Returns the number of gorutines to be used,
//and sets it to a new value, if given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

//Returns the builder in use, and sets it to a new value, if given.
func (O *Options) Builder(b ...Builder) Builder {
	if len(b) > 0 && b[0] != nil {
		O.builder = b[0]
	}
	return O.builder
}

//Returns whether the builders should log what they do,
//and sets it to a new value, if given.
func (O *Options) Verbose(v ...bool) bool {
	if len(v) > 0 {
		O.verbose = v[0]
	}
	return O.verbose
}

func options(opts []*Options) *Options {
	if len(opts) > 0 && opts[0] != nil {
		return opts[0]
	}
	return DefaultOptions()
}
