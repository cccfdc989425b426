/*
 * graph.go, part of gobox.
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

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is a read-only view of a NeighborList as an undirected gonum graph.
// Node IDs are the point indexes, and there is an edge between each pair of
// neighbors. The neighbor list has to be symmetric, as the ones
// built by this package are.
type Graph struct {
	nl *NeighborList
}

// Graph returns the list as a gonum graph.
func (N *NeighborList) Graph() Graph {
	return Graph{nl: N}
}

func (G Graph) has(id int64) bool {
	return id >= 0 && id < int64(G.nl.Len())
}

// Node returns the node with the given ID, or nil if it doesn't exist.
func (G Graph) Node(id int64) graph.Node {
	if !G.has(id) {
		return nil
	}
	return simple.Node(id)
}

// Nodes returns all the nodes, in order.
func (G Graph) Nodes() graph.Nodes {
	ns := make([]graph.Node, G.nl.Len())
	for i := range ns {
		ns[i] = simple.Node(i)
	}
	return iterator.NewOrderedNodes(ns)
}

// From returns the neighbors of the node id.
func (G Graph) From(id int64) graph.Nodes {
	if !G.has(id) {
		return iterator.NewOrderedNodes(nil)
	}
	l := G.nl.lists[id]
	ns := make([]graph.Node, len(l))
	for i, j := range l {
		ns[i] = simple.Node(j)
	}
	return iterator.NewOrderedNodes(ns)
}

// HasEdgeBetween returns whether xid and yid are neighbors.
func (G Graph) HasEdgeBetween(xid, yid int64) bool {
	return G.has(xid) && G.has(yid) && G.nl.Contains(int(xid), int(yid))
}

// Edge returns the edge from uid to vid, or nil if they are not neighbors.
func (G Graph) Edge(uid, vid int64) graph.Edge {
	if !G.HasEdgeBetween(uid, vid) {
		return nil
	}
	return simple.Edge{F: simple.Node(uid), T: simple.Node(vid)}
}

// EdgeBetween is the same as Edge, as the graph is undirected.
func (G Graph) EdgeBetween(xid, yid int64) graph.Edge {
	return G.Edge(xid, yid)
}

// Clusters returns the groups of points connected through neighbor
// relations, each sorted, with the groups sorted by their first point.
// Isolated points form their own clusters.
func (N *NeighborList) Clusters() [][]int {
	cc := topo.ConnectedComponents(N.Graph())
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		ids := make([]int, len(c))
		for i, n := range c {
			ids[i] = int(n.ID())
		}
		sort.Ints(ids)
		ret = append(ret, ids)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}
