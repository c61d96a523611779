// SPDX-License-Identifier: MIT
// Package matrix: adjacency and incidence builders for core.Graph.
//
// Row/column order follows g.Vertices() (ascending ids); incidence columns
// follow edge emission order. Both are symmetric in the undirected sense:
// A[i][j] == A[j][i] and each incidence column holds exactly two 1s.

package matrix

import "github.com/katalvlaran/lvlath-corpus/core"

// AdjacencyMatrix pairs a 0/1 adjacency matrix with its vertex index.
type AdjacencyMatrix struct {
	Mat         *Dense
	VertexIndex map[int]int // vertex id -> row
	Vertices    []int       // row -> vertex id
}

// BuildAdjacency returns the |V|×|V| adjacency matrix of g.
func BuildAdjacency(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vs := g.Vertices()
	mat, err := NewDense(len(vs), len(vs))
	if err != nil {
		return nil, err
	}
	index := make(map[int]int, len(vs))
	for i, v := range vs {
		index[v] = i
	}
	n := len(vs)
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		mat.data[i*n+j] = 1
		mat.data[j*n+i] = 1
	}

	return &AdjacencyMatrix{Mat: mat, VertexIndex: index, Vertices: vs}, nil
}

// Degree returns the row sum for vertex id, or ErrOutOfRange.
func (am *AdjacencyMatrix) Degree(id int) (int, error) {
	i, ok := am.VertexIndex[id]
	if !ok {
		return 0, ErrOutOfRange
	}
	row, err := am.Mat.Row(i)
	if err != nil {
		return 0, err
	}
	deg := 0
	for _, v := range row {
		deg += v
	}

	return deg, nil
}

// IncidenceMatrix is the |V|×|E| unsigned incidence matrix.
type IncidenceMatrix struct {
	Mat         *Dense
	VertexIndex map[int]int
	Edges       []core.Edge // column -> edge
}

// BuildIncidence returns the incidence matrix of g.
func BuildIncidence(g *core.Graph) (*IncidenceMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vs, es := g.Vertices(), g.Edges()
	mat, err := NewDense(len(vs), len(es))
	if err != nil {
		return nil, err
	}
	index := make(map[int]int, len(vs))
	for i, v := range vs {
		index[v] = i
	}
	for col, e := range es {
		mat.data[index[e.From]*len(es)+col] = 1
		mat.data[index[e.To]*len(es)+col] = 1
	}

	return &IncidenceMatrix{Mat: mat, VertexIndex: index, Edges: es}, nil
}

// IncidentEdges returns the edges whose column has a 1 in id's row, in column order.
func (im *IncidenceMatrix) IncidentEdges(id int) []core.Edge {
	i, ok := im.VertexIndex[id]
	if !ok {
		return nil
	}
	var out []core.Edge
	for col, e := range im.Edges {
		if im.Mat.data[i*im.Mat.c+col] == 1 {
			out = append(out, e)
		}
	}

	return out
}

// Opposites returns, for each edge incident to id in column order, its other
// endpoint. It is nil when id is not a vertex.
func (im *IncidenceMatrix) Opposites(id int) []int {
	var out []int
	for _, e := range im.IncidentEdges(id) {
		if e.From == id {
			out = append(out, e.To)
		} else {
			out = append(out, e.From)
		}
	}

	return out
}
