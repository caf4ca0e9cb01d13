// Package eqtheory decides conjunctions of type equality constraints.
//
// It is a small stand-in for a full type-constraint solver: every
// constraint equates two terms, and a conjunction is unsatisfiable
// exactly when it makes two different concrete types equal. Cores are
// the shortest chain of constraints linking such a pair.
package eqtheory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sjslang/sjsc/pkg/theorysolver"
)

// Assignment maps each type variable to the concrete type it was
// unified with. Variables that were never unified with a concrete type
// are absent.
type Assignment map[string]string

func (a Assignment) String() string {
	vars := make([]string, 0, len(a))
	for v := range a {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	var b strings.Builder
	for i, v := range vars {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", v, a[v])
	}
	return b.String()
}

// Theory checks equality constraints by union-find. It keeps no state
// between checks.
type Theory struct{}

var _ theorysolver.Theory[Constraint, Assignment] = Theory{}

type edge struct {
	to         string
	constraint int
}

// classes is a union-find over terms in which each class remembers a
// concrete type term it contains.
type classes struct {
	parent   map[string]string
	concrete map[string]string
}

func (u *classes) find(t string) string {
	if _, ok := u.parent[t]; !ok {
		u.parent[t] = t
		if IsConcrete(t) {
			u.concrete[t] = t
		}
	}
	for u.parent[t] != t {
		u.parent[t] = u.parent[u.parent[t]]
		t = u.parent[t]
	}
	return t
}

// union merges the classes of a and b. If both contain a concrete type
// and the types differ, it returns them and leaves the classes apart.
func (u *classes) union(a, b string) (string, string, bool) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return "", "", false
	}
	ca, okA := u.concrete[ra]
	cb, okB := u.concrete[rb]
	if okA && okB && ca != cb {
		return ca, cb, true
	}
	u.parent[rb] = ra
	if !okA && okB {
		u.concrete[ra] = cb
	}
	return "", "", false
}

func (Theory) Check(ctx context.Context, constraints []Constraint) (theorysolver.Result[Constraint, Assignment], error) {
	if err := ctx.Err(); err != nil {
		return theorysolver.Result[Constraint, Assignment]{}, err
	}

	u := classes{parent: make(map[string]string), concrete: make(map[string]string)}
	graph := make(map[string][]edge)
	for i, c := range constraints {
		graph[c.LHS] = append(graph[c.LHS], edge{to: c.RHS, constraint: i})
		graph[c.RHS] = append(graph[c.RHS], edge{to: c.LHS, constraint: i})
		if from, to, clash := u.union(c.LHS, c.RHS); clash {
			return theorysolver.Unsat[Constraint, Assignment](chain(constraints, graph, from, to)), nil
		}
	}

	model := make(Assignment)
	for t := range u.parent {
		if IsConcrete(t) {
			continue
		}
		if ct, ok := u.concrete[u.find(t)]; ok {
			model[t] = ct
		}
	}
	return theorysolver.Sat[Constraint](model), nil
}

// chain returns the constraints along a shortest path from one term to
// another in graph.
func chain(constraints []Constraint, graph map[string][]edge, from, to string) []Constraint {
	type step struct {
		prev       string
		constraint int
	}
	visited := map[string]step{from: {constraint: -1}}
	queue := []string{from}
	for len(queue) > 0 && queue[0] != to {
		t := queue[0]
		queue = queue[1:]
		for _, e := range graph[t] {
			if _, ok := visited[e.to]; ok {
				continue
			}
			visited[e.to] = step{prev: t, constraint: e.constraint}
			queue = append(queue, e.to)
		}
	}

	var core []Constraint
	for t := to; t != from; t = visited[t].prev {
		core = append(core, constraints[visited[t].constraint])
	}
	for i, j := 0, len(core)-1; i < j; i, j = i+1, j-1 {
		core[i], core[j] = core[j], core[i]
	}
	return core
}
