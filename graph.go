package gantry

// DependencyGraph holds the reverse adjacency of the task set: for every
// task, the tasks that depend on it. Built once per load; queried by the
// interaction controller when a move cascades.
type DependencyGraph struct {
	dependents map[string][]string
}

// newDependencyGraph records a reverse edge dep -> task.ID for every entry
// in every task's dependency list. Edges to unknown ids are kept; they are
// simply never reachable from a loaded task.
func newDependencyGraph(tasks []*Task) *DependencyGraph {
	g := &DependencyGraph{dependents: make(map[string][]string)}
	for _, t := range tasks {
		for _, dep := range t.Dependencies {
			g.dependents[dep] = append(g.dependents[dep], t.ID)
		}
	}
	return g
}

// Dependents returns the ids of tasks that directly depend on id.
func (g *DependencyGraph) Dependents(id string) []string {
	return g.dependents[id]
}

// AllDependents returns the transitive closure of Dependents, in
// breadth-first order, excluding id itself. A visited set guards against
// cycles: a cyclic edge stops re-expanding rather than erroring, so cyclic
// task data stays renderable.
func (g *DependencyGraph) AllDependents(id string) []string {
	visited := map[string]bool{id: true}
	var out []string
	queue := append([]string(nil), g.dependents[id]...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		out = append(out, cur)
		queue = append(queue, g.dependents[cur]...)
	}
	return out
}
