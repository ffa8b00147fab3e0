// Package roadnet plans road network growth with a greedy
// traffic-assignment loop.
//
// A network of junctions joined by undirected roads is loaded with synthetic
// trips along shortest paths. Every candidate road is then scored by the
// travel length it would save, and the best ones are built. The loop repeats
// on the grown network until the candidates run out or the round cap is hit.
//
// Packages:
//
//	core/      Graph, Edge, canonical EdgeKey, EdgeRecord snapshots
//	dijkstra/  single-source shortest paths and the memoized Oracle
//	bfs/       breadth-first traversal and connected components
//	builder/   scenario networks: edge lists, G(n,p), Watts–Strogatz
//	traffic/   trip assignment into per-road load tables
//	benefit/   direct and indirect benefit of a candidate road
//	selector/  the assign → score → commit state machine
//	recorder/  in-memory and CSV recorders for run snapshots
//	config/    defaults, validation, .env and ROADNET_* loading
//	server/    gin HTTP facade
//	cmd/roadplanner  command-line runner and server entry point
//
// Quick example, the five-junction reference network:
//
//	    0───6───1
//	    │       │
//	    9      11
//	    │       │
//	    4───7───3
//	    │
//	   10
//	    │
//	    2
//
//	g, cands, _ := builder.Scenario5()
//	s, _ := selector.New(g, cands)
//	res, _ := s.Run(ctx)
package roadnet
