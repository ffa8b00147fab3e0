// Package server exposes the planner over HTTP with gin.
//
// Routes (all JSON):
//
//	GET  /api/v1/health   liveness
//	POST /api/v1/traffic  one traffic assignment, no mutation
//	POST /api/v1/score    assignment plus candidate ranking, no commit
//	POST /api/v1/plan     full greedy run; returns the grown network
//
// Request body:
//
//	{"edges": [{"from": "0", "to": "1", "weight": 6}],
//	 "candidates": [["0", "2"]],
//	 "config": {"agents": 100, "rounds": 200, "roads_per_round": 1}}
//
// config fields override the server defaults one by one. Malformed input
// answers 400, an unusable network 422, a cancelled request 503. Every
// failure body is {"error": "..."}. Each request builds its own network, so
// concurrent requests never share mutable state.
package server
