package engine

// Aliases exposing internals to the black-box tests in engine_test.

// PlanChunks exposes the chunk planner.
var PlanChunks = planChunks
