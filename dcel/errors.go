package dcel

import "errors"

// ErrParallelLine is returned when a line would-be seed is parallel to an
// existing seed line, which leaves no interior vertex to anchor the
// arrangement on.
var ErrParallelLine = errors.New("dcel: seed lines are parallel")

// ErrBrokenInvariant is returned by VerifyInvariants, wrapping a more
// specific description of which half-edge or vertex relation failed.
var ErrBrokenInvariant = errors.New("dcel: invariant violated")

// ErrHierarchyStale describes a fast, hierarchy-backed query attempted
// after AddLine has changed the arrangement but before the hierarchy has
// been rebuilt. No function in this module returns it:
// planar.Arrangement.LocateFast reports that case as (dcel.NoEdge, false).
var ErrHierarchyStale = errors.New("dcel: hierarchy is stale, call BuildHierarchy again")
