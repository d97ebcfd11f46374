// Package metadata holds the per-type member descriptors that drive
// serialization.
//
// A Registry maps a type to the ordered list of Descriptor values declared
// for it, plus the optional per-type constructor and lifecycle hooks. The
// registry is written during program initialization and read afterwards;
// reads may run concurrently once declaration is finished.
package metadata
