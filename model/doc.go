// Package model holds a trained ruleset as an ordered list of rules over a
// frozen schema, and the three things a collaborator does with it:
// predicting a class per row, scoring per-class measures against labeled
// data, and saving/loading the whole thing as a self-describing binary
// stream.
package model
