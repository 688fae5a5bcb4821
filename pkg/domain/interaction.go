// Package domain defines the value types the governance overlay exchanges
// with its host: interaction records, visualization inputs, and layer names.
// Types here carry no scene-graph state and are safe to retain across calls.
package domain

// InteractionType classifies a logged user/decision action.
//
// The set is open on input: values outside the declared constants are legal
// and render with the default marker shape rather than failing.
type InteractionType string

// Interaction types with a dedicated marker shape.
const (
	// InteractionOptimize marks an optimization run accepted by the user.
	InteractionOptimize InteractionType = "optimize"
	// InteractionPolicyChange marks a governance policy adjustment.
	InteractionPolicyChange InteractionType = "policy_change"
	// InteractionOther marks any action without a dedicated shape.
	InteractionOther InteractionType = "other"
)

// InteractionTypes lists the declared interaction types, one per dedicated
// marker shape.
func InteractionTypes() []InteractionType {
	return []InteractionType{InteractionOptimize, InteractionPolicyChange, InteractionOther}
}

// String returns the wire representation of the interaction type.
func (t InteractionType) String() string {
	return string(t)
}

// Known reports whether t is one of the declared interaction types.
// Unknown types are still accepted everywhere; this only exists for
// callers that want to surface the fallback in logs.
func (t InteractionType) Known() bool {
	switch t {
	case InteractionOptimize, InteractionPolicyChange, InteractionOther:
		return true
	}
	return false
}
