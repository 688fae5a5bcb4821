package domain

// LayerName identifies one of the overlay's three layers.
type LayerName string

// The overlay's layers. Audit is strictly additive for the session;
// confidence and scenario are idempotent snapshots.
const (
	LayerAudit      LayerName = "audit"
	LayerConfidence LayerName = "confidence"
	LayerScenario   LayerName = "scenario"
)

// LayerNames lists all layers in presentation order.
func LayerNames() []LayerName {
	return []LayerName{LayerAudit, LayerConfidence, LayerScenario}
}

// String returns the wire representation of the layer name.
func (n LayerName) String() string {
	return string(n)
}
