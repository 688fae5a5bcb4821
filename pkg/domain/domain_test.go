package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"specto/pkg/domain"
	"specto/pkg/geom"
)

type DomainSuite struct {
	suite.Suite
}

func TestDomainSuite(t *testing.T) {
	suite.Run(t, new(DomainSuite))
}

func (s *DomainSuite) TestInteractionTypes() {
	s.Equal("optimize", domain.InteractionOptimize.String())
	s.Equal("policy_change", domain.InteractionPolicyChange.String())
	s.Contains(domain.InteractionTypes(), domain.InteractionOther)
	s.Len(domain.InteractionTypes(), 3)
}

func (s *DomainSuite) TestKnownIsFalseForUndeclaredTypes() {
	for _, t := range domain.InteractionTypes() {
		s.True(t.Known(), t)
	}
	s.False(domain.InteractionType("teleport").Known())
	s.False(domain.InteractionType("").Known())
}

func (s *DomainSuite) TestRecordClone() {
	rec := domain.AuditRecord{
		ID:        7,
		Type:      domain.InteractionOptimize,
		Position:  geom.Vec3{X: 1, Y: 2, Z: 3},
		Metadata:  map[string]any{"hub": "SP", "delta": 1.2},
		Timestamp: time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC),
	}

	clone := rec.Clone()
	clone.Metadata["hub"] = "RJ"

	s.Equal("SP", rec.Metadata["hub"], "clone owns its metadata map")
	s.Equal(rec.ID, clone.ID)
	s.Equal(rec.Position, clone.Position)
	s.Equal(rec.Timestamp, clone.Timestamp)
}

func (s *DomainSuite) TestRecordCloneNilMetadata() {
	rec := domain.AuditRecord{ID: 1, Type: domain.InteractionOther}

	clone := rec.Clone()

	s.Nil(clone.Metadata)
}

func (s *DomainSuite) TestScenarioDatum() {
	cases := []struct {
		name     string
		baseline float64
		proposed float64
		delta    float64
		improved bool
	}{
		{name: "gain", baseline: 10, proposed: 12.5, delta: 2.5, improved: true},
		{name: "loss", baseline: 10, proposed: 8, delta: -2, improved: false},
		{name: "flat", baseline: 4, proposed: 4, delta: 0, improved: false},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			d := domain.ScenarioDatum{BaselineVal: tc.baseline, ProposedVal: tc.proposed}
			s.InDelta(tc.delta, d.Delta(), 1e-9)
			s.Equal(tc.improved, d.Improved())
		})
	}
}

func (s *DomainSuite) TestFloat() {
	p := domain.Float(0.42)
	s.Require().NotNil(p)
	s.Equal(0.42, *p)
}

func (s *DomainSuite) TestLayerNames() {
	names := domain.LayerNames()
	s.Equal([]domain.LayerName{domain.LayerAudit, domain.LayerConfidence, domain.LayerScenario}, names)
	s.Equal("audit", domain.LayerAudit.String())
}
