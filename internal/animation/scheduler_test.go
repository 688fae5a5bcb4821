package animation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"specto/internal/animation"
	"specto/pkg/geom"
	"specto/pkg/scenetest"
)

type SchedulerSuite struct {
	suite.Suite

	scheduler *animation.Scheduler
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerSuite))
}

func (s *SchedulerSuite) SetupTest() {
	s.scheduler = animation.New(nil)
}

type countdown struct {
	remaining int
	steps     int
}

func (c *countdown) Step() bool {
	c.steps++
	c.remaining--
	return c.remaining <= 0
}

func (s *SchedulerSuite) TestTasksFinishAndAreDropped() {
	short := &countdown{remaining: 2}
	long := &countdown{remaining: 5}
	s.scheduler.Add(short)
	s.scheduler.Add(long)

	s.Equal(2, s.scheduler.Active())

	s.scheduler.Tick()
	s.scheduler.Tick()
	s.Equal(1, s.scheduler.Active(), "short task finished after two ticks")
	s.Equal(2, short.steps)

	s.scheduler.Tick()
	s.scheduler.Tick()
	s.scheduler.Tick()
	s.Equal(0, s.scheduler.Active())
	s.Equal(5, long.steps)

	s.scheduler.Tick()
	s.Equal(5, long.steps, "finished tasks are not stepped again")
}

func (s *SchedulerSuite) TestCancelStopsTask() {
	task := &countdown{remaining: 10}
	cancel := s.scheduler.Add(task)

	s.scheduler.Tick()
	cancel()
	cancel() // idempotent
	s.scheduler.Tick()

	s.Equal(1, task.steps)
	s.Equal(0, s.scheduler.Active())
}

func (s *SchedulerSuite) TestScaleInShrinksThenGrows() {
	world := scenetest.NewWorld()
	node := world.Factory.NewGroup("marker")
	node.SetScale(geom.Uniform(1))

	task := animation.NewScaleIn(node)
	s.Equal(geom.Vec3{}, node.Scale(), "node starts at zero scale")

	s.Require().False(task.Step())
	s.InDelta(0.05, node.Scale().X, 1e-9)
	s.InDelta(0.05, node.Scale().Y, 1e-9)

	for i := 0; i < 18; i++ {
		s.Require().False(task.Step())
	}
	s.InDelta(0.95, node.Scale().X, 1e-9)

	s.True(task.Step(), "twentieth step completes the animation")
	s.Equal(geom.Uniform(1), node.Scale())

	s.True(task.Step(), "stepping past completion stays done")
	s.Equal(geom.Uniform(1), node.Scale())
}

func (s *SchedulerSuite) TestScaleInPreservesNonUniformTarget() {
	world := scenetest.NewWorld()
	node := world.Factory.NewGroup("bar")
	node.SetScale(geom.Vec3{X: 0.8, Y: 2.4, Z: 0.8})

	task := animation.NewScaleIn(node)
	for !task.Step() {
	}

	s.Equal(geom.Vec3{X: 0.8, Y: 2.4, Z: 0.8}, node.Scale())
}
