package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/mototrack/mototrack/services/tracker/mocks"
	"github.com/stretchr/testify/assert"
)

func testSpecs() []ViewportSpec {
	center := models.Coordinates{Latitude: 14.5995, Longitude: 120.9842}
	return []ViewportSpec{
		{Name: ViewportOverview, Center: center, Zoom: overviewZoom, Primary: true},
		{Name: ViewportFull, Center: center, Zoom: fullZoom},
	}
}

func TestEnsureViewport_ContainerAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockMapRenderer(ctrl)
	renderer.EXPECT().ContainerReady(ViewportOverview).Return(false)

	r := NewViewportRegistry(renderer, testSpecs())
	vp := r.EnsureViewport(ViewportOverview, testSpecs()[0].Center, overviewZoom)

	assert.Nil(t, vp)
	assert.True(t, r.MissingAny())
}

func TestEnsureViewport_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockMapRenderer(ctrl)
	// the container is only checked on the creating call
	renderer.EXPECT().ContainerReady(ViewportOverview).Return(true).Times(1)

	r := NewViewportRegistry(renderer, testSpecs())
	center := testSpecs()[0].Center

	first := r.EnsureViewport(ViewportOverview, center, overviewZoom)
	second := r.EnsureViewport(ViewportOverview, center, overviewZoom)

	assert.NotNil(t, first)
	assert.Same(t, first, second)
	assert.True(t, first.Primary)
	assert.Equal(t, overviewZoom, first.Zoom)
}

func TestKick_RunsBoundedSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockMapRenderer(ctrl)
	renderer.EXPECT().ContainerReady(gomock.Any()).Return(false).AnyTimes()

	r := NewViewportRegistry(renderer, testSpecs())

	var delays []time.Duration
	r.afterFunc = func(d time.Duration, f func()) {
		delays = append(delays, d)
		f()
	}

	r.Kick("test")

	assert.Equal(t, retryDelays, delays)
	assert.True(t, r.MissingAny())
}

func TestKick_CreatesOnceContainersAppear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockMapRenderer(ctrl)
	renderer.EXPECT().ContainerReady(gomock.Any()).Return(true).AnyTimes()

	r := NewViewportRegistry(renderer, testSpecs())
	r.afterFunc = func(d time.Duration, f func()) { f() }

	r.Kick("test")

	assert.False(t, r.MissingAny())
	assert.Len(t, r.All(), 2)
}

func TestKick_NoopWhenAllPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockMapRenderer(ctrl)
	renderer.EXPECT().ContainerReady(gomock.Any()).Return(true).AnyTimes()

	r := NewViewportRegistry(renderer, testSpecs())
	r.afterFunc = func(d time.Duration, f func()) { f() }
	r.Kick("warmup")

	scheduled := 0
	r.afterFunc = func(d time.Duration, f func()) { scheduled++ }
	r.Kick("redundant")

	assert.Zero(t, scheduled)
}

func TestSetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewViewportRegistry(mocks.NewMockMapRenderer(ctrl), testSpecs())

	assert.Empty(t, r.Active())
	r.SetActive(ViewportFull)
	assert.Equal(t, ViewportFull, r.Active())
}
