package clocktest

import (
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/exectimer/clock"
)

// Mock is a stretchr mock for a clock.  In addition to implementing clock.Interface and supplying
// mock behavior, other methods that make mocking a bit easier are supplied.
type Mock struct {
	mock.Mock
}

var _ clock.Interface = (*Mock)(nil)

func (m *Mock) Now() time.Time {
	return m.Called().Get(0).(time.Time)
}

func (m *Mock) OnNow(v time.Time) *mock.Call {
	return m.On("Now").Return(v)
}

func (m *Mock) Sleep(d time.Duration) {
	m.Called(d)
}

func (m *Mock) OnSleep(d time.Duration) *mock.Call {
	return m.On("Sleep", d)
}

// MockStopwatch is a stretchr mock for the clock.Stopwatch interface
type MockStopwatch struct {
	mock.Mock
}

var _ clock.Stopwatch = (*MockStopwatch)(nil)

func (m *MockStopwatch) Elapsed() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

func (m *MockStopwatch) OnElapsed(d time.Duration) *mock.Call {
	return m.On("Elapsed").Return(d)
}
