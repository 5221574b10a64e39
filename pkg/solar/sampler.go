package solar

import "time"

// StepInterval is the sampling resolution of the yearly series.
const StepInterval = 15 * time.Minute

// Sample is one timestep of the yearly solar series.
type Sample struct {
	Time      time.Time
	Elevation float64
	Azimuth   float64
}

// Sampler lazily produces the full-year solar series at 15-minute
// resolution, starting 06:00 on January 1 and ending with the last
// timestep inside the reference year. It is restartable via Reset.
type Sampler struct {
	year int
	cur  time.Time
}

// NewYearSampler returns a Sampler over the given reference year.
func NewYearSampler(year int) *Sampler {
	s := &Sampler{year: year}
	s.Reset()
	return s
}

// Reset rewinds the sampler to 06:00 January 1.
func (s *Sampler) Reset() {
	s.cur = time.Date(s.year, time.January, 1, 6, 0, 0, 0, time.UTC)
}

// Next returns the next sample in the series. The second return value is
// false once the series has moved past the reference year.
func (s *Sampler) Next() (Sample, bool) {
	if s.cur.Year() != s.year {
		return Sample{}, false
	}
	pos := PositionAt(s.cur)
	sample := Sample{Time: s.cur, Elevation: pos.Elevation, Azimuth: pos.Azimuth}
	s.cur = s.cur.Add(StepInterval)
	return sample, true
}

// Total returns the number of samples the series produces for the
// reference year: every 15-minute step from 06:00 January 1 through the
// end of the year.
func (s *Sampler) Total() int {
	start := time.Date(s.year, time.January, 1, 6, 0, 0, 0, time.UTC)
	end := time.Date(s.year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start) / StepInterval)
}
