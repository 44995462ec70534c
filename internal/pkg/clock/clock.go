package clock

import "time"

type Clock struct{}

func New() *Clock {
	return &Clock{}
}

// Now - текущее время в UTC с точностью до секунды, как в ответах Uber.
func (c *Clock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
