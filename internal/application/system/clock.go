package system

// maxWrap bounds the wrap point when animation periods share no small multiple
const maxWrap = 1 << 20

// FrameClock is the global animation counter. It wraps at a multiple of
// every animation period so no track skips a frame at the wrap.
type FrameClock struct {
	count int
	wrap  int
}

// NewFrameClock picks the smallest multiple of the periods' LCM that is at
// least minWrap. Non-positive periods are ignored.
func NewFrameClock(minWrap int, periods ...int) *FrameClock {
	l := 1
	for _, p := range periods {
		if p <= 0 {
			continue
		}
		next := lcm(l, p)
		if next > maxWrap {
			continue
		}
		l = next
	}

	minWrap = max(minWrap, 1)
	wrap := ((minWrap + l - 1) / l) * l
	return &FrameClock{wrap: wrap}
}

// Count returns the current frame
func (c *FrameClock) Count() int {
	return c.count
}

// Wrap returns the frame the counter wraps back to zero at
func (c *FrameClock) Wrap() int {
	return c.wrap
}

// Advance moves the counter one frame forward
func (c *FrameClock) Advance() {
	c.count = (c.count + 1) % c.wrap
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
