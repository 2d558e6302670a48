package state

// StyleCell holds the latest value of one style control (width slider or
// color picker). It always has a value: the control's initial one until the
// user changes it.
type StyleCell struct {
	value     string
	observers []func(string)
}

func NewStyleCell(initial string) *StyleCell {
	return &StyleCell{value: initial}
}

// Latest returns the value currently held.
func (c *StyleCell) Latest() string { return c.value }

// Set records a user-driven change and notifies observers if the value
// actually changed.
func (c *StyleCell) Set(v string) {
	if v == c.value {
		return
	}
	c.value = v
	for _, fn := range c.observers {
		fn(v)
	}
}

// OnChange registers fn to be called after each change.
func (c *StyleCell) OnChange(fn func(string)) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}
