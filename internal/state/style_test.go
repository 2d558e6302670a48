package state

import "testing"

func TestStyleCellStartsWithInitialValue(t *testing.T) {
	c := NewStyleCell("3")
	if got := c.Latest(); got != "3" {
		t.Fatalf("Latest() = %q, want %q", got, "3")
	}
}

func TestStyleCellNotifiesOnChangeOnly(t *testing.T) {
	c := NewStyleCell("#000000")
	var seen []string
	c.OnChange(func(v string) { seen = append(seen, v) })
	c.OnChange(nil)

	c.Set("#000000")
	c.Set("#ff0000")
	c.Set("#ff0000")
	c.Set("#00ff00")

	if c.Latest() != "#00ff00" {
		t.Fatalf("Latest() = %q", c.Latest())
	}
	if len(seen) != 2 || seen[0] != "#ff0000" || seen[1] != "#00ff00" {
		t.Fatalf("observer saw %v", seen)
	}
}

func TestPhaseString(t *testing.T) {
	if Idle.String() != "idle" || Drawing.String() != "drawing" || Phase(9).String() != "unknown" {
		t.Fatalf("unexpected phase names: %s %s %s", Idle, Drawing, Phase(9))
	}
}
