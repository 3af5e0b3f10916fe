package ui

// State of a disclosure widget.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Disclosure is a two-state toggle: a trigger click flips it, a click
// anywhere outside its trigger and panel closes it, a click inside the panel
// leaves it alone. A disabled disclosure never opens.
type Disclosure struct {
	trigger Target
	panel   Target
	enabled bool
	state   State
}

func NewDisclosure(trigger, panel Target, enabled bool) *Disclosure {
	return &Disclosure{trigger: trigger, panel: panel, enabled: enabled}
}

// Handle applies one click and reports whether the state changed.
func (d *Disclosure) Handle(t Target) bool {
	prev := d.state
	switch {
	case t == d.trigger && d.enabled:
		if d.state == Open {
			d.state = Closed
		} else {
			d.state = Open
		}
	case t == d.panel && d.state == Open:
	default:
		d.state = Closed
	}
	return prev != d.state
}

func (d *Disclosure) Close() {
	d.state = Closed
}

func (d *Disclosure) State() State {
	return d.state
}

func (d *Disclosure) Enabled() bool {
	return d.enabled
}
