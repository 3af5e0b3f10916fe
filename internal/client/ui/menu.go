package ui

import (
	"fmt"
	"strings"
)

// Target is what a click landed on, as far as the menus care.
type Target int

const (
	TargetOutside Target = iota
	TargetHamburger
	TargetNavMenu
	TargetUserMenuButton
	TargetUserDropdown
)

var targetNames = map[string]Target{
	"outside":     TargetOutside,
	"hamburger":   TargetHamburger,
	"nav":         TargetNavMenu,
	"usermenu":    TargetUserMenuButton,
	"dropdown":    TargetUserDropdown,
	IDHamburger:   TargetHamburger,
	IDNavMenu:     TargetNavMenu,
	IDUserMenuBtn: TargetUserMenuButton,
	ClassDropdown: TargetUserDropdown,
}

// ParseTarget accepts a short name ("hamburger", "nav", "usermenu",
// "dropdown", "outside") or one of the header element names.
func ParseTarget(s string) (Target, bool) {
	t, ok := targetNames[strings.TrimSpace(s)]
	return t, ok
}

// Widget identifies one of the two disclosures in the header.
type Widget int

const (
	WidgetNav Widget = iota
	WidgetUser
)

func (w Widget) String() string {
	if w == WidgetUser {
		return "user menu"
	}
	return "nav menu"
}

func (w Widget) Trigger() Target {
	if w == WidgetUser {
		return TargetUserMenuButton
	}
	return TargetHamburger
}

func (w Widget) Panel() Target {
	if w == WidgetUser {
		return TargetUserDropdown
	}
	return TargetNavMenu
}

// Mode selects which widgets react to their trigger.
type Mode string

const (
	ModeHamburger Mode = "hamburger"
	ModeDropdown  Mode = "dropdown"
	ModeBoth      Mode = "both"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeHamburger, ModeDropdown, ModeBoth:
		return m, nil
	default:
		return "", fmt.Errorf("unknown menu mode %q", s)
	}
}

// MenuController is the single click listener of the header: every click
// is dispatched to both disclosures. At most one of them is open after any
// click, since a trigger of one widget is "outside" for the other.
type MenuController struct {
	widgets map[Widget]*Disclosure
}

func NewMenuController(mode Mode) *MenuController {
	return &MenuController{widgets: map[Widget]*Disclosure{
		WidgetNav:  NewDisclosure(TargetHamburger, TargetNavMenu, mode != ModeDropdown),
		WidgetUser: NewDisclosure(TargetUserMenuButton, TargetUserDropdown, mode != ModeHamburger),
	}}
}

// Click dispatches t and returns the widgets whose state changed.
func (m *MenuController) Click(t Target) []Widget {
	var changed []Widget
	for _, w := range []Widget{WidgetNav, WidgetUser} {
		if m.widgets[w].Handle(t) {
			changed = append(changed, w)
		}
	}
	return changed
}

func (m *MenuController) IsOpen(w Widget) bool {
	return m.widgets[w].State() == Open
}

func (m *MenuController) Enabled(w Widget) bool {
	return m.widgets[w].Enabled()
}

// CloseAll resets both widgets, e.g. when a new header is attached.
func (m *MenuController) CloseAll() {
	for _, d := range m.widgets {
		d.Close()
	}
}
