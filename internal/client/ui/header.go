package ui

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dmitrijs2005/whportal/internal/client/session"
	"github.com/dmitrijs2005/whportal/internal/common"
)

// Element ids and classes the fragment must define.
const (
	IDUserName      = "userName"
	IDHamburger     = "hamburgerBtn"
	IDNavMenu       = "navMenu"
	IDUserMenuBtn   = "userMenuBtn"
	ClassDropdown   = "user-dropdown"
	IDLogout        = "logoutLink"
	ClassOpen       = "open"
	ContainerID     = "menu-container"
	roleClassPrefix = "role-"
)

// RoleClass is the class that tags the sections of role r.
func RoleClass(r session.Role) string {
	return roleClassPrefix + string(r)
}

// Header is a parsed header fragment attached to its container.
type Header struct {
	container *html.Node
	userName  *html.Node
	triggers  map[Target]*html.Node
	sections  map[session.Role][]*html.Node
}

// ParseHeader parses fragment as the content of the menu container and
// looks up every element the controller needs. A fragment missing one of
// them is rejected with common.ErrFragmentIncomplete.
func ParseHeader(fragment []byte) (*Header, error) {
	container := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr:     []html.Attribute{{Key: "id", Val: ContainerID}},
	}

	nodes, err := html.ParseFragment(bytes.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	h := &Header{
		container: container,
		triggers:  make(map[Target]*html.Node),
		sections:  make(map[session.Role][]*html.Node),
	}

	var missing []string
	lookup := func(name string, n *html.Node) *html.Node {
		if n == nil {
			missing = append(missing, name)
		}
		return n
	}

	h.userName = lookup("#"+IDUserName, findFirst(container, byID(IDUserName)))
	h.triggers[TargetHamburger] = lookup("#"+IDHamburger, findFirst(container, byID(IDHamburger)))
	h.triggers[TargetNavMenu] = lookup("#"+IDNavMenu, findFirst(container, byID(IDNavMenu)))
	h.triggers[TargetUserMenuButton] = lookup("#"+IDUserMenuBtn, findFirst(container, byID(IDUserMenuBtn)))
	h.triggers[TargetUserDropdown] = lookup("."+ClassDropdown, findFirst(container, byClass(ClassDropdown)))
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrFragmentIncomplete, strings.Join(missing, ", "))
	}

	for _, r := range session.Roles() {
		h.sections[r] = findAll(container, byClass(RoleClass(r)))
	}
	return h, nil
}

// ApplyRole shows exactly the sections of role and hides the others. Any
// role outside the closed set hides all of them.
func (h *Header) ApplyRole(role session.Role) {
	for _, r := range session.Roles() {
		for _, n := range h.sections[r] {
			setHidden(n, r != role)
		}
	}
}

// VisibleRoles lists the roles with at least one visible section.
func (h *Header) VisibleRoles() []session.Role {
	var out []session.Role
	for _, r := range session.Roles() {
		if slices.ContainsFunc(h.sections[r], func(n *html.Node) bool { return !hasAttr(n, "hidden") }) {
			out = append(out, r)
		}
	}
	return out
}

func (h *Header) SetUserName(name string) {
	for c := h.userName.FirstChild; c != nil; c = h.userName.FirstChild {
		h.userName.RemoveChild(c)
	}
	h.userName.AppendChild(&html.Node{Type: html.TextNode, Data: name})
}

func (h *Header) UserName() string {
	return textContent(h.userName)
}

// SetOpen mirrors a widget's state onto its panel's "open" class.
func (h *Header) SetOpen(w Widget, open bool) {
	panel := h.triggers[w.Panel()]
	if open {
		addClass(panel, ClassOpen)
	} else {
		removeClass(panel, ClassOpen)
	}
}

func (h *Header) IsOpen(w Widget) bool {
	return hasClass(h.triggers[w.Panel()], ClassOpen)
}

// Resolve maps a clicked element id to the dispatch target that contains
// it. Unknown ids and elements outside every trigger and panel resolve to
// TargetOutside.
func (h *Header) Resolve(elementID string) Target {
	n := findFirst(h.container, byID(elementID))
	for ; n != nil; n = n.Parent {
		for t, tn := range h.triggers {
			if n == tn {
				return t
			}
		}
	}
	return TargetOutside
}

// Render returns the container with the fragment inside it.
func (h *Header) Render() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, h.container); err != nil {
		return "", err
	}
	return buf.String(), nil
}
