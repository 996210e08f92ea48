package htmlnode

import (
	"fmt"
	"strings"
)

// Render serializes n to HTML.
// Text and attribute values are written verbatim: no HTML escaping is applied.
func Render(n *Node) (string, error) {
	if n == nil {
		return "", fmt.Errorf("%w: nil node", ErrStructuralInvariant)
	}
	var sb strings.Builder
	if err := n.renderTo(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Render serializes n to HTML. See the package-level Render.
func (n *Node) Render() (string, error) {
	return Render(n)
}

func (n *Node) renderTo(sb *strings.Builder) error {
	switch n.Kind {
	case KindLeaf:
		n.renderLeaf(sb)
		return nil
	case KindParent:
		return n.renderParent(sb)
	default:
		return fmt.Errorf("%w: unknown node kind %v", ErrStructuralInvariant, n.Kind)
	}
}

func (n *Node) renderLeaf(sb *strings.Builder) {
	if n.Tag == "" {
		sb.WriteString(n.Value)
		return
	}
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	writeAttrs(sb, n.Attrs)
	sb.WriteByte('>')
	sb.WriteString(n.Value)
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
}

// renderParent never emits n.Attrs.
func (n *Node) renderParent(sb *strings.Builder) error {
	if n.Tag == "" {
		return fmt.Errorf("%w: parent node missing tag", ErrStructuralInvariant)
	}
	if len(n.Children) == 0 {
		return fmt.Errorf("%w: <%s> has no children", ErrStructuralInvariant, n.Tag)
	}

	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
	for i, child := range n.Children {
		if child == nil {
			return fmt.Errorf("%w: <%s> child %d is nil", ErrStructuralInvariant, n.Tag, i)
		}
		if err := child.renderTo(sb); err != nil {
			return err
		}
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
	return nil
}

// writeAttrs writes ` name="value"` for each attribute, in order.
func writeAttrs(sb *strings.Builder, attrs Attrs) {
	for _, attr := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(attr.Name)
		sb.WriteString(`="`)
		sb.WriteString(attr.Value)
		sb.WriteByte('"')
	}
}
