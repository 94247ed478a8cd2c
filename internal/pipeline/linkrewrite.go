package pipeline

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LinkResolver maps a relative href to the public address of the page it
// names. ok is false for links that should be left alone.
type LinkResolver func(href string) (addr string, ok bool)

// RewriteLinks rewrites a[href] values in an HTML fragment through resolve,
// so a link written as "../about.md" in the source points at "/about" on
// the site. Only relative hrefs are offered to resolve.
//
// Does NOT rewrite:
//   - img, script, link, or media sources (assets are not pages)
//   - URLs with a scheme, protocol-relative URLs, or absolute paths
//   - pure fragment links ("#section")
func RewriteLinks(fragment []byte, resolve LinkResolver) ([]byte, error) {
	if resolve == nil || !bytes.Contains(fragment, []byte("href")) {
		return fragment, nil
	}

	doc, err := parseFragment(fragment)
	if err != nil {
		return nil, err
	}

	if !rewriteNode(doc, resolve) {
		return fragment, nil
	}

	return renderFragment(doc)
}

// parseFragment parses HTML with a body context and wraps the resulting
// nodes in a container for uniform traversal.
func parseFragment(content []byte) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(bytes.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the container's children without an html/body wrapper.
func renderFragment(doc *html.Node) ([]byte, error) {
	var buf bytes.Buffer
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// rewriteNode traverses the DOM and reports whether any href changed.
func rewriteNode(n *html.Node, resolve LinkResolver) bool {
	changed := false
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key != "href" || !isRelativeLink(attr.Val) {
				continue
			}
			if addr, ok := resolve(attr.Val); ok {
				n.Attr[i].Val = addr
				changed = true
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteNode(c, resolve) {
			changed = true
		}
	}
	return changed
}

// isRelativeLink returns true if the href is a path relative to the page.
func isRelativeLink(href string) bool {
	if href == "" {
		return false
	}

	// Anchors, absolute paths, protocol-relative URLs
	if strings.HasPrefix(href, "#") || strings.HasPrefix(href, "/") {
		return false
	}

	// Anything with a scheme (http:, mailto:, data:, ...) before the first slash
	if i := strings.IndexByte(href, ':'); i >= 0 {
		if j := strings.IndexByte(href, '/'); j < 0 || i < j {
			return false
		}
	}

	return true
}
