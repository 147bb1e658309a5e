package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ResolveLocalRefs rewrites relative img[src] and a[href] values in an HTML
// fragment to file:// URLs under baseDir. Chrome loads the page from a
// temporary file, so relative references would otherwise resolve against
// the temp directory.
//
// URLs, anchors, absolute paths and paths escaping baseDir are left alone.
// An empty baseDir returns fragment unchanged.
func ResolveLocalRefs(fragment, baseDir string) (string, error) {
	if baseDir == "" {
		return fragment, nil
	}

	root, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		resolveNode(n, root)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func resolveNode(n *html.Node, root string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			resolveAttr(n, "src", root)
		case atom.A:
			resolveAttr(n, "href", root)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		resolveNode(c, root)
	}
}

func resolveAttr(n *html.Node, key, root string) {
	for i := range n.Attr {
		if n.Attr[i].Key != key || !isLocalRef(n.Attr[i].Val) {
			continue
		}
		target := filepath.Join(root, filepath.FromSlash(n.Attr[i].Val))
		if !withinDir(target, root) {
			continue
		}
		n.Attr[i].Val = fileURL(target)
	}
}

// isLocalRef reports whether ref is a relative filesystem path.
func isLocalRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}
	if u, err := url.Parse(ref); err != nil || u.Scheme != "" {
		return false
	}
	return !filepath.IsAbs(ref) && !strings.HasPrefix(ref, "/")
}

func withinDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func fileURL(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
