package config

import "strings"

type NavNode struct {
	Index int    `yaml:"index" json:"index"`
	Path  string `yaml:"path" json:"path"`
}

// NavigationTree is the sidebar in render order. Duplicate paths are kept.
type NavigationTree []NavNode

// BuildNavigation turns the sidebar into a NavigationTree, one node per
// entry, in input order.
func BuildNavigation(sidebar []string) (NavigationTree, error) {
	tree := make(NavigationTree, 0, len(sidebar))
	for i, p := range sidebar {
		if err := checkRootRelative(p); err != "" {
			return nil, &ConfigError{Kind: InvalidPath, Path: p, Index: i, Message: err}
		}
		tree = append(tree, NavNode{Index: i, Path: p})
	}
	return tree, nil
}

// Paths returns the node paths in order.
func (t NavigationTree) Paths() []string {
	paths := make([]string, len(t))
	for i, n := range t {
		paths[i] = n.Path
	}
	return paths
}

func checkRootRelative(p string) string {
	if p == "" {
		return "path is empty"
	}
	if !strings.HasPrefix(p, "/") {
		return "path must start with /"
	}
	return ""
}
