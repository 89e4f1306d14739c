package endpoints

import (
	"cmp"
	"slices"
	"strings"
)

// Resource is a top-level resource with the endpoints documented under it.
type Resource struct {
	Path      string       `json:"path" yaml:"path"`
	Endpoints []Descriptor `json:"endpoints" yaml:"endpoints"`
}

// TopLevelAPIs returns the top-level resource prefixes of endpoints, used as
// documentation section headings. See TopLevelPaths.
func TopLevelAPIs(endpoints []Descriptor) []string {
	paths := make([]string, len(endpoints))
	for i, e := range endpoints {
		paths[i] = e.Path
	}
	return TopLevelPaths(paths)
}

// TopLevelPaths computes the minimal set of resource prefixes covering paths.
//
// Each path is reduced to its base path (see BasePath). The longest common
// prefix of all base paths, cut back to its last "/", is the anchor. Each base
// path contributes the anchor followed by its next segment. The distinct results
// are sorted by their final segment so that resources such as api/v{number}/echo
// order by their distinguishing suffix.
func TopLevelPaths(paths []string) []string {
	bases := make([]string, len(paths))
	for i, p := range paths {
		bases[i] = BasePath(p)
	}

	anchor := anchorOf(bases)
	seen := make(map[string]struct{})
	resources := make([]string, 0)
	for _, b := range bases {
		r := anchor + head(b, anchor)
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		resources = append(resources, r)
	}

	slices.SortFunc(resources, func(a, b string) int {
		return cmp.Or(cmp.Compare(lastSegment(a), lastSegment(b)), cmp.Compare(a, b))
	})
	return resources
}

// Group pairs each top-level resource with its endpoints, preserving the
// endpoint order within each resource.
func Group(endpoints []Descriptor) []Resource {
	bases := make([]string, len(endpoints))
	for i, e := range endpoints {
		bases[i] = BasePath(e.Path)
	}
	anchor := anchorOf(bases)

	paths := TopLevelAPIs(endpoints)
	index := make(map[string]int, len(paths))
	resources := make([]Resource, len(paths))
	for i, p := range paths {
		index[p] = i
		resources[i] = Resource{Path: p}
	}

	for i, e := range endpoints {
		j := index[anchor+head(bases[i], anchor)]
		resources[j].Endpoints = append(resources[j].Endpoints, e)
	}
	return resources
}

// BasePath strips surrounding slashes from path and cuts it before the first
// segment that starts with a placeholder.
func BasePath(path string) string {
	base, _, _ := strings.Cut(strings.Trim(path, "/"), "/{")
	return base
}

// anchorOf returns the character-wise common prefix of bases trimmed back to
// its last "/", inclusive. It is empty when that prefix holds no "/".
func anchorOf(bases []string) string {
	if len(bases) == 0 {
		return ""
	}

	common := bases[0]
	for _, b := range bases[1:] {
		n := 0
		for n < len(common) && n < len(b) && common[n] == b[n] {
			n++
		}
		common = common[:n]
	}

	if i := strings.LastIndexByte(common, '/'); i >= 0 {
		return common[:i+1]
	}
	return ""
}

func head(base, anchor string) string {
	h, _, _ := strings.Cut(strings.TrimPrefix(base, anchor), "/")
	return h
}

func lastSegment(path string) string {
	return path[strings.LastIndexByte(path, '/')+1:]
}
