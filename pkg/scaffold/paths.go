package scaffold

import (
	"path"
	"strings"
)

// Substitution maps a placeholder token found in bundle paths to the
// template data field whose value replaces it.
type Substitution struct {
	Token string
	Field string
}

// DefaultSubstitutions is the fixed token table used for every bundle.
var DefaultSubstitutions = []Substitution{
	{Token: "project_org", Field: "namespace"},
	{Token: "project_repo", Field: "collection_name"},
	{Token: "sample_module", Field: "plugin_name"},
	{Token: "sample_action", Field: "plugin_name"},
	{Token: "sample_filter", Field: "plugin_name"},
	{Token: "sample_lookup", Field: "plugin_name"},
	{Token: "sample_test", Field: "plugin_name"},
}

// PathPlanner turns bundle-relative paths into destination-relative ones
type PathPlanner struct {
	Substitutions []Substitution
	// Suffix marks template files; it is removed from planned names.
	Suffix string
}

// NewPathPlanner returns a planner using DefaultSubstitutions.
func NewPathPlanner(suffix string) PathPlanner {
	return PathPlanner{Substitutions: DefaultSubstitutions, Suffix: suffix}
}

// Substitute replaces every placeholder token in rel with its field value.
// Tokens whose field is empty or missing are left as they are. Replacement is
// a single pass, so inserted values are never substituted again.
func (p PathPlanner) Substitute(rel string, data Data) string {
	var pairs []string
	for _, s := range p.Substitutions {
		value := data.String(s.Field)
		if value == "" || !strings.Contains(rel, s.Token) {
			continue
		}
		pairs = append(pairs, s.Token, value)
	}
	if len(pairs) == 0 {
		return rel
	}
	return strings.NewReplacer(pairs...).Replace(rel)
}

// Plan substitutes placeholders in the slash separated path rel and strips
// the template suffix from its last element. templated reports whether the
// suffix was present.
func (p PathPlanner) Plan(rel string, data Data) (planned string, templated bool) {
	planned = p.Substitute(rel, data)
	if p.Suffix == "" {
		return planned, false
	}

	dir, name := path.Split(planned)
	if strings.HasSuffix(name, p.Suffix) && name != p.Suffix {
		return dir + strings.TrimSuffix(name, p.Suffix), true
	}
	return planned, false
}
