package store

import (
	"fmt"
	"strings"
)

// intentKind is the shape of graph query a question maps to.
type intentKind int

const (
	// intentRole looks up the holder of a single leadership role.
	intentRole intentKind = iota
	// intentProducts lists products built by the organization.
	intentProducts
	// intentTechnologies lists technologies the organization uses.
	intentTechnologies
	// intentLeadership lists all leadership relationships.
	intentLeadership
)

// GraphIntent is a classified graph question: what to look up and for
// which organization.
type GraphIntent struct {
	kind intentKind
	role string
	org  string
}

// Org returns the organization the question is about.
func (i GraphIntent) Org() string { return i.org }

// leadershipRoles are the relationship types returned by the default
// leadership query.
var leadershipRoles = []string{
	"IS_CEO_OF",
	"IS_PRESIDENT_OF",
	"IS_CHIEF_SCIENTIST_AT",
	"IS_FOUNDER_OF",
	"IS_CTO_OF",
}

// intentRules is the ordered decision table mapping question keywords to
// query intents. Evaluated top to bottom, first match wins; questions that
// match nothing get the default leadership lookup.
var intentRules = []struct {
	keywords []string
	kind     intentKind
	role     string
}{
	{keywords: []string{"ceo"}, kind: intentRole, role: "IS_CEO_OF"},
	{keywords: []string{"president"}, kind: intentRole, role: "IS_PRESIDENT_OF"},
	{keywords: []string{"chief scientist"}, kind: intentRole, role: "IS_CHIEF_SCIENTIST_AT"},
	{keywords: []string{"product", "develop", "build"}, kind: intentProducts},
	{keywords: []string{"technolog", "uses"}, kind: intentTechnologies},
}

// knownOrgs maps detection keywords to organization names. The first
// keyword found in the question wins; OpenAI is the default when no
// organization is mentioned.
var knownOrgs = []struct {
	keyword string
	name    string
}{
	{"google", "Google"},
	{"microsoft", "Microsoft"},
	{"openai", "OpenAI"},
}

// DefaultOrg is assumed when a question names no known organization.
const DefaultOrg = "OpenAI"

// ClassifyGraphQuestion maps a natural-language relationship question to a
// GraphIntent using the ordered keyword table.
func ClassifyGraphQuestion(question string) GraphIntent {
	lower := strings.ToLower(question)

	intent := GraphIntent{kind: intentLeadership, org: DefaultOrg}

	for _, org := range knownOrgs {
		if strings.Contains(lower, org.keyword) {
			intent.org = org.name
			break
		}
	}

	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				intent.kind = rule.kind
				intent.role = rule.role
				return intent
			}
		}
	}

	return intent
}

// Cypher renders the intent as an openCypher query. Role and product hits
// come back under the `name` column; the leadership query adds a `role`
// column holding the relationship type.
func (i GraphIntent) Cypher() string {
	org := escapeCypherString(i.org)

	switch i.kind {
	case intentRole:
		return fmt.Sprintf(
			"MATCH (p:Person)-[:%s]->(o:Organization {name: '%s'}) RETURN p.name AS name",
			i.role, org)
	case intentProducts:
		return fmt.Sprintf(
			"MATCH (o:Organization {name: '%s'})-[:DEVELOPS]->(p:Product) RETURN p.name AS name",
			org)
	case intentTechnologies:
		return fmt.Sprintf(
			"MATCH (o:Organization {name: '%s'})-[:USES]->(t:Technology) RETURN t.name AS name",
			org)
	default:
		quoted := make([]string, len(leadershipRoles))
		for n, role := range leadershipRoles {
			quoted[n] = "'" + role + "'"
		}
		return fmt.Sprintf(
			"MATCH (p:Person)-[r]->(o:Organization {name: '%s'}) WHERE type(r) IN [%s] RETURN p.name AS name, type(r) AS role ORDER BY role",
			org, strings.Join(quoted, ", "))
	}
}
