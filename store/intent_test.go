package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyGraphQuestion(t *testing.T) {
	tests := []struct {
		name     string
		question string
		wantKind intentKind
		wantRole string
		wantOrg  string
	}{
		{
			name:     "ceo question",
			question: "Who is the CEO of OpenAI?",
			wantKind: intentRole,
			wantRole: "IS_CEO_OF",
			wantOrg:  "OpenAI",
		},
		{
			name:     "president question",
			question: "Who is the president of OpenAI?",
			wantKind: intentRole,
			wantRole: "IS_PRESIDENT_OF",
			wantOrg:  "OpenAI",
		},
		{
			name:     "chief scientist question",
			question: "Who is the chief scientist at OpenAI?",
			wantKind: intentRole,
			wantRole: "IS_CHIEF_SCIENTIST_AT",
			wantOrg:  "OpenAI",
		},
		{
			name:     "product question",
			question: "What products does OpenAI develop?",
			wantKind: intentProducts,
			wantOrg:  "OpenAI",
		},
		{
			name:     "build keyword maps to products",
			question: "What does OpenAI build?",
			wantKind: intentProducts,
			wantOrg:  "OpenAI",
		},
		{
			name:     "technology question",
			question: "What technologies does OpenAI use?",
			wantKind: intentTechnologies,
			wantOrg:  "OpenAI",
		},
		{
			name:     "unmatched question defaults to leadership",
			question: "Tell me about the people connected to OpenAI",
			wantKind: intentLeadership,
			wantOrg:  "OpenAI",
		},
		{
			name:     "organization detection google",
			question: "Who is the CEO of Google?",
			wantKind: intentRole,
			wantRole: "IS_CEO_OF",
			wantOrg:  "Google",
		},
		{
			name:     "organization detection microsoft",
			question: "What products does Microsoft develop?",
			wantKind: intentProducts,
			wantOrg:  "Microsoft",
		},
		{
			name:     "no organization defaults to OpenAI",
			question: "Who is the CEO?",
			wantKind: intentRole,
			wantRole: "IS_CEO_OF",
			wantOrg:  "OpenAI",
		},
		{
			name:     "ceo rule beats product rule",
			question: "Is the CEO involved in product decisions?",
			wantKind: intentRole,
			wantRole: "IS_CEO_OF",
			wantOrg:  "OpenAI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := ClassifyGraphQuestion(tt.question)
			assert.Equal(t, tt.wantKind, intent.kind)
			assert.Equal(t, tt.wantRole, intent.role)
			assert.Equal(t, tt.wantOrg, intent.Org())
		})
	}
}

func TestGraphIntentCypher(t *testing.T) {
	t.Run("role query", func(t *testing.T) {
		cypher := ClassifyGraphQuestion("Who is the CEO of Google?").Cypher()
		assert.Contains(t, cypher, "IS_CEO_OF")
		assert.Contains(t, cypher, "{name: 'Google'}")
		assert.Contains(t, cypher, "RETURN p.name AS name")
	})

	t.Run("products query", func(t *testing.T) {
		cypher := ClassifyGraphQuestion("What products does OpenAI develop?").Cypher()
		assert.Contains(t, cypher, "DEVELOPS")
		assert.Contains(t, cypher, "{name: 'OpenAI'}")
	})

	t.Run("technologies query", func(t *testing.T) {
		cypher := ClassifyGraphQuestion("What technologies does OpenAI use?").Cypher()
		assert.Contains(t, cypher, "USES")
		assert.Contains(t, cypher, "Technology")
	})

	t.Run("leadership query lists all roles", func(t *testing.T) {
		cypher := ClassifyGraphQuestion("Tell me about OpenAI leadership people").Cypher()
		for _, role := range leadershipRoles {
			assert.Contains(t, cypher, role)
		}
		assert.Contains(t, cypher, "type(r) AS role")
		assert.Contains(t, cypher, "ORDER BY role")
	})

	t.Run("quotes in organization names are escaped", func(t *testing.T) {
		intent := GraphIntent{kind: intentRole, role: "IS_CEO_OF", org: "O'Reilly"}
		assert.Contains(t, intent.Cypher(), `O\'Reilly`)
	})
}
