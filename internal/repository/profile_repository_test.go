package repository

import (
	"strings"
	"testing"

	"team-match/internal/domain/matching"

	"github.com/google/uuid"
)

func TestCandidateQuery_RoleFilterKeepsAbsentRoles(t *testing.T) {
	query, args := candidateQuery(CandidateFilter{Role: matching.RoleTech})

	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if args[1] != matching.RoleTech || args[2] != matching.FlexibleValue {
		t.Fatalf("unexpected role args: %v %v", args[1], args[2])
	}

	// An unset role is flexible; the SQL must not drop NULL or empty rows.
	for _, clause := range []string{
		"p.desired_role_in_team = $2",
		"p.desired_role_in_team = $3",
		"p.desired_role_in_team IS NULL",
		"p.desired_role_in_team = ''",
	} {
		if !strings.Contains(query, clause) {
			t.Fatalf("role clause missing %q:\n%s", clause, query)
		}
	}
}

func TestCandidateQuery_NoRoleFilter(t *testing.T) {
	for _, role := range []string{"", matching.FlexibleValue} {
		query, args := candidateQuery(CandidateFilter{Role: role})

		if strings.Contains(query, "desired_role_in_team =") {
			t.Fatalf("role %q: unexpected role clause:\n%s", role, query)
		}
		if len(args) != 1 {
			t.Fatalf("role %q: expected 1 arg, got %d", role, len(args))
		}
	}
}

func TestCandidateQuery_NilExcludeIDs(t *testing.T) {
	_, args := candidateQuery(CandidateFilter{})

	exclude, ok := args[0].([]uuid.UUID)
	if !ok {
		t.Fatalf("expected []uuid.UUID exclude arg, got %T", args[0])
	}
	if exclude == nil {
		t.Fatalf("exclude arg must be non-nil for ANY($1)")
	}
}
