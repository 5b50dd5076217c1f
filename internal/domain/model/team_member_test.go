package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateTeamMemberRequest_Validate(t *testing.T) {
	valid := func() CreateTeamMemberRequest {
		return CreateTeamMemberRequest{Name: "Sam", Role: "Engineer"}
	}

	t.Run("valid minimal member", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		req := valid()
		req.Name = " "
		assert.ErrorContains(t, req.Validate(), "name is required")
	})

	t.Run("missing role", func(t *testing.T) {
		req := valid()
		req.Role = ""
		assert.ErrorContains(t, req.Validate(), "role is required")
	})

	t.Run("bio too long", func(t *testing.T) {
		req := valid()
		bio := strings.Repeat("x", 2001)
		req.Bio = &bio
		assert.ErrorContains(t, req.Validate(), "bio cannot exceed")
	})

	t.Run("negative display order", func(t *testing.T) {
		req := valid()
		order := -1
		req.DisplayOrder = &order
		assert.ErrorContains(t, req.Validate(), "non-negative")
	})

	t.Run("invalid photo url", func(t *testing.T) {
		req := valid()
		u := "not a url"
		req.PhotoURL = &u
		assert.Error(t, req.Validate())
	})
}

func TestUpdateTeamMemberRequest_Validate(t *testing.T) {
	t.Run("empty change set rejected", func(t *testing.T) {
		req := UpdateTeamMemberRequest{}
		assert.ErrorContains(t, req.Validate(), "at least one field")
	})

	t.Run("single field is enough", func(t *testing.T) {
		role := "Designer"
		req := UpdateTeamMemberRequest{Role: &role}
		assert.NoError(t, req.Validate())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		name := ""
		req := UpdateTeamMemberRequest{Name: &name}
		assert.ErrorContains(t, req.Validate(), "name cannot be empty")
	})
}
