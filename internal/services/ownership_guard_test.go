package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"skillsphere/pkg/utils"
)

func TestOwnershipGuard_Authorize(t *testing.T) {
	owner := &Principal{ID: 1, Source: SourceUser}
	other := &Principal{ID: 2, Source: SourceUser}
	flaggedAdmin := &Principal{ID: 3, IsAdmin: true, Source: SourceUser}
	adminSameID := &Principal{ID: 1, IsAdmin: true, Source: SourceAdmin}

	cases := []struct {
		name   string
		caller *Principal
		scope  Scope
		want   error
	}{
		{"owner", owner, OwnerOnly, nil},
		{"owner admin scope", owner, OwnerOrAdmin, nil},
		{"stranger", other, OwnerOnly, utils.ErrForbidden},
		{"stranger admin scope", other, OwnerOrAdmin, utils.ErrForbidden},
		{"admin owner only", flaggedAdmin, OwnerOnly, utils.ErrForbidden},
		{"admin admin scope", flaggedAdmin, OwnerOrAdmin, nil},
		{"admin table id collision", adminSameID, OwnerOnly, utils.ErrForbidden},
		{"anonymous", nil, OwnerOrAdmin, utils.ErrUnauthenticated},
	}

	var guard OwnershipGuard
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := guard.Authorize(1, tc.caller, tc.scope)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
