package handler

import "github.com/codewithvanilson/security-service/internal/core/domain"

// toAccountResponse converts a domain account to its external DTO. The hash
// is carried through verbatim, never re-encoded: hashing happens exactly
// once, in the service, when a plaintext first arrives.
func toAccountResponse(a *domain.Account) (*accountResponse, error) {
	if a == nil {
		return nil, domain.ErrNilAccount
	}
	roles := make([]roleResponse, 0, len(a.Roles))
	for _, r := range a.Roles {
		roles = append(roles, roleResponse{RoleID: r.RoleID, Name: r.Name, Code: r.Code})
	}
	return &accountResponse{
		ID:                a.ID,
		Username:          a.Username,
		PasswordHash:      a.PasswordHash,
		Enabled:           a.Enabled,
		Locked:            a.Locked,
		Expired:           a.Expired,
		CredentialExpired: a.CredentialExpired,
		Roles:             roles,
	}, nil
}

func toAccountResponses(accounts []domain.Account) ([]accountResponse, error) {
	out := make([]accountResponse, 0, len(accounts))
	for i := range accounts {
		dto, err := toAccountResponse(&accounts[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

// fromAccountResponse converts the DTO back to the domain representation,
// preserving id, username, status flags, role set and the opaque hash.
func fromAccountResponse(dto *accountResponse) (*domain.Account, error) {
	if dto == nil {
		return nil, domain.ErrNilAccount
	}
	roles := make([]domain.Role, 0, len(dto.Roles))
	for _, r := range dto.Roles {
		roles = append(roles, domain.Role{RoleID: r.RoleID, Name: r.Name, Code: r.Code})
	}
	return &domain.Account{
		ID:                dto.ID,
		Username:          dto.Username,
		PasswordHash:      dto.PasswordHash,
		Enabled:           dto.Enabled,
		Locked:            dto.Locked,
		Expired:           dto.Expired,
		CredentialExpired: dto.CredentialExpired,
		Roles:             roles,
	}, nil
}
