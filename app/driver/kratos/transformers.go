package kratos

import (
	"fmt"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"stayin/app/domain"
)

// traitsToMap shapes identity traits for the Kratos identity schema.
func traitsToMap(traits domain.IdentityTraits) map[string]interface{} {
	return map[string]interface{}{
		"email":        traits.Email,
		"full_name":    traits.FullName,
		"phone_number": traits.PhoneNumber,
	}
}

// sessionToDomain maps a Kratos session onto the provider-session
// value the gateway works with.
func sessionToDomain(sess *kratosclient.Session, token string) (*domain.ProviderSession, error) {
	if sess.Identity == nil {
		return nil, fmt.Errorf("kratos session %s has no identity", sess.Id)
	}

	identity, err := identityToDomain(sess.Identity)
	if err != nil {
		return nil, err
	}

	active := sess.Active == nil || *sess.Active

	return &domain.ProviderSession{
		Token:    token,
		Active:   active,
		Identity: *identity,
	}, nil
}

func identityToDomain(ident *kratosclient.Identity) (*domain.Identity, error) {
	id, err := uuid.Parse(ident.Id)
	if err != nil {
		return nil, fmt.Errorf("invalid identity id from kratos: %w", err)
	}

	out := &domain.Identity{ID: id}

	if traits, ok := ident.Traits.(map[string]interface{}); ok {
		if email, ok := traits["email"].(string); ok {
			out.Email = email
		}
		if name, ok := traits["full_name"].(string); ok {
			out.Name = name
		}
	}

	return out, nil
}
