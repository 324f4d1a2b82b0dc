package auth

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/humanface/humanface/pkg/kyc_server/model"
)

func ValidateCreateAPIKeyRequest(req CreateAPIKeyRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.EnterpriseID, validation.Required),
		validation.Field(&req.KeyType, validation.Required, validation.In(APIKeyTypeTest, APIKeyTypeLive)),
		validation.Field(&req.ExpiresAt, validation.Required, validation.Min(1)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateRevokeAPIKeyRequest(req RevokeAPIKeyRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.EnterpriseID, validation.Required),
		validation.Field(&req.ID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateListAPIKeysRequest(req ListAPIKeysRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Limit, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateCreateEnterpriseRequest(req CreateEnterpriseRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.LogoUrl, is.URL),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateUpdateBrandingRequest(req UpdateBrandingRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.EnterpriseID, validation.Required),
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.LogoUrl, is.URL),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateCreateUserRequest(req CreateUserRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.RequestUser, validation.Required),
		validation.Field(&req.UserID, validation.Required, is.LowerCase),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Emails, validation.Each(is.Email)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateChangePasswordRequest(req ChangePasswordRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.OldPassword, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateAuthenticateUserRequest(req AuthenticateUserRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
