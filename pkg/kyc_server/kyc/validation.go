package kyc

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/humanface/humanface/pkg/kyc_server/model"
)

func ValidateCreateSessionRequest(req CreateSessionRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.EnterpriseID, validation.Required),
		validation.Field(&req.APIKeyID, validation.Required),
		validation.Field(&req.CustomerEmail, validation.Required, is.Email),
		validation.Field(&req.CustomerName, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateGetSessionRequest(req GetSessionRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.SessionID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateSubmitVerificationRequest(req SubmitVerificationRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.SessionID, validation.Required),
		validation.Field(&req.DocumentType, validation.Required, validation.In(
			model.DocumentTypePassport,
			model.DocumentTypeDriversLicense,
			model.DocumentTypeNationalID,
		)),
		validation.Field(&req.DocumentUrl, validation.Required, is.URL),
		validation.Field(&req.LivenessUrl, is.URL),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateGetVerificationStatusRequest(req GetVerificationStatusRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.VerificationID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateResolveVerificationRequest(req ResolveVerificationRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.VerificationID, validation.Required),
		validation.Field(&req.Status, validation.Required, validation.In(
			model.VerificationStatusSuccess,
			model.VerificationStatusError,
		)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
