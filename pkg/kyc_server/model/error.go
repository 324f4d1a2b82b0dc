package model

import (
	"errors"
	"fmt"
)

var ErrInvalidParameter = errors.New("") // Base error for invalid parameter
var ErrAPIKeyError = errors.New("")      // Base error for API key
var ErrEnterpriseError = errors.New("")  // Base error for Enterprise
var ErrUserError = errors.New("")        // Base error for operator User
var ErrSessionError = errors.New("")     // Base error for KYC Session
var ErrWebhookError = errors.New("")     // Base error for Webhook

// API Key errors
var ErrInvalidCredentials = fmt.Errorf("invalid API key or enterprise ID%w", ErrAPIKeyError)
var ErrAPIKeyNotFound = fmt.Errorf("API key not found%w", ErrAPIKeyError)
var ErrAPIKeyRevoked = fmt.Errorf("API key already revoked%w", ErrAPIKeyError)

// Enterprise errors
var ErrEnterpriseNotFound = fmt.Errorf("enterprise not found%w", ErrEnterpriseError)

// Operator user errors
var ErrUserNotFound = fmt.Errorf("user not found%w", ErrUserError)
var ErrUserAlreadyExists = fmt.Errorf("user already exists%w", ErrUserError)
var ErrUserInactive = fmt.Errorf("user is inactive%w", ErrUserError)
var ErrUserAuthenticationFail = fmt.Errorf("user name/password mismatch%w", ErrUserError)
var ErrUserTokenExpired = fmt.Errorf("user token expired%w", ErrUserError)
var ErrUserTokenInvalid = fmt.Errorf("user token invalid%w", ErrUserError)

// Session/Verification errors
var ErrSessionNotFound = fmt.Errorf("session not found%w", ErrSessionError)
var ErrVerificationNotFound = fmt.Errorf("verification not found%w", ErrSessionError)
var ErrInvalidStatusTransition = fmt.Errorf("invalid status transition%w", ErrSessionError)

// Webhook errors
var ErrWebhookNotFound = fmt.Errorf("webhook not found%w", ErrWebhookError)
