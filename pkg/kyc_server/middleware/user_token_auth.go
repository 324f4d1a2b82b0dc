package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/humanface/humanface/pkg/kyc_server/auth"
	"github.com/humanface/humanface/pkg/kyc_server/model"
	"github.com/sirupsen/logrus"
)

type UserTokenAuth struct {
	auth auth.UserManager
}

func NewUserTokenAuth(auth auth.UserManager) *UserTokenAuth {
	return &UserTokenAuth{
		auth: auth,
	}
}

func (a *UserTokenAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := getBearerToken(r)
		if token == "" {
			writeJSONError(w, http.StatusUnauthorized, "missing token")
			return
		}

		ts := time.Now().Unix()
		userToken, err := a.auth.TokenAuthorization(ctx, ts, token)
		if errors.Is(err, model.ErrUserError) {
			writeJSONError(w, http.StatusUnauthorized, err.Error())
			return
		} else if err != nil {
			logrus.Errorf("UserTokenAuth.Authenticate: %v", err)
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		ctx = context.WithValue(ctx, USER_TOKEN, userToken)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func getBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.Split(h, "Bearer")
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
