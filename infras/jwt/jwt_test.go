package jwt_test

import (
	"salon/config"
	"salon/infras/jwt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(secret string, expireMin int) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "salon"
	cfg.JWT.VisitorSecret = secret
	cfg.JWT.VisitorExpireMin = expireMin

	return cfg
}

func TestService_IssueAndValidate(t *testing.T) {
	svc := jwt.New(newConfig("visitor-secret", 60))

	visitor, err := svc.IssueVisitor()
	require.NoError(t, err)
	assert.NotEmpty(t, visitor.VisitorID)
	assert.Equal(t, "Bearer", visitor.TokenType)
	assert.Equal(t, int64(3600), visitor.ExpiresIn)

	claims, err := svc.ValidateToken(visitor.Token)
	require.NoError(t, err)
	assert.Equal(t, visitor.VisitorID, claims.VisitorID)
	assert.Equal(t, jwt.VisitorToken, claims.Type)
	assert.Equal(t, "salon", claims.Issuer)
}

func TestService_IssueVisitorUniqueIDs(t *testing.T) {
	svc := jwt.New(newConfig("visitor-secret", 60))

	first, err := svc.IssueVisitor()
	require.NoError(t, err)

	second, err := svc.IssueVisitor()
	require.NoError(t, err)

	assert.NotEqual(t, first.VisitorID, second.VisitorID)
}

func TestService_ValidateTokenWrongSecret(t *testing.T) {
	visitor, err := jwt.New(newConfig("secret-a", 60)).IssueVisitor()
	require.NoError(t, err)

	_, err = jwt.New(newConfig("secret-b", 60)).ValidateToken(visitor.Token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestService_ValidateTokenExpired(t *testing.T) {
	svc := jwt.New(newConfig("visitor-secret", -1))

	visitor, err := svc.IssueVisitor()
	require.NoError(t, err)

	_, err = svc.ValidateToken(visitor.Token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestService_ValidateTokenGarbage(t *testing.T) {
	_, err := jwt.New(newConfig("visitor-secret", 60)).ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer token", header: "Bearer abc.def", want: "abc.def"},
		{name: "empty header", header: "", wantErr: true},
		{name: "basic scheme", header: "Basic abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
