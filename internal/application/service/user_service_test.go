package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/storebook/storebook-api/internal/domain/entity"
	"github.com/storebook/storebook-api/internal/domain/enum"
	"github.com/storebook/storebook-api/pkg/apperror"
)

func TestCreateUserHashesPasswordAndSeedsPrivilege(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users)
	ctx := context.Background()

	user, err := svc.Create(ctx, allCaps(), &UserInput{Name: "kashif", Password: "secret123"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if user.Password == "secret123" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")); err != nil {
		t.Error("stored hash does not verify against the password")
	}

	if user.Privilege == nil {
		t.Fatal("new user should have a privilege record")
	}
	if caps := user.Privilege.Capabilities(); len(caps.Names()) != 0 {
		t.Errorf("new user capabilities = %v, want none", caps.Names())
	}
}

func TestSetPrivilegeRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users)
	ctx := context.Background()

	user, err := svc.Create(ctx, allCaps(), &UserInput{Name: "kashif", Password: "secret123"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	privilege, err := svc.SetPrivilege(ctx, allCaps(), user.ID, &PrivilegeInput{
		CanViewSales: true,
		CanEditSales: true,
	})
	if err != nil {
		t.Fatalf("set privilege: %v", err)
	}

	caps := privilege.Capabilities()
	if !caps.Has(enum.CapViewSales) || !caps.Has(enum.CapEditSales) {
		t.Errorf("capabilities = %v, want view-sales and edit-sales", caps.Names())
	}
	if caps.Has(enum.CapManageUsers) {
		t.Error("ungranted capability present in token")
	}
}

func TestDeleteUserCascadesPrivilege(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users)
	ctx := context.Background()

	user, err := svc.Create(ctx, allCaps(), &UserInput{Name: "kashif", Password: "secret123"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, allCaps(), user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	env.db.Model(&entity.UserPrivilege{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Errorf("privilege rows for deleted user = %d, want 0", count)
	}
}

func TestUserManagementRequiresCapability(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users)
	ctx := context.Background()

	if _, err := svc.Create(ctx, noCaps(), &UserInput{Name: "x", Password: "secret123"}); apperror.GetAppError(err).Code != 403 {
		t.Error("create without manage-users should be 403")
	}
	if _, err := svc.SetPrivilege(ctx, noCaps(), 1, &PrivilegeInput{}); apperror.GetAppError(err).Code != 403 {
		t.Error("set privilege without manage-users should be 403")
	}
}

func TestAuthLoginAndRefresh(t *testing.T) {
	env := newTestEnv(t)
	userSvc := NewUserService(env.users)
	authSvc := newTestAuthService(env)
	ctx := context.Background()

	user, err := userSvc.Create(ctx, allCaps(), &UserInput{Name: "kashif", Password: "secret123"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := userSvc.SetPrivilege(ctx, allCaps(), user.ID, &PrivilegeInput{CanViewSales: true}); err != nil {
		t.Fatalf("set privilege: %v", err)
	}

	result, err := authSvc.Login(ctx, "kashif", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Tokens.AccessToken == "" || result.Tokens.RefreshToken == "" {
		t.Fatal("expected both tokens on login")
	}

	if _, err := authSvc.Login(ctx, "kashif", "wrong"); apperror.GetAppError(err).Code != 401 {
		t.Error("wrong password should be 401")
	}
	if _, err := authSvc.Login(ctx, "nobody", "secret123"); apperror.GetAppError(err).Code != 401 {
		t.Error("unknown user should be 401")
	}

	tokens, err := authSvc.Refresh(ctx, result.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if tokens.AccessToken == "" {
		t.Error("refresh should issue a new access token")
	}
}
