package domain

import "testing"

func TestUserRole_IsValid(t *testing.T) {
	for _, role := range []UserRole{RoleAdmin, RoleUser, RoleGuest} {
		if !role.IsValid() {
			t.Fatalf("expected %q to be valid", role)
		}
	}
	for _, role := range []UserRole{"", "superuser", "Admin", "ADMIN"} {
		if role.IsValid() {
			t.Fatalf("expected %q to be invalid", role)
		}
	}
}

func TestUser_DisplayName(t *testing.T) {
	u := User{ID: "1", Name: "Alice", Email: "alice@example.com", Role: RoleAdmin}
	if got := u.DisplayName(); got != "Alice (admin)" {
		t.Fatalf("DisplayName = %q, want %q", got, "Alice (admin)")
	}
}

func TestUser_IsAdmin(t *testing.T) {
	if !(User{Role: RoleAdmin}).IsAdmin() {
		t.Fatalf("admin user should report IsAdmin")
	}
	if (User{Role: RoleUser}).IsAdmin() || (User{Role: RoleGuest}).IsAdmin() {
		t.Fatalf("non-admin user should not report IsAdmin")
	}
}

func TestNewGuest(t *testing.T) {
	a := NewGuest()
	b := NewGuest()

	if a.ID == "" || b.ID == "" {
		t.Fatalf("guest ids must be non-empty")
	}
	if a.ID == b.ID {
		t.Fatalf("two guests share the same id: %s", a.ID)
	}
	for _, g := range []User{a, b} {
		if g.Name != "Guest" || g.Email != "guest@example.com" || g.Role != RoleGuest {
			t.Fatalf("unexpected guest attributes: %+v", g)
		}
	}
	if a.DisplayName() != "Guest (guest)" {
		t.Fatalf("guest DisplayName = %q", a.DisplayName())
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}
