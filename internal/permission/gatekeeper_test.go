package permission

import (
	"context"
	"testing"
	"time"
)

// #region fakes

type fakeSource struct {
	pkgs  map[string]PackageInfo
	perms map[string]PermissionInfo
}

func (s *fakeSource) Lookup(pkg string) (PackageInfo, bool) {
	info, ok := s.pkgs[pkg]
	return info, ok
}

func (s *fakeSource) PermissionInfo(name string) (PermissionInfo, bool) {
	info, ok := s.perms[name]
	return info, ok
}

type fakeLauncher struct {
	requested []string
	result    GrantResult
}

func (l *fakeLauncher) RequestGrant(pkg string, perms []string) <-chan GrantResult {
	l.requested = append(l.requested, perms...)
	ch := make(chan GrantResult, 1)
	ch <- l.result
	close(ch)
	return ch
}

func newSource() *fakeSource {
	return &fakeSource{
		pkgs: make(map[string]PackageInfo),
		perms: map[string]PermissionInfo{
			"android.permission.ACCESS_FINE_LOCATION": {Name: "android.permission.ACCESS_FINE_LOCATION", Protection: ProtectionDangerous},
			"android.permission.INTERNET":             {Name: "android.permission.INTERNET", Protection: ProtectionNormal},
		},
	}
}

// #endregion fakes

func TestBindProceedsWhenAllGranted(t *testing.T) {
	src := newSource()
	src.pkgs["com.example.weather"] = PackageInfo{
		Name:    "com.example.weather",
		Enabled: true,
		Requested: []RequestedPermission{
			{Name: "android.permission.ACCESS_FINE_LOCATION", Granted: true},
			{Name: "android.permission.INTERNET", Granted: true},
		},
	}
	launcher := &fakeLauncher{}
	g := NewGatekeeper(src, launcher)

	bound := false
	err := g.EnsureBound(context.Background(), "com.example.weather", func() error {
		bound = true
		return nil
	})
	if err != nil || !bound {
		t.Fatalf("expected immediate bind, err=%v bound=%v", err, bound)
	}
	if len(launcher.requested) != 0 {
		t.Fatalf("no grant flow expected, requested %v", launcher.requested)
	}
}

func TestUngrantedDangerousTriggersGrantFlow(t *testing.T) {
	src := newSource()
	src.pkgs["com.example.weather"] = PackageInfo{
		Name:    "com.example.weather",
		Enabled: true,
		Requested: []RequestedPermission{
			{Name: "android.permission.ACCESS_FINE_LOCATION", Granted: false},
			{Name: "android.permission.INTERNET", Granted: false},
		},
	}
	launcher := &fakeLauncher{result: GrantResult{Granted: []string{"android.permission.ACCESS_FINE_LOCATION"}}}
	g := NewGatekeeper(src, launcher)

	bound := false
	if err := g.EnsureBound(context.Background(), "com.example.weather", func() error {
		bound = true
		return nil
	}); err != nil {
		t.Fatalf("EnsureBound: %v", err)
	}
	if !bound {
		t.Fatal("bind must follow the grant flow")
	}
	if len(launcher.requested) != 1 || launcher.requested[0] != "android.permission.ACCESS_FINE_LOCATION" {
		t.Fatalf("only the dangerous permission should be requested, got %v", launcher.requested)
	}
}

func TestDenialStillBinds(t *testing.T) {
	src := newSource()
	src.pkgs["com.example.weather"] = PackageInfo{
		Name:    "com.example.weather",
		Enabled: true,
		Requested: []RequestedPermission{
			{Name: "android.permission.ACCESS_FINE_LOCATION", Granted: false},
		},
	}
	launcher := &fakeLauncher{result: GrantResult{Denied: []string{"android.permission.ACCESS_FINE_LOCATION"}}}
	g := NewGatekeeper(src, launcher)

	bound := false
	if err := g.EnsureBound(context.Background(), "com.example.weather", func() error {
		bound = true
		return nil
	}); err != nil {
		t.Fatalf("EnsureBound: %v", err)
	}
	if !bound {
		t.Fatal("a denial must not veto the bind")
	}
}

func TestUnknownPermissionCountsAsUngranted(t *testing.T) {
	src := newSource()
	src.pkgs["com.example.weather"] = PackageInfo{
		Name:    "com.example.weather",
		Enabled: true,
		Requested: []RequestedPermission{
			{Name: "com.vendor.UNDECLARED", Granted: false},
		},
	}
	launcher := &fakeLauncher{}
	g := NewGatekeeper(src, launcher)

	if err := g.EnsureBound(context.Background(), "com.example.weather", func() error { return nil }); err != nil {
		t.Fatalf("EnsureBound: %v", err)
	}
	if len(launcher.requested) != 1 || launcher.requested[0] != "com.vendor.UNDECLARED" {
		t.Fatalf("undeclared permission should go through the flow, got %v", launcher.requested)
	}
}

func TestBindRejectsBadPackageStates(t *testing.T) {
	src := newSource()
	src.pkgs["disabled"] = PackageInfo{Name: "disabled", Enabled: false}
	src.pkgs["suspended"] = PackageInfo{Name: "suspended", Enabled: true, Suspended: true}
	g := NewGatekeeper(src, &fakeLauncher{})

	for _, pkg := range []string{"absent", "disabled", "suspended"} {
		if err := g.EnsureBound(context.Background(), pkg, func() error {
			t.Fatalf("bind must not run for %s", pkg)
			return nil
		}); err == nil {
			t.Fatalf("expected error for %s", pkg)
		}
	}
}

func TestGrantFlowHonorsContext(t *testing.T) {
	src := newSource()
	src.pkgs["com.example.weather"] = PackageInfo{
		Name:    "com.example.weather",
		Enabled: true,
		Requested: []RequestedPermission{
			{Name: "android.permission.ACCESS_FINE_LOCATION", Granted: false},
		},
	}
	g := NewGatekeeper(src, stalledLauncher{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := g.EnsureBound(ctx, "com.example.weather", func() error {
		t.Fatal("bind must not run on a cancelled flow")
		return nil
	}); err == nil {
		t.Fatal("expected a context error")
	}
}

func TestPackageStateHelpers(t *testing.T) {
	src := newSource()
	src.pkgs["app"] = PackageInfo{Name: "app", Enabled: true}
	src.pkgs["frozen"] = PackageInfo{Name: "frozen", Enabled: true, Suspended: true}
	g := NewGatekeeper(src, &fakeLauncher{})

	if !g.IsAppPresent("app") || g.IsAppPresent("ghost") {
		t.Fatal("presence check wrong")
	}
	if !g.IsAppEnabled("app") || g.IsAppEnabled("ghost") {
		t.Fatal("enabled check wrong")
	}
	if !g.IsAppSuspended("frozen") || g.IsAppSuspended("app") {
		t.Fatal("suspension check wrong")
	}
}

type stalledLauncher struct{}

func (stalledLauncher) RequestGrant(string, []string) <-chan GrantResult {
	return make(chan GrantResult)
}
