// Package permission gates binding to client packages behind their
// runtime permission state. A package asking for dangerous permissions
// it has not been granted goes through an asynchronous grant flow
// before the bind proceeds.
package permission

// #region imports
import (
	"context"
	"fmt"
	"log"
)

// #endregion imports

// #region types

// ProtectionLevel classifies a declared permission.
type ProtectionLevel int

const (
	ProtectionNormal ProtectionLevel = iota
	ProtectionDangerous
	ProtectionSignature
)

// PermissionInfo is the platform's declaration of one permission.
type PermissionInfo struct {
	Name       string
	Protection ProtectionLevel
}

// RequestedPermission is one permission a package requests, with its
// current grant state.
type RequestedPermission struct {
	Name    string
	Granted bool
}

// PackageInfo is the subset of package state the gatekeeper inspects.
type PackageInfo struct {
	Name      string
	Enabled   bool
	Suspended bool
	Requested []RequestedPermission
}

// GrantResult is the outcome of an asynchronous grant flow.
type GrantResult struct {
	Granted []string
	Denied  []string
}

// PackageSource resolves packages and permission declarations.
type PackageSource interface {
	// Lookup returns the package record, or false when not installed.
	Lookup(pkg string) (PackageInfo, bool)

	// PermissionInfo returns the declaration for name, or false when
	// the permission is unknown to the platform.
	PermissionInfo(name string) (PermissionInfo, bool)
}

// GrantLauncher starts the user-facing grant flow for a package. The
// returned channel delivers exactly one result, then closes.
type GrantLauncher interface {
	RequestGrant(pkg string, perms []string) <-chan GrantResult
}

// #endregion types

// #region gatekeeper

// Gatekeeper decides whether a package may be bound, routing it
// through the grant flow first when needed.
type Gatekeeper struct {
	src      PackageSource
	launcher GrantLauncher
}

// NewGatekeeper wires a gatekeeper over the given package source and
// grant launcher.
func NewGatekeeper(src PackageSource, launcher GrantLauncher) *Gatekeeper {
	return &Gatekeeper{src: src, launcher: launcher}
}

// IsAppPresent reports whether pkg is installed.
func (g *Gatekeeper) IsAppPresent(pkg string) bool {
	_, ok := g.src.Lookup(pkg)
	return ok
}

// IsAppEnabled reports whether pkg is installed and enabled.
func (g *Gatekeeper) IsAppEnabled(pkg string) bool {
	info, ok := g.src.Lookup(pkg)
	return ok && info.Enabled
}

// IsAppSuspended reports whether pkg is installed but suspended.
func (g *Gatekeeper) IsAppSuspended(pkg string) bool {
	info, ok := g.src.Lookup(pkg)
	return ok && info.Suspended
}

// EnsureBound binds pkg, first walking it through the grant flow for
// any ungranted dangerous permissions. A permission the platform has
// no declaration for is treated as not granted. Denials are logged
// but do not veto the bind; the bound surface is expected to degrade
// per-permission.
func (g *Gatekeeper) EnsureBound(ctx context.Context, pkg string, bind func() error) error {
	info, ok := g.src.Lookup(pkg)
	if !ok {
		return fmt.Errorf("package %s is not installed", pkg)
	}
	if !info.Enabled {
		return fmt.Errorf("package %s is disabled", pkg)
	}
	if info.Suspended {
		return fmt.Errorf("package %s is suspended", pkg)
	}

	missing := g.missingDangerous(info)
	if len(missing) == 0 {
		return bind()
	}

	log.Printf("[PERM] %s: requesting %d permission(s)", pkg, len(missing))
	select {
	case res := <-g.launcher.RequestGrant(pkg, missing):
		for _, p := range res.Denied {
			log.Printf("[PERM] %s: %s denied", pkg, p)
		}
	case <-ctx.Done():
		return ctx.Err()
	}
	return bind()
}

// missingDangerous lists the dangerous permissions info requests but
// does not hold.
func (g *Gatekeeper) missingDangerous(info PackageInfo) []string {
	var missing []string
	for _, req := range info.Requested {
		if req.Granted {
			continue
		}
		decl, known := g.src.PermissionInfo(req.Name)
		if !known || decl.Protection == ProtectionDangerous {
			missing = append(missing, req.Name)
		}
	}
	return missing
}

// #endregion gatekeeper
