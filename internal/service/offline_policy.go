package service

import (
	"context"

	"github.com/dinespot/dinesync/internal/adapter"
	"github.com/dinespot/dinesync/internal/logger"
	"github.com/dinespot/dinesync/internal/netmon"
)

// OfflinePolicy decides whether a write should be routed through the local
// store and pending queue instead of the remote gateway. Only explorer
// accounts are offline-eligible; business and admin tooling requires a live
// connection so remote-side validation runs immediately.
type OfflinePolicy struct {
	logger  *logger.Logger
	roles   adapter.RoleProvider
	monitor *netmon.Monitor
}

func NewOfflinePolicy(roles adapter.RoleProvider, monitor *netmon.Monitor, log *logger.Logger) *OfflinePolicy {
	return &OfflinePolicy{logger: log, roles: roles, monitor: monitor}
}

// ShouldUseOfflineMode reports whether the current caller's writes go to the
// local queue. A role lookup failure routes online: the gateway will reject
// the request with a proper error instead of the queue silently accepting a
// write that might never be allowed to land.
func (p *OfflinePolicy) ShouldUseOfflineMode(ctx context.Context) bool {
	if p.monitor.Status() != netmon.StatusOffline {
		return false
	}

	role, err := p.roles.CurrentRole(ctx)
	if err != nil {
		p.logger.Err(err).Msg("role lookup failed, routing online")
		return false
	}
	return role == adapter.RoleExplorer
}
