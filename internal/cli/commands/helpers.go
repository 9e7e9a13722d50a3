package commands

import (
	fsrepo "DailyManna/internal/cli/repo/fs"
	reposqlite "DailyManna/internal/cli/repo/sqlite"
	"DailyManna/internal/cli/service"
	"DailyManna/internal/config"
	"time"
)

// newResolver собирает резолвер entitlement поверх локального хранилища
// и удалённого клиента.
func newResolver(cfg *config.Config, store *reposqlite.Store) *service.EntitlementResolver {
	return service.NewEntitlementResolver(store, store, service.NewRemoteClient(cfg))
}

// currentDeviceID возвращает идентификатор устройства или пустую строку,
// если init ещё не выполнялся.
func currentDeviceID() string {
	id, err := (fsrepo.IdentityFSStore{}).LoadDeviceID()
	if err != nil {
		return ""
	}
	return id
}

func timeOfUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
