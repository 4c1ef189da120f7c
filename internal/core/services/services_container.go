package services

import (
	portsrepo "github.com/alnoorex/currency_exchange_admin/internal/core/ports/repositories"
	portssvc "github.com/alnoorex/currency_exchange_admin/internal/core/ports/services"
	"github.com/alnoorex/currency_exchange_admin/internal/platform/config"
)

// NewServiceContainer wires the repositories into the service facades.
func NewServiceContainer(
	currencyRepo portsrepo.CurrencyRepository,
	noteImageRepo portsrepo.NoteImageRepository,
	historyRepo portsrepo.HistoryRepository,
	adminUserRepo portsrepo.AdminUserRepository,
	cfg *config.Config,
) *portssvc.ServiceContainer {
	history := NewHistoryService(historyRepo)
	return &portssvc.ServiceContainer{
		Currency: NewCurrencyService(currencyRepo, noteImageRepo, history, cfg.EnforceRateSpread),
		Note:     NewNoteService(noteImageRepo, currencyRepo, history, cfg.UploadDir, cfg.MaxUploadBytes),
		History:  history,
		Auth:     NewAuthService(adminUserRepo),
	}
}
